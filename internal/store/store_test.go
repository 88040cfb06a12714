package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laborcli/internal/shared/testutil"
	"laborcli/pkg/contracts/domain"
)

func TestNewSeedsSampleData(t *testing.T) {
	s := New()

	assert.Equal(t, len(SampleRecords()), s.Count())
	assert.NotZero(t, s.Count())
}

func TestSampleRecordsReturnsFreshCopy(t *testing.T) {
	a := SampleRecords()
	b := SampleRecords()
	require.NotEmpty(t, a)

	a[0].Geography = "mutated"
	assert.NotEqual(t, a[0].Geography, b[0].Geography)
}

func TestReplace(t *testing.T) {
	s := New()
	records := []domain.LaborRecord{testutil.Record()}

	s.Replace(records)

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, records, s.All())
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewWithRecords([]domain.LaborRecord{testutil.Record()})

	got := s.All()
	got[0].Geography = "mutated"

	assert.Equal(t, "Delhi", s.All()[0].Geography)
}

func TestFilterByGeography(t *testing.T) {
	s := NewWithRecords([]domain.LaborRecord{
		testutil.Record(testutil.WithGeography("Delhi")),
		testutil.Record(testutil.WithGeography("Mumbai")),
		testutil.Record(testutil.WithGeography("Delhi")),
	})

	assert.Len(t, s.FilterByGeography("Delhi"), 2)
	assert.Len(t, s.FilterByGeography("Mumbai"), 1)
	assert.Empty(t, s.FilterByGeography("Chennai"))
}

func TestFilterByDateRange(t *testing.T) {
	s := NewWithRecords([]domain.LaborRecord{
		testutil.Record(testutil.WithDate("2023-11")),
		testutil.Record(testutil.WithDate("2024-01")),
		testutil.Record(testutil.WithDate("2024-06")),
	})

	// Bounds are inclusive
	got := s.FilterByDateRange("2023-11", "2024-01")
	require.Len(t, got, 2)
	assert.Equal(t, "2023-11", got[0].Date)
	assert.Equal(t, "2024-01", got[1].Date)

	assert.Empty(t, s.FilterByDateRange("2025-01", "2025-12"))
}

func TestGeographies(t *testing.T) {
	s := NewWithRecords([]domain.LaborRecord{
		testutil.Record(testutil.WithGeography("Mumbai")),
		testutil.Record(testutil.WithGeography("Delhi")),
		testutil.Record(testutil.WithGeography("Mumbai")),
	})

	assert.Equal(t, []string{"Delhi", "Mumbai"}, s.Geographies())
}

func TestConcurrentReadsAndReplace(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Replace([]domain.LaborRecord{testutil.Record()})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.All()
				_ = s.Count()
				_ = s.Geographies()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Count())
}
