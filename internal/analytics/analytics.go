// Package analytics derives the dashboard views from a canonical record set.
// Every function is pure: no mutation of the input, recomputed on each call,
// safe to invoke concurrently with store reads.
package analytics

import (
	"math"
	"sort"

	"laborcli/pkg/contracts/domain"
)

// TimeSeries groups records by date and computes per-date urban and rural
// mean rates. The overall rate is the mean of the two subset means, not the
// flat mean of all records on that date; an empty subset contributes a rate
// of 0 (divisor clamped to 1), not "no data". Output is sorted ascending by
// date key.
func TimeSeries(records []domain.LaborRecord) []domain.TimeSeriesPoint {
	type bucket struct {
		urbanSum   float64
		ruralSum   float64
		urbanCount int
		ruralCount int
	}

	buckets := make(map[string]*bucket)
	for _, rec := range records {
		b, ok := buckets[rec.Date]
		if !ok {
			b = &bucket{}
			buckets[rec.Date] = b
		}
		if rec.Region == domain.RegionUrban {
			b.urbanSum += rec.UnemploymentRate
			b.urbanCount++
		} else {
			b.ruralSum += rec.UnemploymentRate
			b.ruralCount++
		}
	}

	points := make([]domain.TimeSeriesPoint, 0, len(buckets))
	for date, b := range buckets {
		urbanMean := b.urbanSum / float64(max(b.urbanCount, 1))
		ruralMean := b.ruralSum / float64(max(b.ruralCount, 1))
		points = append(points, domain.TimeSeriesPoint{
			Date:        date,
			OverallRate: (urbanMean + ruralMean) / 2,
			UrbanRate:   urbanMean,
			RuralRate:   ruralMean,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// GeographySummaries aggregates records per geography in first-seen order and
// classifies each geography's trend by comparing the last rate encountered
// against the first: above first*1.1 is increasing, below first*0.9 is
// decreasing, anything between is stable. Output is sorted descending by
// average rate.
func GeographySummaries(records []domain.LaborRecord) []domain.GeographySummary {
	type group struct {
		first float64
		last  float64
		sum   float64
		count int
	}

	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, rec := range records {
		g, ok := groups[rec.Geography]
		if !ok {
			g = &group{first: rec.UnemploymentRate}
			groups[rec.Geography] = g
			order = append(order, rec.Geography)
		}
		g.last = rec.UnemploymentRate
		g.sum += rec.UnemploymentRate
		g.count++
	}

	summaries := make([]domain.GeographySummary, 0, len(order))
	for _, geography := range order {
		g := groups[geography]

		trend := domain.TrendStable
		switch {
		case g.last > g.first*1.1:
			trend = domain.TrendIncreasing
		case g.last < g.first*0.9:
			trend = domain.TrendDecreasing
		}

		summaries = append(summaries, domain.GeographySummary{
			Geography:   geography,
			AvgRate:     round2(g.sum / float64(g.count)),
			Trend:       trend,
			RecordCount: g.count,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AvgRate > summaries[j].AvgRate
	})

	return summaries
}

// Summarize computes the global scalar aggregates for a record set. Peak and
// trough are found by linear scan with strict comparison, so the first record
// encountered wins ties. An empty set yields zero-value metrics.
func Summarize(records []domain.LaborRecord) domain.SummaryMetrics {
	if len(records) == 0 {
		return domain.SummaryMetrics{}
	}

	var sum float64
	peak := records[0]
	trough := records[0]
	geographies := make(map[string]struct{})
	for _, rec := range records {
		sum += rec.UnemploymentRate
		if rec.UnemploymentRate > peak.UnemploymentRate {
			peak = rec
		}
		if rec.UnemploymentRate < trough.UnemploymentRate {
			trough = rec
		}
		geographies[rec.Geography] = struct{}{}
	}

	return domain.SummaryMetrics{
		AverageRate:        round2(sum / float64(len(records))),
		PeakRate:           peak.UnemploymentRate,
		PeakDate:           peak.Date,
		LowestRate:         trough.UnemploymentRate,
		LowestDate:         trough.Date,
		TotalDataPoints:    len(records),
		GeographiesCovered: len(geographies),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
