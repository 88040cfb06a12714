package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laborcli/internal/config"
	"laborcli/internal/shared/testutil"
)

func newValidator(t *testing.T) *UploadValidator {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	return NewUploadValidator(config.UploadConfig{
		MaxSizeBytes:      1024,
		AllowedExtensions: []string{".csv", ".xlsx"},
	}, logger)
}

func TestValidateFilename(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.ValidateFilename("data.csv"))
	assert.NoError(t, v.ValidateFilename("Data.CSV"))
	assert.NoError(t, v.ValidateFilename("report.xlsx"))
	assert.Error(t, v.ValidateFilename("report.pdf"))
	assert.Error(t, v.ValidateFilename("noextension"))
}

func TestValidateSize(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.ValidateSize(1024))
	assert.NoError(t, v.ValidateSize(0))
	assert.Error(t, v.ValidateSize(1025))
}

func TestValidateContentCSV(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.ValidateContent("data.csv", []byte("date,rate\n2024-01,5.0\n")))
	assert.NoError(t, v.ValidateContent("data.csv", []byte("date,région\n")), "non-ASCII UTF-8 is text")

	binary := append([]byte("date,"), 0x00, 0x01, 0x02)
	assert.Error(t, v.ValidateContent("data.csv", binary))
}

func TestValidateContentXLSX(t *testing.T) {
	v := newValidator(t)

	f := excelize.NewFile()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	assert.NoError(t, v.ValidateContent("data.xlsx", buf.Bytes()))
	assert.NoError(t, v.ValidateContent("DATA.XLSX", buf.Bytes()))

	assert.Error(t, v.ValidateContent("data.xlsx", []byte("just,a,csv\n")),
		"renamed csv must fail the signature check")
}
