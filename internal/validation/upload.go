// Package validation screens uploaded files before the ingestion engine
// sees them: filename extension, declared size, and content signature.
package validation

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"laborcli/internal/config"
)

// xlsxSignature is the ZIP local file header every xlsx file starts with
var xlsxSignature = []byte{0x50, 0x4b, 0x03, 0x04}

// UploadValidator checks uploads against the configured constraints
type UploadValidator struct {
	cfg    config.UploadConfig
	logger *slog.Logger
}

// NewUploadValidator creates an upload validator
func NewUploadValidator(cfg config.UploadConfig, logger *slog.Logger) *UploadValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadValidator{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "upload_validator")),
	}
}

// ValidateFilename checks the extension against the configured allow-list
func (v *UploadValidator) ValidateFilename(filename string) error {
	ext := filepath.Ext(filename)
	if !v.cfg.AllowsExtension(ext) {
		v.logger.Warn("rejected upload extension",
			slog.String("filename", filename),
			slog.String("extension", ext))
		return fmt.Errorf("file extension %q is not allowed (accepted: %s)",
			ext, strings.Join(v.cfg.AllowedExtensions, ", "))
	}
	return nil
}

// ValidateSize checks the declared size against the configured limit
func (v *UploadValidator) ValidateSize(size int64) error {
	if size > v.cfg.MaxSizeBytes {
		v.logger.Warn("rejected oversized upload",
			slog.Int64("size", size),
			slog.Int64("limit", v.cfg.MaxSizeBytes))
		return fmt.Errorf("file size %d exceeds the %d byte limit", size, v.cfg.MaxSizeBytes)
	}
	return nil
}

// ValidateContent checks that the bytes plausibly match the filename: xlsx
// uploads must carry the ZIP signature, anything else must look like text.
// A renamed binary fails here instead of deep inside the parser.
func (v *UploadValidator) ValidateContent(filename string, content []byte) error {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		if !bytes.HasPrefix(content, xlsxSignature) {
			v.logger.Warn("upload missing xlsx signature",
				slog.String("filename", filename))
			return fmt.Errorf("file %s is not a valid xlsx workbook", filename)
		}
		return nil
	}

	if !looksLikeText(content) {
		v.logger.Warn("upload is not text",
			slog.String("filename", filename))
		return fmt.Errorf("file %s does not contain text data", filename)
	}
	return nil
}

// looksLikeText samples the first KiB for NUL bytes and invalid UTF-8
func looksLikeText(content []byte) bool {
	sample := content
	if len(sample) > 1024 {
		sample = sample[:1024]
		// Avoid flagging a rune split by the sample boundary
		for len(sample) > 0 && !utf8.Valid(sample) {
			sample = sample[:len(sample)-1]
			if len(sample) < 1020 {
				break
			}
		}
	}
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return false
	}
	return utf8.Valid(sample)
}
