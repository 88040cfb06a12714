package services

import "errors"

// ErrUnsupportedExportFormat is returned by Export when the requested format
// is neither csv nor xlsx.
var ErrUnsupportedExportFormat = errors.New("unsupported export format")
