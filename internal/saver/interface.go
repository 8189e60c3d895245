package saver

import "strings"

// QuoteSaver writes one day's quotes in a given file format.
// The store depends only on this interface; main picks the implementation.
type QuoteSaver interface {
	Save(rows []Row, path string) error
	Extension() string
}

// NewQuoteSaver creates an implementation by format (csv, parquet, json).
// Returns nil if format not supported.
func NewQuoteSaver(format string) QuoteSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
