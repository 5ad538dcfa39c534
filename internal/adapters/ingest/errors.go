package ingest

import "errors"

// Sentinel kinds for ingestion errors.
var (
	ErrEmptyFile = errors.New("file has no data rows")
)
