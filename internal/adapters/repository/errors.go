package repository

import "errors"

// Sentinel kinds for session store errors.
var (
	ErrDuplicateUpload = errors.New("tournament already uploaded")
	ErrEmptyUpload     = errors.New("upload contains no tables")
)
