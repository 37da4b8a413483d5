package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Authentication Errors.

	// ErrAuthRequired indicates no usable credentials were found.
	// The conversion aborts before any document is created.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the credentials are present but rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Remote Document Errors.

	// ErrDocumentCreate indicates the remote create call failed.
	ErrDocumentCreate = errors.New("document creation failed")

	// ErrContentInsert indicates the raw text insertion batch failed.
	// The document exists but is empty; it is not cleaned up.
	ErrContentInsert = errors.New("content insertion failed")

	// ErrFormatApply indicates the formatting batch (or the structure
	// re-fetch that drives it) failed. The document exists with raw
	// text but no styling; it is not cleaned up.
	ErrFormatApply = errors.New("formatting failed")

	// ErrRateLimited indicates the remote API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
