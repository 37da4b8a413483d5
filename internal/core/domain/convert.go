package domain

// FallbackTitle is used when the markdown has no depth-1 heading and no
// explicit title was supplied.
const FallbackTitle = "Untitled Document"

// ConvertOptions carries per-conversion settings.
type ConvertOptions struct {
	// Title overrides the extracted document title when non-empty.
	Title string
}

// ConversionResult reports a completed conversion.
type ConversionResult struct {
	// DocumentID is the identifier the remote service assigned.
	DocumentID string

	// Title is the title the document was created with.
	Title string

	// URL is a human-readable link to the created document.
	URL string

	// Blocks is the number of blocks parsed from the input.
	Blocks int

	// FormattingOps is the number of formatting mutations submitted.
	FormattingOps int
}
