// Package domain defines the core business entities for Docforge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block: One classified unit of parsed markdown, 1:1 with an input line
//   - InsertionOp: A (logical offset, text) pair for raw text insertion
//   - ParagraphRange: A paragraph's physical range as reported by the remote
//   - ReconciledRange: A Block paired with the range the remote assigned it
//   - FormattingOp: One style or structure mutation over a character range
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
