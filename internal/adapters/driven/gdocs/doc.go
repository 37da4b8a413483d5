// Package gdocs implements the DocumentWriter port against the Google
// Docs API (docs/v1).
//
// The adapter translates domain insertion and formatting ops into
// batchUpdate requests and reads paragraph ranges back out of the
// document's structural snapshot. All calls go through a token-bucket
// rate limiter kept well below Google's per-user write quota.
package gdocs
