// Package buffer provides the document model shared by the concealment
// engine and its host integration: byte offsets, half-open ranges, edits,
// and a flat in-memory document.
//
// All positions are byte offsets into the document text. Ranges are
// half-open [Start, End). The concealment core never mutates documents; it
// only reads bounded slices of them.
package buffer
