// Package buffer implements the flat, rune-accurate text buffer scanned by
// the jstext package and rendered by the result viewer.
//
// Offsets are 0-based rune indices into the whole document. Spans are
// half-open: [Start, End). The buffer is immutable after construction, so
// repeated scans over the same buffer always see the same content.
package buffer
