// Package jstext implements lightweight syntax scans over JavaScript-like
// text: deciding whether a '/' opens a regex literal or is a division
// operator, tokenizing a region into atomic syntactic units, and carving the
// balanced object/array value that ends at a given offset.
//
// All scans are pure functions over an immutable buffer: no global state, no
// caching, identical inputs always produce identical results. Callers control
// incremental re-scanning by passing explicit scan bounds.
package jstext
