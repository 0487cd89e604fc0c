// Package obstacles reads obstacle documents: explicit lists of blocked cells
// consumed by the gridpath CLI and HTTP service.
//
// Document shape:
//
//	{"data": [[1, 0], [1, 1], [1, 2]]}
//
// The "data" value may also be a string holding the same array, which is how
// older tooling wrote these files:
//
//	{"data": "[[1, 0], [1, 1], [1, 2]]"}
//
// Both shapes are accepted in JSON and in YAML. Load picks the format from the
// file extension (".yaml" and ".yml" are YAML, anything else is JSON).
//
// Error handling (sentinel errors):
//
//   - ErrMissingData: the document has no "data" key, or it is null.
//   - ErrBadPair:     an entry is not exactly two integers.
//
// Syntax errors from the underlying decoders are wrapped with the format name.
package obstacles
