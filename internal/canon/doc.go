// Package canon serializes reports to RFC 8785 style canonical JSON and
// derives content digests from that encoding.
//
// Canonical bytes are what golden files store and what report IDs hash, so
// the encoding must be identical across runs and platforms:
//   - Object keys are sorted by UTF-16 code units
//   - Strings are NFC normalized and never HTML-escaped
//   - No floats and no null
//   - No insignificant whitespace
package canon
