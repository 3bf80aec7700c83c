// Package imagecheck implements the image-integrity collaborator used by
// content validation: given an uploaded blob, does it decode as an image?
//
// The Prober interface keeps the content rules decoupled from decoding
// internals. DecodeProber is the default implementation, backed by the
// standard library jpeg and png decoders, which together cover every format
// the upload allow-list accepts. Probing performs a full decode so truncated
// files are rejected, not just files with a bad header.
//
// DetectMIME is a small helper for callers that want to log or audit the
// sniffed content type of an upload; it plays no part in the validation
// verdict.
package imagecheck
