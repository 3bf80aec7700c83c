package imagecheck

import (
	"bytes"
	"errors"
	"image"
	"net/http"

	// Registered so image.Decode understands the two encodings the content
	// layer accepts for uploads.
	_ "image/jpeg"
	_ "image/png"
)

// Prober reports whether an uploaded image decodes cleanly. Any non-nil
// return means the blob is not a usable image; the content layer maps it to a
// corrupted_file verdict.
type Prober interface {
	Probe(data []byte) error
}

// DecodeProber verifies uploads by decoding them fully with the standard
// library decoders. A full decode, not just a header parse, is what catches
// truncated streams.
type DecodeProber struct{}

func NewDecodeProber() *DecodeProber {
	return &DecodeProber{}
}

func (DecodeProber) Probe(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyImage
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return errors.Join(ErrCorruptImage, err)
	}
	return nil
}

// DetectMIME sniffs the content type from magic bytes rather than trusting
// the file extension.
func DetectMIME(data []byte) string {
	// 512 bytes is the maximum http.DetectContentType reads
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
