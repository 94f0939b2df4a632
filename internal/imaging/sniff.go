package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
)

// Payload is an uploaded image after decoding: raw bytes plus the MIME type
// detected from the leading magic bytes. Immutable once built.
type Payload struct {
	Data     []byte
	MimeType string
}

const defaultMime = "image/png"

var (
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
	ftypBox   = []byte("ftyp")
)

// Sniff classifies image bytes by magic prefix. Unknown, truncated, or empty
// input falls back to image/png so that a payload can always be sent onward.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return "image/png"
	case bytes.HasPrefix(data, jpegMagic):
		return "image/jpeg"
	case len(data) >= 12 && bytes.HasPrefix(data, riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return "image/webp"
	case containsFtyp(data):
		return "image/heic"
	default:
		return defaultMime
	}
}

// HEIC/HEIF files start with a box header whose type is "ftyp"; the brand
// bytes after it vary, so only the box marker in the head is checked.
func containsFtyp(data []byte) bool {
	head := data
	if len(head) > 24 {
		head = head[:24]
	}
	return bytes.Contains(head, ftypBox)
}

// DetectMime sniffs a base64 (optionally data-URI prefixed) string without
// fully decoding it. Total over arbitrary input: anything undecodable is
// reported as image/png.
func DetectMime(raw string) string {
	cleaned := stripDataURIPrefix(raw)
	if len(cleaned) > 64 {
		cleaned = cleaned[:64]
	}
	head, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(cleaned, "="))
	if err != nil {
		return defaultMime
	}
	return Sniff(head)
}

// Decode builds a Payload from a base64 or data-URI string. The only failure
// is an empty or undecodable body; MIME detection itself never fails.
func Decode(raw string) (Payload, error) {
	cleaned := stripDataURIPrefix(raw)
	if cleaned == "" {
		return Payload{}, errors.New("empty image payload")
	}

	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(cleaned)
	}
	if err != nil || len(data) == 0 {
		return Payload{}, errors.New("image payload is not valid base64")
	}

	return Payload{Data: data, MimeType: Sniff(data)}, nil
}

func stripDataURIPrefix(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "data:") {
		if idx := strings.IndexByte(value, ','); idx >= 0 {
			value = value[idx+1:]
		}
	}
	return strings.TrimSpace(value)
}
