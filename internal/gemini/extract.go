package gemini

import (
	"encoding/base64"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// ErrNoUsableOutput means the backend answered but supplied neither image nor
// text. Callers surface it as a generic retryable error, never as success.
var ErrNoUsableOutput = errors.New("gemini: response contains no usable output")

// Result is the normalized outcome of a generation response. Exactly one of
// the image pair or Text is set.
type Result struct {
	MimeType   string
	DataBase64 string
	Text       string
}

func (r Result) HasImage() bool { return r.DataBase64 != "" }

// ExtractResult walks the first candidate's parts. Inline image data wins over
// text; the SDK hands inline data as raw bytes, so they are base64-encoded
// here once. Text-only responses come back as an advisory Result.
func ExtractResult(resp *genai.GenerateContentResponse) (Result, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return Result{}, ErrNoUsableOutput
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return Result{}, ErrNoUsableOutput
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return Result{
				MimeType:   mime,
				DataBase64: base64.StdEncoding.EncodeToString(part.InlineData.Data),
			}, nil
		}
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	if out := strings.TrimSpace(text.String()); out != "" {
		return Result{Text: out}, nil
	}
	return Result{}, ErrNoUsableOutput
}
