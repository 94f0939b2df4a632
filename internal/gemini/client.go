package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

type Options struct {
	Backend    Backend
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client issues the single multimodal generation call. No retry happens here;
// retry policy belongs to whoever calls us.
type Client struct {
	ai      *genai.Client
	backend Backend
	logger  *slog.Logger
}

// ImageInput is one inline image to embed in the request.
type ImageInput struct {
	Data     []byte
	MimeType string
}

// OutputHints carry optional shape requests from the caller. AspectRatio is
// passed to the model's image config; ImageSize becomes a prompt-level quality
// hint since the image config has no resolution knob.
type OutputHints struct {
	AspectRatio string
	ImageSize   string
}

func New(ctx context.Context, opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cc := &genai.ClientConfig{HTTPClient: opts.HTTPClient}
	switch opts.Backend.Mode {
	case ModeProjectAuth:
		cc.Backend = genai.BackendVertexAI
		cc.Project = opts.Backend.Project
		cc.Location = opts.Backend.Location
	case ModeAPIKey:
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = opts.Backend.APIKey
	default:
		return nil, errors.New("no credentials configured")
	}

	ai, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{ai: ai, backend: opts.Backend, logger: logger}, nil
}

// GenerateComposite sends one generateContent call with ordered parts: the
// instruction text, then the car photo, then the part photo, each image
// preceded by a caption naming its role. The order matters: the model treats
// the first image as the base to preserve and the second as the style source.
func (c *Client) GenerateComposite(ctx context.Context, prompt string, car, part ImageInput, hints OutputHints) (*genai.GenerateContentResponse, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText("PHOTO 1 - MY CAR (keep its angle and background):"),
		{InlineData: &genai.Blob{MIMEType: car.MimeType, Data: car.Data}},
		genai.NewPartFromText("PHOTO 2 - CATALOG PART (appearance reference only):"),
		{InlineData: &genai.Blob{MIMEType: part.MimeType, Data: part.Data}},
	}

	if size := normalizeImageSize(hints.ImageSize); size != "" {
		parts = append(parts, genai.NewPartFromText("OUTPUT QUALITY: render at "+size+"-equivalent detail."))
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if ratio := normalizeAspectRatio(hints.AspectRatio); ratio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: ratio}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	c.logger.Debug("gemini generate", "model", c.backend.ImageModel, "mode", string(c.backend.Mode))
	resp, err := c.ai.Models.GenerateContent(ctx, c.backend.ImageModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return resp, nil
}

// Ping runs a one-line text generation against the fallback text model to
// verify the configured credentials work at all.
func (c *Client) Ping(ctx context.Context) (string, error) {
	contents := genai.Text("Say 'Hello from Gemini!' in one sentence.")
	resp, err := c.ai.Models.GenerateContent(ctx, c.backend.TextModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("ping: %w", err)
	}

	var b strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.Text != "" {
				b.WriteString(p.Text)
			}
		}
	}
	if out := strings.TrimSpace(b.String()); out != "" {
		return out, nil
	}
	return "", errors.New("ping: empty response")
}

func normalizeAspectRatio(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return ""
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a <= 0 || b <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", a, b)
}

func normalizeImageSize(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1k":
		return "1K"
	case "2k":
		return "2K"
	case "4k":
		return "4K"
	default:
		return ""
	}
}
