package gemini

import "strings"

// Mode says how the process authenticates against the generation backend.
// ModeNone means no credentials at all: callers must serve the demo outcome
// and never treat it as an error.
type Mode string

const (
	ModeProjectAuth Mode = "project_auth"
	ModeAPIKey      Mode = "api_key"
	ModeNone        Mode = "none"
)

const (
	defaultImageModel = "gemini-2.5-flash-image"
	defaultTextModel  = "gemini-2.0-flash"
	defaultLocation   = "us-central1"
)

// Backend is the resolved credential/model configuration. Resolved once at
// startup and read-only afterwards, so concurrent requests share it without
// synchronization.
type Backend struct {
	Mode       Mode
	APIKey     string
	Project    string
	Location   string
	ImageModel string
	TextModel  string
}

type BackendOptions struct {
	APIKey     string
	Project    string
	Location   string
	ImageModel string
	TextModel  string
}

// ResolveBackend inspects configuration and picks the auth mode. Project-based
// auth wins over an API key when both are present: it is the quota-isolated,
// more capable path. No I/O happens here.
func ResolveBackend(opts BackendOptions) Backend {
	b := Backend{
		Mode:       ModeNone,
		APIKey:     strings.TrimSpace(opts.APIKey),
		Project:    strings.TrimSpace(opts.Project),
		Location:   strings.TrimSpace(opts.Location),
		ImageModel: strings.TrimSpace(opts.ImageModel),
		TextModel:  strings.TrimSpace(opts.TextModel),
	}

	if b.Location == "" {
		b.Location = defaultLocation
	}
	if b.ImageModel == "" {
		b.ImageModel = defaultImageModel
	}
	if b.TextModel == "" {
		b.TextModel = defaultTextModel
	}

	switch {
	case b.Project != "":
		b.Mode = ModeProjectAuth
	case b.APIKey != "":
		b.Mode = ModeAPIKey
	}

	return b
}
