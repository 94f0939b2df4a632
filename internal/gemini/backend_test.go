package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBackendCredentialMatrix(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		project string
		want    Mode
	}{
		{"project and key", "key-123", "my-project", ModeProjectAuth},
		{"project only", "", "my-project", ModeProjectAuth},
		{"key only", "key-123", "", ModeAPIKey},
		{"neither", "", "", ModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ResolveBackend(BackendOptions{APIKey: tt.apiKey, Project: tt.project})
			assert.Equal(t, tt.want, b.Mode)
		})
	}
}

func TestResolveBackendDefaults(t *testing.T) {
	b := ResolveBackend(BackendOptions{Project: "my-project"})
	assert.Equal(t, "us-central1", b.Location)
	assert.Equal(t, "gemini-2.5-flash-image", b.ImageModel)
	assert.Equal(t, "gemini-2.0-flash", b.TextModel)

	b = ResolveBackend(BackendOptions{
		APIKey:     "key",
		Location:   "europe-west4",
		ImageModel: "custom-image-model",
		TextModel:  "custom-text-model",
	})
	assert.Equal(t, "europe-west4", b.Location)
	assert.Equal(t, "custom-image-model", b.ImageModel)
	assert.Equal(t, "custom-text-model", b.TextModel)
}

func TestResolveBackendTrimsWhitespace(t *testing.T) {
	b := ResolveBackend(BackendOptions{APIKey: "   "})
	assert.Equal(t, ModeNone, b.Mode)

	b = ResolveBackend(BackendOptions{APIKey: " key "})
	assert.Equal(t, ModeAPIKey, b.Mode)
	assert.Equal(t, "key", b.APIKey)
}

func TestNormalizeAspectRatio(t *testing.T) {
	assert.Equal(t, "16:9", normalizeAspectRatio("16:9"))
	assert.Equal(t, "4:3", normalizeAspectRatio(" 4 : 3 "))
	assert.Equal(t, "", normalizeAspectRatio("wide"))
	assert.Equal(t, "", normalizeAspectRatio("0:9"))
	assert.Equal(t, "", normalizeAspectRatio(""))
}

func TestNormalizeImageSize(t *testing.T) {
	assert.Equal(t, "2K", normalizeImageSize("2k"))
	assert.Equal(t, "4K", normalizeImageSize(" 4K "))
	assert.Equal(t, "", normalizeImageSize("8k"))
	assert.Equal(t, "", normalizeImageSize(""))
}
