package studio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePromptDeterministic(t *testing.T) {
	first := ComposePrompt("Sport Black Alloy", "wheels", "Aggressive black multi-spoke sports wheel.")
	second := ComposePrompt("Sport Black Alloy", "wheels", "Aggressive black multi-spoke sports wheel.")
	assert.Equal(t, first, second)
}

func TestComposePromptUniversalRules(t *testing.T) {
	for _, category := range []string{"wheels", "roof", "body", "wrap", ""} {
		t.Run("category "+category, func(t *testing.T) {
			prompt := ComposePrompt("Some Part", category, "desc")
			for _, rule := range universalRules {
				assert.Contains(t, prompt, rule)
			}
			assert.Contains(t, prompt, "PHOTO 1 is MY CAR")
			assert.Contains(t, prompt, "PHOTO 2 is the catalog part")
		})
	}
}

func TestComposePromptUnknownCategoryFallsBack(t *testing.T) {
	unknown := ComposePrompt("Chrome Wrap", "wrap", "Full body wrap.")
	body := ComposePrompt("Chrome Wrap", "body", "Full body wrap.")
	assert.Equal(t, body, unknown)

	spaced := ComposePrompt("Chrome Wrap", "  BODY ", "Full body wrap.")
	assert.Equal(t, body, spaced)
}

func TestComposePromptCategoryContent(t *testing.T) {
	wheels := ComposePrompt("Sport Black Alloy", "wheels", "")
	assert.Contains(t, wheels, "Replace every visible wheel")
	assert.Contains(t, wheels, "contact shadows under each tire")

	roof := ComposePrompt("Matte Black Roof Box", "roof", "")
	assert.Contains(t, roof, "roof accessory")
	assert.Contains(t, roof, "Wheels and rims")
	assert.NotContains(t, roof, "Replace every visible wheel")
}

func TestComposePromptOmitsEmptyDescription(t *testing.T) {
	prompt := ComposePrompt("Part", "wheels", "  ")
	require.NotContains(t, prompt, "Description:")
	assert.True(t, strings.Contains(prompt, "- Name: Part"))
}
