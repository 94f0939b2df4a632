package studio

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"429 status", errors.New("googleapi: Error 429: Resource exhausted"), StatusRateLimited},
		{"quota word", errors.New("Quota exceeded for this project"), StatusRateLimited},
		{"quota inside 400 wrapping", errors.New("error 400: quota limit reached"), StatusRateLimited},
		{"404 status", errors.New("generate content: Error 404"), StatusModelUnavailable},
		{"not found", errors.New("model Not Found"), StatusModelUnavailable},
		{"403 status", errors.New("got HTTP 403"), StatusPermissionDenied},
		{"permission word", errors.New("PERMISSION_DENIED: caller lacks access"), StatusPermissionDenied},
		{"plain 400", errors.New("Error 400: invalid argument"), StatusBadRequest},
		{"unclassified", errors.New("connection reset by peer"), StatusError},
		{"nil", nil, StatusError},
		{"deadline", context.DeadlineExceeded, StatusModelUnavailable},
		{"wrapped deadline", fmt.Errorf("generate content: %w", context.DeadlineExceeded), StatusModelUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := ClassifyFailure(tt.err)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, message)
			if tt.err != nil {
				// Templated message, never the raw backend text.
				assert.NotContains(t, message, tt.err.Error())
			}
		})
	}
}
