package studio

import (
	"context"
	"errors"
	"strings"
)

// Status is the fixed vocabulary the frontend branches on. An Outcome carries
// exactly one shape per status, so callers switch on the tag alone.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusTextResponse     Status = "text_response"
	StatusDemo             Status = "demo"
	StatusRateLimited      Status = "rate_limited"
	StatusModelUnavailable Status = "model_unavailable"
	StatusPermissionDenied Status = "permission_denied"
	StatusBadRequest       Status = "bad_request"
	StatusError            Status = "error"
)

// Outcome is the one unit returned per generation request.
type Outcome struct {
	Status    Status `json:"status"`
	ImageURL  string `json:"image_url,omitempty"`
	ImageData string `json:"image_base64,omitempty"`
	Message   string `json:"message,omitempty"`
}

var statusMessages = map[Status]string{
	StatusRateLimited:      "The image service is receiving too many requests right now. Please try again in a moment.",
	StatusModelUnavailable: "The image generation model is currently unavailable. Please try again later.",
	StatusPermissionDenied: "The configured credentials are not allowed to use the image generation model.",
	StatusBadRequest:       "The image service rejected this request. Try a different photo.",
	StatusError:            "Image generation failed. Please try again.",
}

// ClassifyFailure maps a backend failure onto a status and its templated user
// message. Once the call has thrown, the message text is the only portable
// signal, so this is a single-pass case-insensitive substring match. Quota is
// checked before the generic 400 branch because quota errors often arrive in
// 400-style wrapping.
func ClassifyFailure(err error) (Status, string) {
	if err == nil {
		return StatusError, statusMessages[StatusError]
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusModelUnavailable, statusMessages[StatusModelUnavailable]
	}

	msg := strings.ToLower(err.Error())
	var status Status
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		status = StatusRateLimited
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		status = StatusModelUnavailable
	case strings.Contains(msg, "403") || strings.Contains(msg, "permission"):
		status = StatusPermissionDenied
	case strings.Contains(msg, "400"):
		status = StatusBadRequest
	default:
		status = StatusError
	}
	return status, statusMessages[status]
}
