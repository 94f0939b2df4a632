package studio

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"carfit-backend/internal/gemini"
	"carfit-backend/internal/imaging"
)

// Generator is the single network dependency: one multimodal call, raw
// response back. *gemini.Client satisfies it; tests plug in fakes.
type Generator interface {
	GenerateComposite(ctx context.Context, prompt string, car, part gemini.ImageInput, hints gemini.OutputHints) (*genai.GenerateContentResponse, error)
}

type Request struct {
	CarImage        string `json:"car_image"`
	PartImage       string `json:"part_image"`
	PartName        string `json:"part_name"`
	PartCategory    string `json:"part_category"`
	PartDescription string `json:"part_description"`
	AspectRatio     string `json:"aspect_ratio,omitempty"`
	ImageSize       string `json:"image_size,omitempty"`
}

type Options struct {
	Mode         gemini.Mode
	Generator    Generator
	DemoImageURL string
	Logger       *slog.Logger
}

// Studio orchestrates one generation attempt per request. It holds no mutable
// state; the backend mode is fixed at startup and requests run independently.
type Studio struct {
	mode         gemini.Mode
	generator    Generator
	demoImageURL string
	logger       *slog.Logger
}

const defaultDemoImageURL = "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800"

func New(opts Options) *Studio {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	demoURL := opts.DemoImageURL
	if demoURL == "" {
		demoURL = defaultDemoImageURL
	}

	return &Studio{
		mode:         opts.Mode,
		generator:    opts.Generator,
		demoImageURL: demoURL,
		logger:       logger,
	}
}

// Visualize runs the whole pipeline and always returns an Outcome: no failure
// on any path escapes as an error or panic. Without credentials it serves the
// demo outcome before touching the network.
func (s *Studio) Visualize(ctx context.Context, req Request) Outcome {
	if s.mode == gemini.ModeNone || s.generator == nil {
		return Outcome{
			Status:   StatusDemo,
			ImageURL: s.demoImageURL,
			Message:  "Demo mode: configure GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT for real AI generation.",
		}
	}

	var car, part imaging.Payload
	var g errgroup.Group
	g.Go(func() error {
		p, err := imaging.Decode(req.CarImage)
		if err != nil {
			return err
		}
		car = p
		return nil
	})
	g.Go(func() error {
		p, err := imaging.Decode(req.PartImage)
		if err != nil {
			return err
		}
		part = p
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("invalid image payload", "err", err)
		return Outcome{Status: StatusBadRequest, Message: "Both car_image and part_image must be base64-encoded images."}
	}

	prompt := ComposePrompt(req.PartName, req.PartCategory, req.PartDescription)

	resp, err := s.generator.GenerateComposite(ctx, prompt,
		gemini.ImageInput{Data: car.Data, MimeType: car.MimeType},
		gemini.ImageInput{Data: part.Data, MimeType: part.MimeType},
		gemini.OutputHints{AspectRatio: req.AspectRatio, ImageSize: req.ImageSize},
	)
	if err != nil {
		status, message := ClassifyFailure(err)
		s.logger.Error("generation failed", "status", string(status), "err", err)
		return Outcome{Status: status, Message: message}
	}

	result, err := gemini.ExtractResult(resp)
	if err != nil {
		if !errors.Is(err, gemini.ErrNoUsableOutput) {
			s.logger.Error("extract failed", "err", err)
		}
		return Outcome{Status: StatusError, Message: "The model returned no usable output. Please try again."}
	}

	if result.HasImage() {
		return Outcome{
			Status:    StatusSuccess,
			ImageData: "data:" + result.MimeType + ";base64," + result.DataBase64,
		}
	}

	// Text instead of an image: surface the advisory distinctly so the
	// frontend can still show a placeholder.
	s.logger.Info("model returned text instead of image")
	return Outcome{
		Status:   StatusTextResponse,
		ImageURL: s.demoImageURL,
		Message:  result.Text,
	}
}
