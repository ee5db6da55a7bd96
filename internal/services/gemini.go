package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/auth/credentials"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/career-pathfinder/internal/config"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

type GenerationParams struct {
	Temperature     float32
	MaxOutputTokens int32
}

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

// NewGeminiService builds a Vertex AI backed client. The client is safe for
// concurrent use and is meant to be created once per process.
func NewGeminiService(ctx context.Context, cfg config.VertexConfig, logger *zap.Logger) (GeminiService, error) {
	clientConfig := &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.ProjectID,
		Location: cfg.Location,
	}

	if cfg.CredentialsFile != "" {
		creds, err := credentials.DetectDefault(&credentials.DetectOptions{
			Scopes:          []string{cloudPlatformScope},
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load credentials from %s: %w", cfg.CredentialsFile, err)
		}
		clientConfig.Credentials = creds
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
		logger:    logger,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	temperature := params.Temperature
	generationConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  params.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), generationConfig)
	if err != nil {
		return "", classifyError(err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrRemoteFailure)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		if len(resp.Candidates) > 0 {
			g.logger.Warn("📄 Gemini returned no text",
				requestField(ctx),
				zap.String("finish_reason", string(resp.Candidates[0].FinishReason)),
			)
		}
		return "", fmt.Errorf("%w: no text content in response", ErrRemoteFailure)
	}

	g.logger.Debug("📊 Gemini response received", requestField(ctx), zap.Int("chars", len(text)))
	return text, nil
}

func classifyError(err error) error {
	if isCapacityError(err) {
		return fmt.Errorf("%w: %w", ErrTransientCapacity, err)
	}
	return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
}

func isCapacityError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isCapacityStatus(apiErr.Code, apiErr.Status)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isCapacityStatus(apiErrPtr.Code, apiErrPtr.Status)
	}

	return strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
}

func isCapacityStatus(code int, status string) bool {
	return code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED"
}
