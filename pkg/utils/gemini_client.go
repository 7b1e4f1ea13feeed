package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

// GeminiGenerator implements TextGenerator using Google's Gemini models.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates a new Gemini client
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

// GenerateText sends the system instruction as the leading part of the user
// turn followed by the prompt, and concatenates the text parts of the first candidate.
func (g *GeminiGenerator) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	model := g.client.GenerativeModel(req.Model)
	model.SetTemperature(req.Temperature)

	parts := make([]genai.Part, 0, 2)
	if strings.TrimSpace(req.SystemInstruction) != "" {
		parts = append(parts, genai.Text(req.SystemInstruction))
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		if isGeminiOverloaded(err) {
			return "", Classify(ErrModelOverloaded, err)
		}
		return "", Classify(ErrUpstreamTransport, fmt.Errorf("gemini API call failed: %w", err))
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func isGeminiOverloaded(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == http.StatusServiceUnavailable {
		return true
	}
	if apiErr, ok := apierror.FromError(err); ok {
		if apiErr.HTTPCode() == http.StatusServiceUnavailable {
			return true
		}
		if st := apiErr.GRPCStatus(); st != nil && st.Code() == codes.Unavailable {
			return true
		}
	}
	return false
}

// NewTextGenerator picks the model provider by name.
func NewTextGenerator(ctx context.Context, provider, apiKey string) (TextGenerator, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerator(openai.NewClient(apiKey)), nil
	case "gemini", "":
		return NewGeminiGenerator(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
