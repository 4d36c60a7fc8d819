package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/stevenrichter16/mypoem"
)

// Compile-time interface verification.
var _ mypoem.Drafter = (*Drafter)(nil)

// Drafter implements mypoem.Drafter using Google Gemini.
type Drafter struct {
	client GenerativeClient
	model  string
}

// NewDrafter creates a new Drafter.
func NewDrafter(client GenerativeClient, model string) *Drafter {
	return &Drafter{client: client, model: model}
}

// draftTemperature keeps revisions creative without drifting too far from
// the previous draft.
const draftTemperature float32 = 0.9

// Draft generates the next draft for the request. The response is plain
// poem text; a trailing newline is guaranteed.
func (d *Drafter) Draft(ctx context.Context, req mypoem.DraftRequest) (string, error) {
	prompt := BuildPrompt(req)

	contents := []*Content{{
		Parts: []*Part{{Text: prompt}},
	}}

	temp := draftTemperature
	config := &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}

	resp, err := d.client.GenerateContent(ctx, d.model, contents, config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: returned nil response")
	}

	draft := strings.TrimSpace(resp.Text)
	if draft == "" {
		return "", fmt.Errorf("gemini: returned empty draft")
	}
	return draft + "\n", nil
}

const systemInstruction = "You are a poet. Respond with the poem text only: " +
	"no title, no commentary, no markdown fences."

// BuildPrompt creates the user prompt for the Gemini API.
func BuildPrompt(req mypoem.DraftRequest) string {
	var sb strings.Builder

	if req.Previous == "" {
		fmt.Fprintf(&sb, "Write a short poem about: %s\n", req.Subject)
		return sb.String()
	}

	fmt.Fprintf(&sb, "Revise the following poem about %q. ", req.Subject)
	sb.WriteString("Keep what works, improve what doesn't, and keep it about the same length.\n\n")
	sb.WriteString(req.Previous)
	return sb.String()
}

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
