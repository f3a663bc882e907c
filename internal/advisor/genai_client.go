package advisor

import (
	"context"

	"google.golang.org/genai"
)

const (
	// AnalysisModel is the Gemini model used for affinity scoring and
	// discovery.
	AnalysisModel = "gemini-1.5-pro"
	// SearchModel is the Gemini model used for search-grounded description
	// enrichment.
	SearchModel = "gemini-1.5-pro"
)

// GeminiLLMClient implements deps.LLMClient using the Gemini API.
type GeminiLLMClient struct {
	client      *genai.Client
	model       string
	searchModel string
}

// NewGeminiLLMClient wraps an existing genai client. The client handle is
// built once at startup and shared across requests.
func NewGeminiLLMClient(client *genai.Client) *GeminiLLMClient {
	return &GeminiLLMClient{
		client:      client,
		model:       AnalysisModel,
		searchModel: SearchModel,
	}
}

// GenerateContent generates content using the Gemini API.
func (c *GeminiLLMClient) GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, config)
	if err != nil {
		return "", err
	}

	return firstText(resp), nil
}

// GenerateWithSearch generates content with Google Search grounding enabled.
func (c *GeminiLLMClient) GenerateWithSearch(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.searchModel, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}, config)
	if err != nil {
		return "", err
	}

	return firstText(resp), nil
}

// firstText extracts the first non-empty text part from a response.
func firstText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
