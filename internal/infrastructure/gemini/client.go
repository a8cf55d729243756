package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateBio produces three bio drafts keyed "option_1".."option_3".
func (c *GeminiClient) GenerateBio(ctx context.Context, fullName string, interests []string, location string) (map[string]string, error) {
	prompt := fmt.Sprintf(`
		Write 3 short dating-app bios for this person.
		Name: %s
		Interests: %v
		Location: %s

		Task: each bio is 1-2 sentences, warm, specific, no hashtags.
		Output: JSON object {"option_1": "...", "option_2": "...", "option_3": "..."}.
	`, fullName, interests, location)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	text := collectText(resp)
	if text == "" {
		return nil, fmt.Errorf("no content generated")
	}

	var bios map[string]string
	if err := json.Unmarshal([]byte(stripFences(text)), &bios); err != nil {
		return nil, fmt.Errorf("failed to parse bios: %w", err)
	}
	return bios, nil
}

// CompletionTip is a nudge for finishing one incomplete profile section.
type CompletionTip struct {
	Section string `json:"section"`
	Tip     string `json:"tip"`
}

// GenerateCompletionTips writes one encouraging sentence per incomplete
// section. Falls back to canned tips when the API is unavailable so the
// setup screen never goes empty.
func (c *GeminiClient) GenerateCompletionTips(ctx context.Context, sections []string) ([]CompletionTip, error) {
	prompt := fmt.Sprintf(`
		A dating-app user has not finished these profile sections: %v.

		Task: for each section, write one short, encouraging sentence (max 15
		words) nudging the user to complete it.
		Output: JSON array like [{"section": "...", "tip": "..."}].
	`, sections)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return FallbackTips(sections), nil
	}

	text := collectText(resp)
	if text == "" {
		return FallbackTips(sections), nil
	}

	var tips []CompletionTip
	if err := json.Unmarshal([]byte(stripFences(text)), &tips); err != nil {
		return FallbackTips(sections), nil
	}
	return tips, nil
}

// FallbackTips covers the no-AI and API-failure paths.
func FallbackTips(sections []string) []CompletionTip {
	tips := make([]CompletionTip, 0, len(sections))
	for _, s := range sections {
		tips = append(tips, CompletionTip{
			Section: s,
			Tip:     fmt.Sprintf("Finish your %s section to stand out.", strings.ToLower(s)),
		})
	}
	return tips
}

func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}

func stripFences(text string) string {
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
