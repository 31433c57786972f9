package claude

import (
	"github.com/m-mizutani/horizon"
)

//go:generate go tool moq -out mock_test.go -pkg claude_test . APIClient

// Export convert functions for testing
var (
	ConvertTool        = convertTool
	ConvertInputs      = convertInputs
	CreateSystemPrompt = createSystemPrompt
)

// Export for testing
type APIClient = apiClient

// NewSessionWithAPIClient creates a new session with a custom API client for testing
func NewSessionWithAPIClient(client apiClient, cfg horizon.SessionConfig, model string) *Session {
	return newSession(client, cfg, model, generationParameters{
		Temperature: -1.0,
		TopP:        -1.0,
		MaxTokens:   8192,
	})
}

// GetModel returns the default model for testing
func (c *Client) GetModel() string {
	return c.defaultModel
}
