package openai

import (
	"github.com/m-mizutani/horizon"
)

//go:generate go tool moq -out mock_test.go -pkg openai_test . APIClient

// Export convert functions for testing
var (
	ConvertTool   = convertTool
	ConvertInputs = convertInputs
)

// Export for testing
type APIClient = apiClient

// NewSessionWithAPIClient creates a new session with a custom API client for testing
func NewSessionWithAPIClient(client apiClient, cfg horizon.SessionConfig, model string) *Session {
	return newSession(client, cfg, model, generationParameters{})
}

// GetModel returns the default model for testing
func (c *Client) GetModel() string {
	return c.defaultModel
}

// GetBaseURL returns the configured base URL for testing
func (c *Client) GetBaseURL() string {
	return c.baseURL
}
