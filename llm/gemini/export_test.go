package gemini

import (
	"github.com/m-mizutani/horizon"
	"google.golang.org/genai"
)

//go:generate go tool moq -out mock_test.go -pkg gemini_test . APIClient

// Export convert functions for testing
var (
	ConvertTool              = convertTool
	ConvertParameterToSchema = convertParameterToSchema
)

// GetGenerationConfig returns the generationConfig for testing
func (c *Client) GetGenerationConfig() *genai.GenerateContentConfig {
	return c.generationConfig
}

// GetModel returns the default model for testing
func (c *Client) GetModel() string {
	return c.defaultModel
}

// Export for testing
type APIClient = apiClient

// NewSessionWithAPIClient creates a new session with a custom API client for testing
func NewSessionWithAPIClient(client apiClient, cfg horizon.SessionConfig, model string) *Session {
	return newSession(client, cfg, model, nil)
}

// RequestConfig returns the generation config sent with every request for testing
func (s *Session) RequestConfig() *genai.GenerateContentConfig {
	return s.config
}
