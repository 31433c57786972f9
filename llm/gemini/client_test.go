package gemini_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/llm/gemini"
	"github.com/m-mizutani/horizon/tools"
	"google.golang.org/genai"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 3,
		},
	}
}

func callResponse(calls ...*genai.FunctionCall) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, len(calls))
	for i, fc := range calls {
		parts[i] = &genai.Part{FunctionCall: fc}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}

func sessionConfig(t *testing.T) horizon.SessionConfig {
	t.Helper()
	registry, err := horizon.NewRegistry(tools.Default()...)
	gt.NoError(t, err).Required()
	return horizon.NewSessionConfig(
		horizon.WithSessionSystemPrompt("You are Horizon."),
		horizon.WithSessionTools(registry.Specs()...),
	)
}

func TestSessionText(t *testing.T) {
	mockClient := &apiClientMock{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse("hello"), nil
		},
	}
	ssn := gemini.NewSessionWithAPIClient(mockClient, sessionConfig(t), "test-model")

	resp, err := ssn.GenerateContent(context.Background(), horizon.Text("hi"))
	gt.NoError(t, err)
	gt.Equal(t, resp.Text(), "hello")
	gt.Equal(t, resp.InputToken, 10)
	gt.Equal(t, resp.OutputToken, 3)
	gt.A(t, resp.FunctionCalls).Length(0)

	calls := mockClient.GenerateContentCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Model, "test-model")
	gt.A(t, calls[0].Contents).Length(1)
	gt.Equal(t, calls[0].Contents[0].Role, "user")
	gt.Equal(t, calls[0].Contents[0].Parts[0].Text, "hi")

	cfg := calls[0].Config
	gt.Equal(t, cfg.SystemInstruction.Parts[0].Text, "You are Horizon.")
	gt.A(t, cfg.Tools).Length(1)

	var names []string
	for _, decl := range cfg.Tools[0].FunctionDeclarations {
		names = append(names, decl.Name)
	}
	gt.Equal(t, names, []string{"readFile", "writeFile", "runCommand"})
	gt.Equal(t, ssn.Checkpoint(), 2)
}

func TestSessionFunctionCallRoundTrip(t *testing.T) {
	step := 0
	mockClient := &apiClientMock{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			step++
			if step == 1 {
				return callResponse(
					&genai.FunctionCall{Name: "readFile", Args: map[string]any{"path": "a.txt"}},
					&genai.FunctionCall{ID: "given", Name: "runCommand", Args: map[string]any{"command": "ls"}},
				), nil
			}
			return textResponse("done"), nil
		},
	}
	ssn := gemini.NewSessionWithAPIClient(mockClient, sessionConfig(t), "test-model")
	ctx := context.Background()

	resp, err := ssn.GenerateContent(ctx, horizon.Text("read"))
	gt.NoError(t, err)
	gt.A(t, resp.FunctionCalls).Length(2)
	gt.Equal(t, resp.FunctionCalls[0].Name, "readFile")
	gt.Equal(t, resp.FunctionCalls[0].Arguments["path"], any("a.txt"))
	gt.NotEqual(t, resp.FunctionCalls[0].ID, "")
	gt.Equal(t, resp.FunctionCalls[1].ID, "given")

	_, err = ssn.GenerateContent(ctx,
		horizon.FunctionResponse{ID: resp.FunctionCalls[0].ID, Name: "readFile", Result: "content"},
		horizon.FunctionResponse{ID: "given", Name: "runCommand", Result: "Error executing tool runCommand: x", IsError: true},
	)
	gt.NoError(t, err)

	calls := mockClient.GenerateContentCalls()
	gt.A(t, calls).Length(2)

	// user, model(function calls), user(function responses)
	contents := calls[1].Contents
	gt.A(t, contents).Length(3)
	gt.Equal(t, contents[1].Role, "model")

	results := contents[2].Parts
	gt.A(t, results).Length(2)
	gt.Equal(t, results[0].FunctionResponse.Name, "readFile")
	gt.Equal(t, results[0].FunctionResponse.ID, "")
	gt.Equal(t, results[0].FunctionResponse.Response["result"], any("content"))
	gt.Equal(t, results[1].FunctionResponse.ID, "given")
	gt.Equal(t, results[1].FunctionResponse.Response["result"], any("Error executing tool runCommand: x"))
}

func TestSessionRollback(t *testing.T) {
	fail := false
	mockClient := &apiClientMock{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			if fail {
				return nil, errors.New("unavailable")
			}
			return callResponse(&genai.FunctionCall{Name: "readFile", Args: map[string]any{"path": "x"}}), nil
		},
	}
	ssn := gemini.NewSessionWithAPIClient(mockClient, sessionConfig(t), "test-model")
	ctx := context.Background()

	checkpoint := ssn.Checkpoint()
	_, err := ssn.GenerateContent(ctx, horizon.Text("go"))
	gt.NoError(t, err)
	gt.Equal(t, ssn.Checkpoint(), 2)

	fail = true
	_, err = ssn.GenerateContent(ctx, horizon.FunctionResponse{Name: "readFile", Result: "x"})
	gt.Error(t, err)
	gt.Equal(t, ssn.Checkpoint(), 2)

	ssn.Rollback(checkpoint)
	gt.Equal(t, ssn.Checkpoint(), 0)

	fail = false
	_, err = ssn.GenerateContent(ctx, horizon.Text("again"))
	gt.NoError(t, err)
	gt.A(t, mockClient.GenerateContentCalls()[2].Contents).Length(1)
}

func TestSessionRateLimit(t *testing.T) {
	testCases := map[string]error{
		"value":   genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "slow down"},
		"pointer": &genai.APIError{Code: 429, Message: "slow down"},
	}

	for name, apiErr := range testCases {
		t.Run(name, func(t *testing.T) {
			mockClient := &apiClientMock{
				GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return nil, apiErr
				},
			}
			ssn := gemini.NewSessionWithAPIClient(mockClient, horizon.NewSessionConfig(), "test-model")

			_, err := ssn.GenerateContent(context.Background(), horizon.Text("hi"))
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, horizon.ErrTagRateLimit))
			gt.Equal(t, horizon.Classify(err), horizon.FailureRateLimit)
		})
	}

	t.Run("server error is not tagged", func(t *testing.T) {
		mockClient := &apiClientMock{
			GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, genai.APIError{Code: 500, Status: "INTERNAL", Message: "internal"}
			},
		}
		ssn := gemini.NewSessionWithAPIClient(mockClient, horizon.NewSessionConfig(), "test-model")

		_, err := ssn.GenerateContent(context.Background(), horizon.Text("hi"))
		gt.False(t, goerr.HasTag(err, horizon.ErrTagRateLimit))
	})
}

func TestSessionMalformedFunctionCall(t *testing.T) {
	mockClient := &apiClientMock{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{FinishReason: genai.FinishReasonMalformedFunctionCall},
				},
			}, nil
		},
	}
	ssn := gemini.NewSessionWithAPIClient(mockClient, horizon.NewSessionConfig(), "test-model")

	_, err := ssn.GenerateContent(context.Background(), horizon.Text("hi"))
	gt.Error(t, err)
	gt.Equal(t, ssn.Checkpoint(), 0)
}

func TestConvertTool(t *testing.T) {
	decl := gemini.ConvertTool((&tools.WriteFile{}).Spec())
	gt.Equal(t, decl.Name, "writeFile")
	gt.Equal(t, decl.Parameters.Type, genai.TypeObject)
	gt.Equal(t, decl.Parameters.Required, []string{"content", "path"})
	gt.Equal(t, decl.Parameters.Properties["path"].Type, genai.TypeString)

	empty := gemini.ConvertTool(horizon.ToolSpec{Name: "noop"})
	gt.NotNil(t, empty.Parameters.Required)
}

func TestConvertParameterToSchema(t *testing.T) {
	s := gemini.ConvertParameterToSchema(&horizon.Parameter{
		Type: horizon.TypeArray,
		Items: &horizon.Parameter{
			Type: horizon.TypeObject,
			Properties: map[string]*horizon.Parameter{
				"id": {Type: horizon.TypeInteger, Required: true},
			},
		},
	})
	gt.Equal(t, s.Type, genai.TypeArray)
	gt.Equal(t, s.Items.Type, genai.TypeObject)
	gt.Equal(t, s.Items.Properties["id"].Type, genai.TypeInteger)
	gt.Equal(t, s.Items.Required, []string{"id"})
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := gemini.New(context.Background(), "")
	gt.True(t, errors.Is(err, horizon.ErrMissingCredential))
}

func TestClientOptions(t *testing.T) {
	client, err := gemini.New(context.Background(), "dummy-key",
		gemini.WithModel("gemini-2.5-pro"),
		gemini.WithTemperature(0.5),
		gemini.WithThinkingBudget(-1),
	)
	gt.NoError(t, err).Required()
	gt.Equal(t, client.GetModel(), "gemini-2.5-pro")

	cfg := client.GetGenerationConfig()
	gt.Equal(t, *cfg.Temperature, float32(0.5))
	gt.Equal(t, *cfg.ThinkingConfig.ThinkingBudget, int32(-1))

	defaulted, err := gemini.New(context.Background(), "dummy-key", gemini.WithModel(""))
	gt.NoError(t, err).Required()
	gt.Equal(t, defaulted.GetModel(), gemini.DefaultModel)
}

func TestGeminiLive(t *testing.T) {
	apiKey, ok := os.LookupEnv("TEST_GEMINI_API_KEY")
	if !ok {
		t.Skip("TEST_GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := gemini.New(ctx, apiKey)
	gt.NoError(t, err).Required()

	registry, err := horizon.NewRegistry(tools.Default()...)
	gt.NoError(t, err).Required()

	conv := horizon.New(client, horizon.WithInvoker(registry))
	text, err := conv.Send(ctx, "Reply with the single word: pong")
	gt.NoError(t, err)
	gt.S(t, text).Contains("pong")
}
