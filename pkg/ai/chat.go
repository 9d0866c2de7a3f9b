package ai

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "net/http"
    "os"
    "time"

    "github.com/meetpilot-team/meetpilot/pkg/config"
)

// ChatClient is a minimal client for chat-completion API calls used for
// transcript analysis
type ChatClient struct {
    apiKey  string
    baseURL string
    model   string
    client  *http.Client
}

// NewChatClient creates a chat client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewChatClient(cfg *config.AIConfig) *ChatClient {
    var apiKey string
    if cfg != nil {
        apiKey = cfg.APIKey
    }
    if apiKey == "" {
        apiKey = os.Getenv("AI_API_KEY")
    }

    var base string
    if cfg != nil && cfg.BaseURL != "" {
        base = cfg.BaseURL
    } else {
        base = os.Getenv("AI_BASE_URL")
        if base == "" {
            base = "https://api.openai.com"
        }
    }

    model := "gpt-4o"
    if cfg != nil && cfg.Model != "" {
        model = cfg.Model
    }

    timeout := 30 * time.Second
    if cfg != nil && cfg.Timeout > 0 {
        timeout = cfg.Timeout
    }

    return &ChatClient{
        apiKey:  apiKey,
        baseURL: base,
        model:   model,
        client:  &http.Client{Timeout: timeout},
    }
}

// Message is one chat message in a completion request
type Message struct {
    Role    string `json:"role"`
    Content string `json:"content"`
}

// ResponseFormat constrains the completion output shape
type ResponseFormat struct {
    Type       string      `json:"type"`
    JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

// JSONSchema names a strict output schema for the completion
type JSONSchema struct {
    Name   string          `json:"name"`
    Strict bool            `json:"strict"`
    Schema json.RawMessage `json:"schema"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
    Model          string          `json:"model,omitempty"`
    Messages       []Message       `json:"messages,omitempty"`
    Temperature    float64         `json:"temperature,omitempty"`
    MaxTokens      int             `json:"max_tokens,omitempty"`
    ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
    Choices []struct {
        Message struct {
            Content string `json:"content"`
        } `json:"message"`
    } `json:"choices"`
}

// CreateCompletion sends one chat-completion request and returns the
// assistant message content. No retry is attempted; the call is single-shot.
func (g *ChatClient) CreateCompletion(ctx context.Context, messages []Message, schema *JSONSchema) (string, error) {
    reqBody := ChatRequest{
        Model:       g.model,
        Messages:    messages,
        Temperature: 0.3,
        MaxTokens:   8000,
    }
    if schema != nil {
        reqBody.ResponseFormat = &ResponseFormat{Type: "json_schema", JSONSchema: schema}
    }

    b, err := json.Marshal(reqBody)
    if err != nil {
        return "", err
    }

    endpoint := g.baseURL + "/v1/chat/completions"
    req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
    if err != nil {
        return "", err
    }
    req.Header.Set("Authorization", "Bearer "+g.apiKey)
    req.Header.Set("Content-Type", "application/json")

    resp, err := g.client.Do(req)
    if err != nil {
        return "", err
    }
    defer resp.Body.Close()

    if resp.StatusCode >= 400 {
        return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
    }

    var cr ChatResponse
    if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
        return "", err
    }
    if len(cr.Choices) == 0 {
        return "", fmt.Errorf("empty response from chat completion")
    }
    return cr.Choices[0].Message.Content, nil
}
