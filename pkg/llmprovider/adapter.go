package llmprovider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"

	"task-calendar/pkg/deepseek"
	"task-calendar/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// System instruction goes first
	if req.SystemInstruction != nil {
		deepseekReq.Messages = append(deepseekReq.Messages, deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		deepseekReq.Messages = append(deepseekReq.Messages, deepseek.Message{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Content.Parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts the official OpenAI SDK. Any OpenAI-compatible
// endpoint works through the client's base URL.
type OpenAIAdapter struct {
	client openai.Client
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.Client, model string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: convertToOpenAIMessages(req),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	out := &Response{
		Content:      Message{Role: "assistant"},
		ProviderName: a.Name(),
		ModelName:    completion.Model,
		Usage: &Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}
	if len(completion.Choices) > 0 && completion.Choices[0].Message.Content != "" {
		out.Content.Parts = []Part{{Text: completion.Choices[0].Message.Content}}
	}
	return out, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.SystemMessage(req.SystemInstruction.Text()))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant", "model":
			msgs = append(msgs, openai.AssistantMessage(m.Text()))
		case "system":
			msgs = append(msgs, openai.SystemMessage(m.Text()))
		default:
			msgs = append(msgs, openai.UserMessage(m.Text()))
		}
	}
	return msgs
}
