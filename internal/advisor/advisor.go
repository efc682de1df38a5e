package advisor

import (
	"context"
	"errors"
	"fmt"

	"treasury-curve/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoCurve is returned when there is nothing to describe.
var ErrNoCurve = errors.New("no curve data to describe")

// LLMClient abstracts the OpenAI chat completions API for testability.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// CommentaryService turns a curve snapshot into a few sentences of prose.
type CommentaryService struct {
	tracer trace.Tracer
	llm    LLMClient
	model  string
}

func NewCommentaryService(tracer trace.Tracer, llm LLMClient, model string) *CommentaryService {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &CommentaryService{
		tracer: tracer,
		llm:    llm,
		model:  model,
	}
}

func (s *CommentaryService) Describe(ctx context.Context, snap *domain.CurveSnapshot) (string, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.describe")
	defer span.End()

	if snap == nil || len(snap.Series) == 0 {
		return "", ErrNoCurve
	}
	span.SetAttributes(attribute.Int("series.points", len(snap.Series)))

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(BuildSystemPrompt(FormatCurveContext(snap))),
		openai.UserMessage("Describe the current shape of the Treasury yield curve."),
	}

	reply, err := s.callLLM(ctx, messages)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("commentary unavailable: %w", err)
	}
	return reply, nil
}

func (s *CommentaryService) callLLM(
	ctx context.Context,
	messages []openai.ChatCompletionMessageParamUnion,
) (string, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.llm-call")
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.model", s.model),
		attribute.Int("llm.message_count", len(messages)),
	)

	completion, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in LLM response")
	}

	reply := completion.Choices[0].Message.Content
	span.SetAttributes(attribute.Int("llm.reply_length", len(reply)))
	return reply, nil
}

// openaiClient wraps the official SDK's chat completions service.
type openaiClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey string) LLMClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &openaiClient{client: client}
}

func (c *openaiClient) CreateChatCompletion(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
