package ai

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	pkgai "github.com/meetpilot-team/meetpilot/pkg/ai"
	"github.com/meetpilot-team/meetpilot/pkg/config"
)

// Service is the transcript analysis gateway: one forwarded chat-completion
// call per transcript, plus the mock transcription endpoint
type Service interface {
	Summarize(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error)
	Transcribe(ctx context.Context, audioData, audioURL string) (string, error)
}

type service struct {
	chat            *pkgai.ChatClient
	parser          *Parser
	logger          *zap.Logger
	transcribeDelay time.Duration
}

// NewService creates the analysis gateway
func NewService(chat *pkgai.ChatClient, cfg *config.Config, logger *zap.Logger) Service {
	return &service{
		chat:            chat,
		parser:          NewParser(),
		logger:          logger,
		transcribeDelay: cfg.AI.TranscribeDelay,
	}
}

const analysisSystemPrompt = `You are an AI meeting assistant. Analyze the given meeting transcript and:
1. Summarize the discussion in bullet points.
2. Extract clear action items with assignees and deadlines if mentioned.
3. Generate a Mermaid.js flowchart syntax representing the logical flow of the meeting.

Return the output in JSON format.`

// analysisSchema is the strict output contract sent with every request: all
// three top-level fields required, no additional properties, and every
// extracted item carries exactly task/assignedTo/deadline/status.
var analysisSchema = &pkgai.JSONSchema{
	Name:   "meeting_analysis",
	Strict: true,
	Schema: json.RawMessage(`{
		"type": "object",
		"properties": {
			"summary": {
				"type": "array",
				"items": {"type": "string"}
			},
			"actionItems": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"task": {"type": "string"},
						"assignedTo": {"type": ["string", "null"]},
						"deadline": {"type": ["string", "null"]},
						"status": {"type": "string"}
					},
					"required": ["task", "assignedTo", "deadline", "status"],
					"additionalProperties": false
				}
			},
			"flowchart": {"type": "string"}
		},
		"required": ["summary", "actionItems", "flowchart"],
		"additionalProperties": false
	}`),
}

// Summarize forwards the transcript to the chat-completion collaborator and
// relays its structured reply. Every upstream failure surfaces as the same
// generic error; the call is never retried.
func (s *service) Summarize(ctx context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	if transcript == "" {
		return nil, errors.ErrInvalidArgument("Transcript is required")
	}

	messages := []pkgai.Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: "Please analyze this meeting transcript: " + transcript},
	}

	content, err := s.chat.CreateCompletion(ctx, messages, analysisSchema)
	if err != nil {
		s.logger.Error("summarize: completion call failed", zap.Error(err))
		return nil, errors.ErrAISummaryFailed(err)
	}

	result, err := s.parser.ParseAnalysisResponse(content)
	if err != nil {
		s.logger.Error("summarize: unparseable completion content", zap.Error(err))
		return nil, errors.ErrAISummaryFailed(err)
	}

	return &entities.MeetingAnalysis{
		Summary:     s.parser.JoinSummary(result.Summary),
		ActionItems: result.ActionItems,
		Flowchart:   result.Flowchart,
	}, nil
}

// mockTranscript is the fixed transcription result. Real speech-to-text is
// out of scope; the endpoint simulates processing time and returns this.
const mockTranscript = `Welcome everyone to today's meeting. Let's start by reviewing our progress from last week. ` +
	`John has completed the authentication system and it's now ready for testing. ` +
	`Sarah has been working on the dashboard redesign and the wireframes look great. ` +
	`Mike has optimized our API response times by 40%. ` +
	`For this week, John will focus on implementing the user profile feature. ` +
	`Sarah will finalize the dashboard components and start on the mobile responsive design. ` +
	`Mike will work on database optimization and implement caching. ` +
	`Our deadline for the beta release is October 25th. ` +
	`Let's schedule our next check-in for Friday at 2 PM. ` +
	`Any questions or concerns before we wrap up?`

// Transcribe validates the request and returns the mock transcript after a
// fixed processing delay
func (s *service) Transcribe(ctx context.Context, audioData, audioURL string) (string, error) {
	if audioData == "" && audioURL == "" {
		return "", errors.ErrInvalidArgument("Audio data or URL is required")
	}

	select {
	case <-ctx.Done():
		return "", errors.ErrAITranscriptionFailed(ctx.Err())
	case <-time.After(s.transcribeDelay):
	}
	return mockTranscript, nil
}
