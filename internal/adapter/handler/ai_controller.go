package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	aidto "github.com/meetpilot-team/meetpilot/internal/adapter/dto/ai"
	aiuse "github.com/meetpilot-team/meetpilot/internal/usecase/ai"
)

// AIController handles the transcript analysis and transcription endpoints
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// Summarize forwards a transcript to the analysis collaborator
// @Summary      Summarize a transcript
// @Description  Returns a bullet summary, extracted action items, and a Mermaid flowchart for the transcript
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      aidto.SummarizeRequest  true  "Transcript to analyze"
// @Success      200      {object}  aidto.SummarizeResponse
// @Failure      400      {object}  common.ErrorResponse  "Transcript is required"
// @Failure      500      {object}  common.ErrorResponse  "Failed to summarize meeting"
// @Router       /summarize [post]
func (ac *AIController) Summarize(c echo.Context) error {
	var req aidto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}

	analysis, err := ac.svc.Summarize(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, http.StatusOK, aidto.SummarizeResponse{
		Success:     true,
		Summary:     analysis.Summary,
		ActionItems: analysis.ActionItems,
		Flowchart:   analysis.Flowchart,
	})
}

// Transcribe returns the mock transcription result
// @Summary      Transcribe audio (mock)
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      aidto.TranscribeRequest  true  "Audio data or URL"
// @Success      200      {object}  aidto.TranscribeResponse
// @Failure      400      {object}  common.ErrorResponse  "Audio data or URL is required"
// @Router       /transcribe [post]
func (ac *AIController) Transcribe(c echo.Context) error {
	var req aidto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}

	transcript, err := ac.svc.Transcribe(c.Request().Context(), req.AudioData, req.AudioURL)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return HandleSuccess(ac.logger, c, http.StatusOK, aidto.TranscribeResponse{
		Success:    true,
		Transcript: transcript,
		Message:    "Transcription completed successfully",
	})
}
