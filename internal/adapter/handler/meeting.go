package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	"github.com/meetpilot-team/meetpilot/internal/adapter/dto/common"
	meetingdto "github.com/meetpilot-team/meetpilot/internal/adapter/dto/meeting"
	meetinguse "github.com/meetpilot-team/meetpilot/internal/usecase/meeting"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// MeetingHandler exposes the meeting CRUD endpoints
type MeetingHandler struct {
	svc    *meetinguse.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc *meetinguse.Service, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, logger: logger}
}

// List returns meetings sorted by date descending
// @Summary      List meetings
// @Description  Returns meetings newest first, optionally filtered by platform, with action items aggregated
// @Tags         Meetings
// @Produce      json
// @Param        platform  query     string  false  "Exact platform match"
// @Param        limit     query     int     false  "Maximum results (default 10)"
// @Success      200       {object}  meetingdto.ListResponse
// @Router       /meetings [get]
func (h *MeetingHandler) List(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	meetings, err := h.svc.ListMeetings(c.Request().Context(), req.Platform, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.ListResponse{Success: true, Meetings: meetings})
}

// Get returns one meeting with its action items
// @Summary      Fetch a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meetingdto.Response
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *MeetingHandler) Get(c echo.Context) error {
	meeting, err := h.svc.GetMeeting(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.Response{Success: true, Meeting: meeting})
}

// Create inserts a new meeting
// @Summary      Create a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meetingdto.CreateMeetingRequest  true  "Meeting fields"
// @Success      201      {object}  meetingdto.Response
// @Failure      400      {object}  common.ErrorResponse
// @Router       /meetings [post]
func (h *MeetingHandler) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Title and platform are required"))
	}

	meeting, err := h.svc.CreateMeeting(c.Request().Context(), meetinguse.CreateMeetingInput{
		Title:         req.Title,
		Platform:      req.Platform,
		Duration:      req.Duration,
		Transcript:    req.Transcript,
		Summary:       req.Summary,
		FlowchartCode: req.FlowchartCode,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, meetingdto.Response{Success: true, Meeting: meeting})
}

// Update applies an allow-listed partial update
// @Summary      Update a meeting
// @Description  Partial update; fields outside the allow-list are dropped, explicit nulls persist as null
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Meeting ID"
// @Param        request  body      map[string]interface{}  true  "Fields to update"
// @Success      200      {object}  meetingdto.Response
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /meetings/{id} [put]
func (h *MeetingHandler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	candidates, err := updates.ParseJSONObject(body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	meeting, err := h.svc.UpdateMeeting(c.Request().Context(), c.Param("id"), candidates)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, meetingdto.Response{Success: true, Meeting: meeting})
}

// Delete removes a meeting
// @Summary      Delete a meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [delete]
func (h *MeetingHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteMeeting(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, common.MessageResponse{Success: true, Message: "Meeting deleted successfully"})
}
