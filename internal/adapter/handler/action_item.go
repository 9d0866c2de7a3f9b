package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	itemdto "github.com/meetpilot-team/meetpilot/internal/adapter/dto/actionitem"
	"github.com/meetpilot-team/meetpilot/internal/adapter/dto/common"
	"github.com/meetpilot-team/meetpilot/internal/domain/repositories"
	meetinguse "github.com/meetpilot-team/meetpilot/internal/usecase/meeting"
	"github.com/meetpilot-team/meetpilot/pkg/updates"
)

// ActionItemHandler exposes the action item endpoints
type ActionItemHandler struct {
	svc    *meetinguse.Service
	logger *zap.Logger
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(svc *meetinguse.Service, logger *zap.Logger) *ActionItemHandler {
	return &ActionItemHandler{svc: svc, logger: logger}
}

// List returns action items newest first
// @Summary      List action items
// @Description  Filter by meeting, status, or case-insensitive assignee substring; meeting display fields joined
// @Tags         ActionItems
// @Produce      json
// @Param        meeting_id   query     string  false  "Exact meeting id"
// @Param        status       query     string  false  "Exact status"
// @Param        assigned_to  query     string  false  "Assignee substring, case-insensitive"
// @Success      200          {object}  itemdto.ListResponse
// @Router       /action-items [get]
func (h *ActionItemHandler) List(c echo.Context) error {
	var req itemdto.ListActionItemsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	items, err := h.svc.ListActionItems(c.Request().Context(), repositories.ActionItemFilters{
		MeetingID:  req.MeetingID,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, itemdto.ListResponse{Success: true, ActionItems: items})
}

// Create inserts a new action item, status defaulting to Pending
// @Summary      Create an action item
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        request  body      itemdto.CreateActionItemRequest  true  "Action item fields"
// @Success      201      {object}  itemdto.Response
// @Failure      400      {object}  common.ErrorResponse
// @Router       /action-items [post]
func (h *ActionItemHandler) Create(c echo.Context) error {
	var req itemdto.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Task is required"))
	}

	item, err := h.svc.CreateActionItem(c.Request().Context(), meetinguse.CreateActionItemInput{
		MeetingID:  req.MeetingID,
		Task:       req.Task,
		AssignedTo: req.AssignedTo,
		Deadline:   req.Deadline,
		Status:     req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, itemdto.Response{Success: true, ActionItem: item})
}

// Update applies an allow-listed partial update
// @Summary      Update an action item
// @Tags         ActionItems
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Action item ID"
// @Param        request  body      map[string]interface{}  true  "Fields to update"
// @Success      200      {object}  itemdto.Response
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /action-items/{id} [put]
func (h *ActionItemHandler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	candidates, err := updates.ParseJSONObject(body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	item, err := h.svc.UpdateActionItem(c.Request().Context(), c.Param("id"), candidates)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, itemdto.Response{Success: true, ActionItem: item})
}

// Delete removes an action item
// @Summary      Delete an action item
// @Tags         ActionItems
// @Produce      json
// @Param        id   path      string  true  "Action item ID"
// @Success      200  {object}  common.MessageResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /action-items/{id} [delete]
func (h *ActionItemHandler) Delete(c echo.Context) error {
	if err := h.svc.DeleteActionItem(c.Request().Context(), c.Param("id")); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, common.MessageResponse{Success: true, Message: "Action item deleted successfully"})
}
