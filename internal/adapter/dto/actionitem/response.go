package actionitem

import "github.com/meetpilot-team/meetpilot/internal/domain/entities"

// ListResponse is the GET /action-items envelope
type ListResponse struct {
	Success     bool                   `json:"success"`
	ActionItems []*entities.ActionItem `json:"actionItems"`
}

// Response is the single-item envelope
type Response struct {
	Success    bool                 `json:"success"`
	ActionItem *entities.ActionItem `json:"actionItem"`
}
