package meeting

import "github.com/meetpilot-team/meetpilot/internal/domain/entities"

// ListResponse is the GET /meetings envelope
type ListResponse struct {
	Success  bool                `json:"success"`
	Meetings []*entities.Meeting `json:"meetings"`
}

// Response is the single-meeting envelope
type Response struct {
	Success bool              `json:"success"`
	Meeting *entities.Meeting `json:"meeting"`
}
