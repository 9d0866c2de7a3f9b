package actionitem

// CreateActionItemRequest is the POST /action-items body
type CreateActionItemRequest struct {
	MeetingID  *string `json:"meeting_id"`
	Task       string  `json:"task" validate:"required"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"`
	Status     string  `json:"status"`
}

// ListActionItemsRequest is the GET /action-items query string
type ListActionItemsRequest struct {
	MeetingID  string `query:"meeting_id"`
	Status     string `query:"status"`
	AssignedTo string `query:"assigned_to"`
}
