package meeting

// CreateMeetingRequest is the POST /meetings body
type CreateMeetingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Platform      string  `json:"platform" validate:"required"`
	Duration      *int    `json:"duration"`
	Transcript    *string `json:"transcript"`
	Summary       *string `json:"summary"`
	FlowchartCode *string `json:"flowchart_code"`
}

// ListMeetingsRequest is the GET /meetings query string
type ListMeetingsRequest struct {
	Platform string `query:"platform"`
	Limit    int    `query:"limit"`
}
