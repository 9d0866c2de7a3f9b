package ai

import "github.com/meetpilot-team/meetpilot/internal/domain/entities"

// SummarizeResponse relays the analysis gateway result. Action items keep
// the collaborator's wire names (assignedTo, deadline); remapping to storage
// names is the consumer's concern.
type SummarizeResponse struct {
	Success     bool                           `json:"success"`
	Summary     string                         `json:"summary"`
	ActionItems []entities.ExtractedActionItem `json:"actionItems"`
	Flowchart   string                         `json:"flowchart"`
}

// TranscribeResponse carries the mock transcription result
type TranscribeResponse struct {
	Success    bool   `json:"success"`
	Transcript string `json:"transcript"`
	Message    string `json:"message,omitempty"`
}
