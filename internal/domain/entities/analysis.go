package entities

// AnalysisResult is the structured output contracted from the chat-completion
// collaborator for a transcript. Field names follow the JSON schema sent with
// the request; extracted items keep the wire names (assignedTo, deadline) and
// are not remapped to storage column names here.
type AnalysisResult struct {
	Summary     []string              `json:"summary"`
	ActionItems []ExtractedActionItem `json:"actionItems"`
	Flowchart   string                `json:"flowchart"`
}

// ExtractedActionItem is one action item extracted from a transcript
type ExtractedActionItem struct {
	Task       string  `json:"task"`
	AssignedTo *string `json:"assignedTo"`
	Deadline   *string `json:"deadline"`
	Status     string  `json:"status"`
}

// MeetingAnalysis is the display-ready shape returned by the analysis
// gateway: the summary bullets joined into one string, the extracted items
// and the Mermaid flowchart untouched.
type MeetingAnalysis struct {
	Summary     string                `json:"summary"`
	ActionItems []ExtractedActionItem `json:"actionItems"`
	Flowchart   string                `json:"flowchart"`
}
