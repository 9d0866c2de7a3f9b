package ai

// SummarizeRequest is the POST /summarize body
type SummarizeRequest struct {
	Transcript string `json:"transcript"`
}

// TranscribeRequest is the POST /transcribe body; one of the two fields
// must be present
type TranscribeRequest struct {
	AudioData string `json:"audioData"`
	AudioURL  string `json:"audioUrl"`
}
