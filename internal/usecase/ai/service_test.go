package ai

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	pkgai "github.com/meetpilot-team/meetpilot/pkg/ai"
	"github.com/meetpilot-team/meetpilot/pkg/config"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (Service, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		AI: config.AIConfig{
			BaseURL:         ts.URL,
			APIKey:          "test-key",
			Model:           "test-model",
			Timeout:         5 * time.Second,
			TranscribeDelay: 10 * time.Millisecond,
		},
	}
	chat := pkgai.NewChatClient(&cfg.AI)
	return NewService(chat, cfg, zap.NewNop()), ts
}

func completionReply(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}
}

func TestSummarize_Success(t *testing.T) {
	svc, _ := newTestService(t, completionReply(`{
		"summary": ["Reviewed sprint progress", "Agreed on beta date"],
		"actionItems": [
			{"task": "Finalize dashboard", "assignedTo": "Sarah", "deadline": "2025-10-25", "status": "Pending"}
		],
		"flowchart": "graph TD; Start-->End;"
	}`))

	analysis, err := svc.Summarize(context.Background(), "long transcript here")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if analysis.Summary != "Reviewed sprint progress\n• Agreed on beta date" {
		t.Errorf("summary = %q", analysis.Summary)
	}
	if len(analysis.ActionItems) != 1 || analysis.ActionItems[0].Task != "Finalize dashboard" {
		t.Errorf("actionItems = %+v", analysis.ActionItems)
	}
	if analysis.Flowchart != "graph TD; Start-->End;" {
		t.Errorf("flowchart = %q", analysis.Flowchart)
	}
}

func TestSummarize_EmptyTranscript(t *testing.T) {
	svc, _ := newTestService(t, completionReply(`{}`))

	_, err := svc.Summarize(context.Background(), "")
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPCode != http.StatusBadRequest {
		t.Errorf("HTTPCode = %d, want 400", appErr.HTTPCode)
	}
	if appErr.Message != "Transcript is required" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestSummarize_UpstreamFailure(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Summarize(context.Background(), "transcript")
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPCode != http.StatusInternalServerError {
		t.Errorf("HTTPCode = %d, want 500", appErr.HTTPCode)
	}
	if appErr.Message != "Failed to summarize meeting" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestSummarize_MalformedContent(t *testing.T) {
	svc, _ := newTestService(t, completionReply("sorry, I cannot help with that"))

	_, err := svc.Summarize(context.Background(), "transcript")
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.Message != "Failed to summarize meeting" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestTranscribe_ReturnsMockTranscript(t *testing.T) {
	svc, _ := newTestService(t, completionReply(`{}`))

	start := time.Now()
	transcript, err := svc.Transcribe(context.Background(), "", "http://example.com/audio.mp3")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Error("Transcribe() returned before the processing delay elapsed")
	}
	if transcript != mockTranscript {
		t.Errorf("unexpected transcript %q", transcript)
	}
}

func TestTranscribe_RequiresInput(t *testing.T) {
	svc, _ := newTestService(t, completionReply(`{}`))

	_, err := svc.Transcribe(context.Background(), "", "")
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPCode != http.StatusBadRequest {
		t.Errorf("HTTPCode = %d, want 400", appErr.HTTPCode)
	}
	if appErr.Message != "Audio data or URL is required" {
		t.Errorf("message = %q", appErr.Message)
	}
}

func TestTranscribe_CancelledContext(t *testing.T) {
	svc, _ := newTestService(t, completionReply(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Transcribe(ctx, "data", "")
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
