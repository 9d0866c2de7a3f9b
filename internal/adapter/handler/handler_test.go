package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meetpilot-team/meetpilot/errors"
	"github.com/meetpilot-team/meetpilot/internal/adapter/repository"
	"github.com/meetpilot-team/meetpilot/internal/domain/entities"
	meetinguse "github.com/meetpilot-team/meetpilot/internal/usecase/meeting"
	"github.com/meetpilot-team/meetpilot/pkg/config"
	pkgvalidator "github.com/meetpilot-team/meetpilot/pkg/validator"
)

// stubAnalysis satisfies the analysis gateway without a live collaborator
type stubAnalysis struct {
	summarizeErr error
}

func (s *stubAnalysis) Summarize(_ context.Context, transcript string) (*entities.MeetingAnalysis, error) {
	if transcript == "" {
		return nil, errors.ErrInvalidArgument("Transcript is required")
	}
	if s.summarizeErr != nil {
		return nil, s.summarizeErr
	}
	return &entities.MeetingAnalysis{
		Summary:     "Discussed roadmap\n• Agreed on dates",
		ActionItems: []entities.ExtractedActionItem{{Task: "Ship it", Status: "Pending"}},
		Flowchart:   "graph TD; A-->B;",
	}, nil
}

func (s *stubAnalysis) Transcribe(_ context.Context, audioData, audioURL string) (string, error) {
	if audioData == "" && audioURL == "" {
		return "", errors.ErrInvalidArgument("Audio data or URL is required")
	}
	return "mock transcript", nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	logger := zap.NewNop()
	store := repository.NewMemoryStore()
	svc := meetinguse.NewService(store.Meetings(), store.ActionItems(), logger)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Store.Backend = config.StoreBackendMemory

	router := NewRouter(cfg,
		NewMeetingHandler(svc, logger),
		NewActionItemHandler(svc, logger),
		NewAIController(&stubAnalysis{}, logger),
	)
	router.Setup(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["store"])
}

func TestCreateMeeting_Endpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "Sprint Planning", "platform": "Zoom", "duration": 45}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	meeting, ok := body["meeting"].(map[string]interface{})
	require.True(t, ok, "response should embed the created meeting")
	assert.Equal(t, "Sprint Planning", meeting["title"])
	assert.Equal(t, float64(45), meeting["duration"])
	assert.NotEmpty(t, meeting["id"])
	assert.NotNil(t, meeting["action_items"])
}

func TestCreateMeeting_ValidationError(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/meetings", `{"platform": "Zoom"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Title and platform are required", body["error"])
}

func TestGetMeeting_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/meetings/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Meeting not found", body["error"])
}

func TestUpdateMeeting_Endpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "Old", "platform": "Zoom", "summary": "keep me"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)["meeting"].(map[string]interface{})
	id := created["id"].(string)

	// Allowed field applied, disallowed dropped, explicit null persisted
	rec = doJSON(e, http.MethodPut, "/v1/meetings/"+id, `{"title": "New", "id": "42", "summary": null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	meeting := decodeBody(t, rec)["meeting"].(map[string]interface{})
	assert.Equal(t, "New", meeting["title"])
	assert.Equal(t, id, meeting["id"])
	assert.Nil(t, meeting["summary"])

	// Nothing on the allow-list
	rec = doJSON(e, http.MethodPut, "/v1/meetings/"+id, `{"id": "42"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No valid fields to update", decodeBody(t, rec)["error"])

	// Malformed body
	rec = doJSON(e, http.MethodPut, "/v1/meetings/"+id, `[1, 2]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payload", decodeBody(t, rec)["error"])
}

func TestDeleteMeeting_Endpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "Doomed", "platform": "Teams"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["meeting"].(map[string]interface{})["id"].(string)

	rec = doJSON(e, http.MethodDelete, "/v1/meetings/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Meeting deleted successfully", body["message"])

	rec = doJSON(e, http.MethodDelete, "/v1/meetings/"+id, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMeetings_Endpoint(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "A", "platform": "Zoom"}`)
	doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "B", "platform": "Meet"}`)

	rec := doJSON(e, http.MethodGet, "/v1/meetings?platform=Zoom", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	meetings := body["meetings"].([]interface{})
	require.Len(t, meetings, 1)
	assert.Equal(t, "A", meetings[0].(map[string]interface{})["title"])
}

func TestActionItem_Endpoints(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/meetings", `{"title": "Planning", "platform": "Zoom"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	meetingID := decodeBody(t, rec)["meeting"].(map[string]interface{})["id"].(string)

	// Create with defaulted status
	rec = doJSON(e, http.MethodPost, "/v1/action-items",
		`{"meeting_id": "`+meetingID+`", "task": "Ship feature", "assigned_to": "John Doe"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody(t, rec)["actionItem"].(map[string]interface{})
	assert.Equal(t, "Pending", item["status"])
	itemID := item["id"].(string)

	// Missing task
	rec = doJSON(e, http.MethodPost, "/v1/action-items", `{"assigned_to": "Sarah"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Task is required", decodeBody(t, rec)["error"])

	// List with case-insensitive assignee filter and joined meeting fields
	rec = doJSON(e, http.MethodGet, "/v1/action-items?assigned_to=john", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["actionItems"].([]interface{})
	require.Len(t, items, 1)
	listed := items[0].(map[string]interface{})
	assert.Equal(t, "Ship feature", listed["task"])
	assert.Equal(t, "Planning", listed["meeting_title"])

	// Toggle status
	rec = doJSON(e, http.MethodPut, "/v1/action-items/"+itemID, `{"status": "Completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Completed", decodeBody(t, rec)["actionItem"].(map[string]interface{})["status"])

	// Delete, then delete again
	rec = doJSON(e, http.MethodDelete, "/v1/action-items/"+itemID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Action item deleted successfully", decodeBody(t, rec)["message"])

	rec = doJSON(e, http.MethodDelete, "/v1/action-items/"+itemID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Action item not found", decodeBody(t, rec)["error"])
}

func TestSummarize_Endpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/summarize", `{"transcript": "we talked about things"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Discussed roadmap\n• Agreed on dates", body["summary"])
	assert.Equal(t, "graph TD; A-->B;", body["flowchart"])
	items := body["actionItems"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Ship it", items[0].(map[string]interface{})["task"])

	rec = doJSON(e, http.MethodPost, "/v1/summarize", `{"transcript": ""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Transcript is required", decodeBody(t, rec)["error"])
}

func TestSummarize_UpstreamFailure(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	logger := zap.NewNop()
	store := repository.NewMemoryStore()
	svc := meetinguse.NewService(store.Meetings(), store.ActionItems(), logger)

	cfg := &config.Config{}
	cfg.Store.Backend = config.StoreBackendMemory

	failing := &stubAnalysis{summarizeErr: errors.ErrAISummaryFailed(context.DeadlineExceeded)}
	router := NewRouter(cfg,
		NewMeetingHandler(svc, logger),
		NewActionItemHandler(svc, logger),
		NewAIController(failing, logger),
	)
	router.Setup(e)

	rec := doJSON(e, http.MethodPost, "/v1/summarize", `{"transcript": "something"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to summarize meeting", decodeBody(t, rec)["error"])
}

func TestTranscribe_Endpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/v1/transcribe", `{"audioUrl": "http://example.com/a.mp3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "mock transcript", body["transcript"])

	rec = doJSON(e, http.MethodPost, "/v1/transcribe", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Audio data or URL is required", decodeBody(t, rec)["error"])
}
