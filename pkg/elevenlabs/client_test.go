package elevenlabs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/convai/conversations/conv_123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"conversation_id": "conv_123",
			"status": "done",
			"transcript": [
				{"role": "agent", "message": "Hello, how are you?"},
				{"role": "user", "text": "Doing well."},
				{"role": "agent", "message": ""}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	conversation, err := client.GetConversation(context.Background(), "conv_123")

	assert.NoError(t, err)
	assert.Equal(t, "done", conversation.Status)
	assert.Len(t, conversation.Transcript, 3)
}

func TestGetConversationHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.GetConversation(context.Background(), "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFormattedTranscript(t *testing.T) {
	conversation := &Conversation{
		Transcript: []TranscriptMessage{
			{Role: "agent", Message: "Hello"},
			{Role: "user", Text: "Hi there"},
			{Role: "agent"}, // empty message, skipped
			{Message: "orphan line"},
		},
	}

	got := conversation.FormattedTranscript()
	want := "[AGENT]: Hello\n[USER]: Hi there\n[UNKNOWN]: orphan line"
	assert.Equal(t, want, got)
}

func TestFormattedTranscriptEmpty(t *testing.T) {
	conversation := &Conversation{}
	assert.Equal(t, "", conversation.FormattedTranscript())
}
