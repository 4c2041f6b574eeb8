// Package elevenlabs is a minimal client for the ElevenLabs conversational AI
// API. Only the conversation read path is needed here: the widget on the
// client side owns conversation creation and audio transport.
package elevenlabs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.elevenlabs.io"

// ConversationProvider is the surface the interview service depends on.
// Satisfied by Client; stubbed in tests.
type ConversationProvider interface {
	GetConversation(ctx context.Context, conversationId string) (*Conversation, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			// The API needs a few seconds after a call ends to finalize
			// its transcript, so the read can be slow.
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL exists for tests and self-hosted gateways.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type TranscriptMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
	Text    string `json:"text"`
}

type Conversation struct {
	ConversationId string              `json:"conversation_id"`
	Status         string              `json:"status"`
	Transcript     []TranscriptMessage `json:"transcript"`
}

// GetConversation fetches the conversation state and transcript messages for
// the given external conversation id.
func (c *Client) GetConversation(ctx context.Context, conversationId string) (*Conversation, error) {
	url := fmt.Sprintf("%s/v1/convai/conversations/%s", c.baseURL, conversationId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var conversation Conversation
	if err := json.NewDecoder(resp.Body).Decode(&conversation); err != nil {
		return nil, fmt.Errorf("failed to decode conversation response: %w", err)
	}

	return &conversation, nil
}

// FormattedTranscript renders the transcript messages as "[ROLE]: text" lines.
// The message body can arrive under either "message" or "text" depending on
// the response variant; empty messages are skipped.
func (c *Conversation) FormattedTranscript() string {
	var b strings.Builder
	for _, msg := range c.Transcript {
		text := msg.Message
		if text == "" {
			text = msg.Text
		}
		if text == "" {
			continue
		}
		role := msg.Role
		if role == "" {
			role = "unknown"
		}
		fmt.Fprintf(&b, "[%s]: %s\n", strings.ToUpper(role), text)
	}
	return strings.TrimSpace(b.String())
}
