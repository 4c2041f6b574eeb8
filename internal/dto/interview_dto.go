package dto

import "time"

type StartInterviewRequest struct {
	UserId string `json:"user_id" validate:"required"`
}

type StartInterviewResponse struct {
	ConversationId string `json:"conversation_id"`
	Status         string `json:"status"`
	Message        string `json:"message"`
}

type UpdateConversationIdRequest struct {
	UserId         string `json:"user_id" validate:"required"`
	ConversationId string `json:"conversation_id" validate:"required"`
}

type SessionInfoResponse struct {
	UserId         string     `json:"user_id"`
	ConversationId *string    `json:"conversation_id"`
	Segment        *string    `json:"segment"`
	SurveyStatus   string     `json:"survey_status"`
	Transcript     *string    `json:"transcript"`
	CreatedAt      *time.Time `json:"created_at"`
}

type CompleteInterviewResponse struct {
	Status        string `json:"status"`
	Transcript    string `json:"transcript"`
	NewTranscript string `json:"new_transcript,omitempty"`
	Message       string `json:"message"`
}

type CheckCompletionResponse struct {
	IsComplete       bool   `json:"is_complete"`
	HasTranscript    bool   `json:"has_transcript"`
	TranscriptLength int    `json:"transcript_length,omitempty"`
	Message          string `json:"message"`
}

type InterviewConfigResponse struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	CompletionMessage string `json:"completion_message"`
	AgentId           string `json:"agent_id"`
}
