package dto

import "time"

// Session lifecycle event types published on the internal bus.
const (
	EventSurveySegmented     = "survey.segmented"
	EventConversationStarted = "conversation.started"
	EventInterviewCompleted  = "interview.completed"
)

type SessionEventMessage struct {
	Type         string    `json:"type"`
	UserId       string    `json:"user_id"`
	Segment      string    `json:"segment,omitempty"`
	SurveyStatus string    `json:"survey_status,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
