package entity

import (
	"time"

	"github.com/google/uuid"
)

type SurveyStatus string

const (
	SurveyStatusPending    SurveyStatus = "pending"
	SurveyStatusInProgress SurveyStatus = "in_progress"
	SurveyStatusCompleted  SurveyStatus = "completed"
	SurveyStatusTerminated SurveyStatus = "terminated"
	SurveyStatusFailed     SurveyStatus = "failed"
)

// UserSession is the single authoritative record per respondent. The webhook
// pipeline resolves SurveyStatus and Segment; the interview lifecycle owns
// ConversationId and Transcript. Sessions are never deleted by this service.
type UserSession struct {
	Id           uuid.UUID
	UserId       string
	SurveyStatus SurveyStatus
	Segment      *string

	// External reference to the active voice conversation. At most one at a
	// time; overwritten on each new attempt, cleared when its transcript has
	// been appended.
	ConversationId *string

	// Accumulated transcript across all conversation attempts. Append-only.
	Transcript *string

	// Submission metadata from the survey provider, set on first webhook.
	FormId      *string
	FormToken   *string
	EventId     *string
	SubmittedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SurveyResult is the webhook pipeline's proposed mutation of a session.
type SurveyResult struct {
	UserId       string
	SurveyStatus SurveyStatus
	Segment      string
	FormId       string
	FormToken    string
	EventId      string
	SubmittedAt  *time.Time
}
