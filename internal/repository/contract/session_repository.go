package contract

import (
	"context"

	"survey-interview-be/internal/entity"
)

// SessionRepository is the single owner of UserSession mutation. All writes on
// the same user id are mutually exclusive with each other; writes on different
// user ids never serialize against one another.
type SessionRepository interface {
	// FindByUserId returns (nil, nil) when no session exists for the user.
	FindByUserId(ctx context.Context, userId string) (*entity.UserSession, error)

	// UpsertSurveyResult creates the session on first webhook receipt or
	// updates survey status and segment on redelivery. Idempotent: applying
	// the same result twice leaves the row in the same state.
	UpsertSurveyResult(ctx context.Context, result *entity.SurveyResult) error

	// BindConversation records the currently active external conversation
	// reference, overwriting any stale one. Returns entity.ErrSessionNotFound
	// if the session does not exist.
	BindConversation(ctx context.Context, userId, conversationId string) error

	// AppendTranscript merges the fragment onto the accumulated transcript and
	// clears the active conversation reference in the same atomic write.
	// Returns the merged transcript. Prior content is never discarded.
	AppendTranscript(ctx context.Context, userId, fragment string) (string, error)
}
