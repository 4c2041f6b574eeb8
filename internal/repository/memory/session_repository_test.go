package memory

import (
	"context"
	"strings"
	"sync"
	"testing"

	"survey-interview-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func surveyResult(userId string) *entity.SurveyResult {
	return &entity.SurveyResult{
		UserId:       userId,
		SurveyStatus: entity.SurveyStatusCompleted,
		Segment:      "Customer",
		EventId:      "evt_1",
	}
}

func TestFindByUserIdUnknown(t *testing.T) {
	repo := NewSessionRepository()

	session, err := repo.FindByUserId(context.Background(), "unknown_user")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestUpsertSurveyResultIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	assert.NoError(t, repo.UpsertSurveyResult(ctx, surveyResult("u1")))
	first, err := repo.FindByUserId(ctx, "u1")
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// Redelivery of the same submission must not change anything material.
	assert.NoError(t, repo.UpsertSurveyResult(ctx, surveyResult("u1")))
	second, err := repo.FindByUserId(ctx, "u1")
	assert.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, first.SurveyStatus, second.SurveyStatus)
	assert.Equal(t, first.Segment, second.Segment)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestBindConversation(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	assert.ErrorIs(t, repo.BindConversation(ctx, "u1", "conv_1"), entity.ErrSessionNotFound)

	assert.NoError(t, repo.UpsertSurveyResult(ctx, surveyResult("u1")))
	assert.NoError(t, repo.BindConversation(ctx, "u1", "conv_1"))

	session, _ := repo.FindByUserId(ctx, "u1")
	assert.Equal(t, "conv_1", *session.ConversationId)

	// A new attempt overwrites the stale reference.
	assert.NoError(t, repo.BindConversation(ctx, "u1", "conv_2"))
	session, _ = repo.FindByUserId(ctx, "u1")
	assert.Equal(t, "conv_2", *session.ConversationId)
}

func TestAppendTranscriptAccumulates(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	assert.NoError(t, repo.UpsertSurveyResult(ctx, surveyResult("u1")))
	assert.NoError(t, repo.BindConversation(ctx, "u1", "conv_1"))

	merged, err := repo.AppendTranscript(ctx, "u1", "A")
	assert.NoError(t, err)
	assert.Equal(t, "A", merged)

	merged, err = repo.AppendTranscript(ctx, "u1", "B")
	assert.NoError(t, err)
	assert.True(t, strings.Index(merged, "A") < strings.Index(merged, "B"), "fragments must stay in submission order")
	assert.Contains(t, merged, "A")
	assert.Contains(t, merged, "B")

	// Appending clears the active conversation reference.
	session, _ := repo.FindByUserId(ctx, "u1")
	assert.Nil(t, session.ConversationId)
	assert.Equal(t, merged, *session.Transcript)
}

func TestConcurrentWritesSameUser(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	assert.NoError(t, repo.UpsertSurveyResult(ctx, &entity.SurveyResult{
		UserId:       "u1",
		SurveyStatus: entity.SurveyStatusPending,
	}))

	// A webhook upsert racing a transcript append must not lose either write.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = repo.UpsertSurveyResult(ctx, surveyResult("u1"))
	}()
	go func() {
		defer wg.Done()
		_, _ = repo.AppendTranscript(ctx, "u1", "fragment")
	}()
	wg.Wait()

	session, err := repo.FindByUserId(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, entity.SurveyStatusCompleted, session.SurveyStatus)
	assert.NotNil(t, session.Transcript)
	assert.Contains(t, *session.Transcript, "fragment")
}

func TestConcurrentAppendsDifferentUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	const users = 20
	for i := 0; i < users; i++ {
		userId := string(rune('a' + i))
		assert.NoError(t, repo.UpsertSurveyResult(ctx, surveyResult(userId)))
	}

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		userId := string(rune('a' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.AppendTranscript(ctx, userId, "hello from "+userId)
		}()
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		userId := string(rune('a' + i))
		session, err := repo.FindByUserId(ctx, userId)
		assert.NoError(t, err)
		assert.Contains(t, *session.Transcript, "hello from "+userId)
	}
}
