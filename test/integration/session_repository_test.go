package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/repository/implementation"
	"survey-interview-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryPostgres(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	repo := implementation.NewSessionRepository(gormDB)
	ctx := context.Background()
	userId := "itest-" + uuid.New().String()
	defer gormDB.Exec("DELETE FROM user_sessions WHERE user_id = ?", userId)

	now := time.Now().UTC()
	result := &entity.SurveyResult{
		UserId:       userId,
		SurveyStatus: entity.SurveyStatusCompleted,
		Segment:      "Customer",
		FormId:       "form_itest",
		FormToken:    "tok_itest",
		EventId:      "evt_itest",
		SubmittedAt:  &now,
	}

	t.Run("Upsert and find", func(t *testing.T) {
		assert.NoError(t, repo.UpsertSurveyResult(ctx, result))

		session, err := repo.FindByUserId(ctx, userId)
		assert.NoError(t, err)
		assert.NotNil(t, session)
		assert.Equal(t, entity.SurveyStatusCompleted, session.SurveyStatus)
		assert.Equal(t, "Customer", *session.Segment)
		assert.Equal(t, "form_itest", *session.FormId)
	})

	t.Run("Upsert redelivery keeps the same row", func(t *testing.T) {
		before, _ := repo.FindByUserId(ctx, userId)
		assert.NoError(t, repo.UpsertSurveyResult(ctx, result))
		after, err := repo.FindByUserId(ctx, userId)

		assert.NoError(t, err)
		assert.Equal(t, before.Id, after.Id)
	})

	t.Run("Bind and append clears conversation", func(t *testing.T) {
		assert.NoError(t, repo.BindConversation(ctx, userId, "conv_itest"))

		merged, err := repo.AppendTranscript(ctx, userId, "[AGENT]: Hello there")
		assert.NoError(t, err)
		assert.Contains(t, merged, "[AGENT]: Hello there")

		session, err := repo.FindByUserId(ctx, userId)
		assert.NoError(t, err)
		assert.Nil(t, session.ConversationId)
		assert.Equal(t, merged, *session.Transcript)
	})

	t.Run("Missing user", func(t *testing.T) {
		session, err := repo.FindByUserId(ctx, "itest-missing-"+uuid.New().String())
		assert.NoError(t, err)
		assert.Nil(t, session)

		err = repo.BindConversation(ctx, "itest-missing", "conv_x")
		assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	})
}
