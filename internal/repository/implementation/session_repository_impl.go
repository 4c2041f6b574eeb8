package implementation

import (
	"context"
	"errors"

	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/mapper"
	"survey-interview-be/internal/model"
	"survey-interview-be/internal/repository/contract"
	"survey-interview-be/pkg/transcript"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) FindByUserId(ctx context.Context, userId string) (*entity.UserSession, error) {
	var m model.UserSession
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// UpsertSurveyResult relies on the unique index on user_id: concurrent
// webhooks for the same user resolve via ON CONFLICT instead of racing on a
// read-then-write. Submission metadata is only set on insert; redeliveries
// re-apply status and segment, which is a no-op in effect.
func (r *SessionRepositoryImpl) UpsertSurveyResult(ctx context.Context, result *entity.SurveyResult) error {
	m := &model.UserSession{
		Id:           uuid.New(),
		UserId:       result.UserId,
		SurveyStatus: string(result.SurveyStatus),
		Segment:      optional(result.Segment),
		FormId:       optional(result.FormId),
		FormToken:    optional(result.FormToken),
		EventId:      optional(result.EventId),
		SubmittedAt:  result.SubmittedAt,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"survey_status", "segment", "submitted_at", "updated_at"}),
	}).Create(m).Error
}

func (r *SessionRepositoryImpl) BindConversation(ctx context.Context, userId, conversationId string) error {
	res := r.db.WithContext(ctx).Model(&model.UserSession{}).
		Where("user_id = ?", userId).
		Update("conversation_id", conversationId)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrSessionNotFound
	}
	return nil
}

// AppendTranscript takes a row lock for the read-modify-write so a concurrent
// webhook upsert or a second append on the same user cannot produce a lost
// update. The lock is per-row: unrelated users proceed independently.
func (r *SessionRepositoryImpl) AppendTranscript(ctx context.Context, userId, fragment string) (string, error) {
	var merged string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.UserSession
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userId).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrSessionNotFound
			}
			return err
		}

		existing := ""
		if m.Transcript != nil {
			existing = *m.Transcript
		}
		merged = transcript.Merge(existing, fragment)

		return tx.Model(&model.UserSession{}).
			Where("user_id = ?", userId).
			Updates(map[string]interface{}{
				"transcript":      merged,
				"conversation_id": nil,
			}).Error
	})
	if err != nil {
		return "", err
	}

	return merged, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
