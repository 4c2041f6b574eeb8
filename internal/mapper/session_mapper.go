package mapper

import (
	"survey-interview-be/internal/entity"
	"survey-interview-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.UserSession) *entity.UserSession {
	if s == nil {
		return nil
	}
	return &entity.UserSession{
		Id:             s.Id,
		UserId:         s.UserId,
		SurveyStatus:   entity.SurveyStatus(s.SurveyStatus),
		Segment:        s.Segment,
		ConversationId: s.ConversationId,
		Transcript:     s.Transcript,
		FormId:         s.FormId,
		FormToken:      s.FormToken,
		EventId:        s.EventId,
		SubmittedAt:    s.SubmittedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.UserSession) *model.UserSession {
	if s == nil {
		return nil
	}
	return &model.UserSession{
		Id:             s.Id,
		UserId:         s.UserId,
		SurveyStatus:   string(s.SurveyStatus),
		Segment:        s.Segment,
		ConversationId: s.ConversationId,
		Transcript:     s.Transcript,
		FormId:         s.FormId,
		FormToken:      s.FormToken,
		EventId:        s.EventId,
		SubmittedAt:    s.SubmittedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
