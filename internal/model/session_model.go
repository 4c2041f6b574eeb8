package model

import (
	"time"

	"github.com/google/uuid"
)

type UserSession struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	SurveyStatus   string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	Segment        *string   `gorm:"type:varchar(100);index"`
	ConversationId *string   `gorm:"type:varchar(255);index"`
	Transcript     *string   `gorm:"type:text"`
	FormId         *string   `gorm:"type:varchar(255)"`
	FormToken      *string   `gorm:"type:varchar(255);index"`
	EventId        *string   `gorm:"type:varchar(255);index"`
	SubmittedAt    *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
