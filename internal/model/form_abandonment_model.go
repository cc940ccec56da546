package model

import (
	"time"

	"github.com/google/uuid"
)

type FormAbandonment struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubmissionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255);not null;index"`
	Phone        string    `gorm:"type:varchar(50)"`
	FullName     string    `gorm:"type:varchar(255)"`

	AbandonedAtStep int `gorm:"not null"`

	FollowupSent   bool   `gorm:"default:false;index"`
	FollowupType   string `gorm:"type:varchar(50)"`
	FollowupSentAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FormAbandonment) TableName() string {
	return "form_abandonments"
}
