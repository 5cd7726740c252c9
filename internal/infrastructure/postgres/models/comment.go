package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type CommentModel struct {
	ID        string               `gorm:"primaryKey;type:uuid"`
	UserID    string               `gorm:"type:uuid;index;not null"`
	User      *UserModel           `gorm:"foreignKey:UserID;references:ID"`
	RefType   domain.TargetKind    `gorm:"type:varchar(16);index:idx_comment_ref;not null"`
	RefID     string               `gorm:"type:uuid;index:idx_comment_ref;not null"`
	Body      string               `gorm:"not null"`
	Status    domain.CommentStatus `gorm:"type:varchar(16);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}
