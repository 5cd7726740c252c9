package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLogModel struct {
	ID         string            `gorm:"primaryKey;type:uuid"`
	ActorID    string            `gorm:"type:uuid;index;not null"`
	Actor      *UserModel        `gorm:"foreignKey:ActorID;references:ID"`
	Action     string            `gorm:"index;not null"`
	TargetType string            `gorm:"index;not null"`
	TargetID   string            `gorm:"index"`
	Meta       datatypes.JSONMap `gorm:"column:meta_json"`
	CreatedAt  time.Time         `gorm:"index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
