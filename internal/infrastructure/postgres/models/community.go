package models

import "time"

type NewsletterSubscriberModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}

type VolunteerModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     string
	Skills    string
	Notes     string
	Status    string    `gorm:"type:varchar(16);index;not null;default:NEW"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}
