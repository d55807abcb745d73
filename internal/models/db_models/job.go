package db_models

import "github.com/lib/pq"

const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

type Job struct {
	BaseModel
	Title       string `gorm:"not null"`
	Company     string
	Description string
	Status      string         `gorm:"not null;default:active;index"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	Slug        string         `gorm:"uniqueIndex"`
	Order       int            `gorm:"column:position;index"`
}
