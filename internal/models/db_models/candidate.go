package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Mentions  []string  `json:"mentions"`
}

type StatusChange struct {
	Stage     string    `json:"stage"`
	ChangedAt time.Time `json:"changedAt"`
	ChangedBy string    `json:"changedBy"`
}

type Candidate struct {
	BaseModel
	Name          string `gorm:"not null"`
	Email         string `gorm:"index"`
	Phone         *string
	Stage         string `gorm:"not null;default:applied;index"`
	JobID         string `gorm:"index"`
	AppliedAt     time.Time
	Notes         datatypes.JSONSlice[Note]         `gorm:"type:jsonb"`
	StatusHistory datatypes.JSONSlice[StatusChange] `gorm:"type:jsonb"`
}

func NewNotes(notes ...Note) datatypes.JSONSlice[Note] {
	return datatypes.NewJSONSlice(append([]Note{}, notes...))
}

func NewHistory(changes ...StatusChange) datatypes.JSONSlice[StatusChange] {
	return datatypes.NewJSONSlice(append([]StatusChange{}, changes...))
}
