package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile is the applicant data a letter is generated from.
// Its lifecycle is owned by the profile-management collaborator; the letter
// engine only reads it.
type StudentProfile struct {
	ID        uuid.UUID
	UserID    string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StringField returns a top-level string value from Data, or "" if absent.
func (p *StudentProfile) StringField(key string) string {
	if p == nil || p.Data == nil {
		return ""
	}
	v, _ := p.Data[key].(string)
	return v
}
