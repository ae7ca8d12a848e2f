package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// HeroPlaceholderAvatar is a 1x1 transparent gif shown until a real
	// avatar is uploaded.
	HeroPlaceholderAvatar = "data:image/gif;base64,R0lGODlhAQABAAAAACw="

	HeroDefaultText = "..."

	HeroShortDescriptionMax = 120
)

// Hero is the singleton profile record shown on the home page. The table may
// physically hold more than one row after a seeding race; the repository
// always operates on the oldest one.
type Hero struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Avatar           string    `json:"avatar" db:"avatar" gorm:"type:text"`
	FullName         string    `json:"fullName" db:"full_name" gorm:"type:text"`
	ShortDescription string    `json:"shortDescription" db:"short_description" gorm:"type:varchar(120)"`
	LongDescription  string    `json:"longDescription" db:"long_description" gorm:"type:text"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// DefaultHero returns the fixed default content, without an id.
func DefaultHero() Hero {
	return Hero{
		Avatar:           HeroPlaceholderAvatar,
		FullName:         HeroDefaultText,
		ShortDescription: HeroDefaultText,
		LongDescription:  HeroDefaultText,
	}
}

// HeroUpdate is a partial hero payload; nil fields were omitted.
type HeroUpdate struct {
	Avatar           *string `json:"avatar"`
	FullName         *string `json:"fullName"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription"`
}

// MergeHero performs the three-way merge for hero upserts: fixed defaults,
// overlaid by the stored row when one exists, overlaid by the fields the
// caller explicitly provided. Every field is then trimmed, blank fields fall
// back to their default, and the short description is truncated to 120
// characters. The stored row's id and creation time survive the merge.
func MergeHero(current *Hero, update HeroUpdate) Hero {
	merged := DefaultHero()
	if current != nil {
		merged.ID = current.ID
		merged.CreatedAt = current.CreatedAt
		merged.Avatar = current.Avatar
		merged.FullName = current.FullName
		merged.ShortDescription = current.ShortDescription
		merged.LongDescription = current.LongDescription
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}
	if update.FullName != nil {
		merged.FullName = *update.FullName
	}
	if update.ShortDescription != nil {
		merged.ShortDescription = *update.ShortDescription
	}
	if update.LongDescription != nil {
		merged.LongDescription = *update.LongDescription
	}

	merged.Avatar = fallback(strings.TrimSpace(merged.Avatar), HeroPlaceholderAvatar)
	merged.FullName = fallback(strings.TrimSpace(merged.FullName), HeroDefaultText)
	merged.ShortDescription = truncate(fallback(strings.TrimSpace(merged.ShortDescription), HeroDefaultText), HeroShortDescriptionMax)
	merged.LongDescription = fallback(strings.TrimSpace(merged.LongDescription), HeroDefaultText)
	return merged
}

func fallback(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
