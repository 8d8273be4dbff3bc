package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/snap-point/places-api/types"
)

// DateTimeFormat is the wire format for created_at / updated_at.
const DateTimeFormat = "2006-01-02 15:04:05"

const DefaultSubmitter = "anonymous"

// Categories is the fixed set a place category must belong to.
var Categories = []string{
	"cafe", "restaurant", "museum", "park", "landmark",
	"shop", "hotel", "theater", "bar", "bakery", "library",
	"gallery", "monument", "mall", "market",
}

// Place is a point of interest. Values are treated as immutable: use
// ApplyUpdate to derive a modified copy.
type Place struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	Category    string    `gorm:"size:50;not null;index"`
	Address     string    `gorm:"type:text;not null"`
	City        string    `gorm:"size:100;not null;index"`
	Rating      *float64  `gorm:"type:decimal(3,2)"`
	SubmittedBy string    `gorm:"column:submitted_by;size:100;not null;default:anonymous"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Place) TableName() string { return "places" }

// Now is the clock used for place timestamps: UTC, whole seconds, so the
// serialized value matches what the database stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// NewPlace builds a place from client supplied fields. It never fails;
// missing required fields are left empty for Validate to report.
func NewPlace(fields types.PlaceFields, now time.Time) Place {
	p := Place{
		SubmittedBy: DefaultSubmitter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return ApplyUpdate(p, fields)
}

// ApplyUpdate returns a copy of p with every non-nil field of u applied.
func ApplyUpdate(p Place, u types.PlaceFields) Place {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		description := *u.Description
		p.Description = &description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Rating != nil {
		rating := float64(*u.Rating)
		p.Rating = &rating
	}
	if u.SubmittedBy != nil {
		p.SubmittedBy = *u.SubmittedBy
	}
	return p
}

func (p Place) HasRating() bool {
	return p.Rating != nil
}

func (p Place) FormattedRating() string {
	if p.Rating == nil {
		return "Not rated"
	}
	return fmt.Sprintf("%.1f", *p.Rating)
}

func (p Place) FullAddress() string {
	return strings.Join([]string{p.Address, p.City}, ", ")
}

// ToResponse renders the place the way every endpoint returns it.
func (p Place) ToResponse() types.PlaceResponse {
	return types.PlaceResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Address:     p.Address,
		City:        p.City,
		Rating:      p.Rating,
		SubmittedBy: p.SubmittedBy,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateTimeFormat)
}
