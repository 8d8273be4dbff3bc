package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating accepts either a JSON number or a numeric JSON string ("4.5").
type Rating float64

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("rating must be numeric, got %s", string(data))
	}
	*r = Rating(v)
	return nil
}

// PlaceFields is the sparse client payload used for both create and update.
// A nil field means "not supplied"; JSON null is treated the same way.
type PlaceFields struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Rating      *Rating `json:"rating"`
	SubmittedBy *string `json:"submitted_by"`
}

type PlaceResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Rating      *float64 `json:"rating"`
	SubmittedBy string   `json:"submitted_by"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type PlaceFilters struct {
	Category    string `form:"category"`
	City        string `form:"city"`
	Rating      string `form:"rating"`
	SubmittedBy string `form:"submitted_by"`
}

type PlaceListQuery struct {
	PlaceFilters
	Sort  string `form:"sort,default=created_at"`
	Order string `form:"order,default=DESC"`
}

// Applied returns the filters that take part in the query, keyed by column.
// Empty values and "0" are skipped.
func (f PlaceFilters) Applied() map[string]string {
	applied := make(map[string]string)
	for column, value := range map[string]string{
		"category":     f.Category,
		"city":         f.City,
		"rating":       f.Rating,
		"submitted_by": f.SubmittedBy,
	} {
		if value == "" || value == "0" {
			continue
		}
		applied[column] = value
	}
	return applied
}
