package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/snap-point/places-api/models"
	"github.com/snap-point/places-api/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultSort  = "created_at"
	DefaultOrder = "DESC"
)

var sortFields = []string{"name", "category", "city", "rating", "created_at", "submitted_by"}

type PlaceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db, now: models.Now}
}

// WithClock returns a copy of the repository that stamps mutations with now.
func (r *PlaceRepository) WithClock(now func() time.Time) *PlaceRepository {
	return &PlaceRepository{db: r.db, now: now}
}

// FindAllWithFilters lists places matching every applied filter. Unknown
// sort fields fall back to created_at and unknown orders to DESC.
func (r *PlaceRepository) FindAllWithFilters(ctx context.Context, filters types.PlaceFilters, sort, order string) ([]models.Place, error) {
	query := r.db.WithContext(ctx).Model(&models.Place{})

	applied := filters.Applied()
	if category, ok := applied["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if city, ok := applied["city"]; ok {
		query = query.Where("city = ?", city)
	}
	if rating, ok := applied["rating"]; ok {
		query = query.Where("rating >= ?", parseThreshold(rating))
	}
	if submittedBy, ok := applied["submitted_by"]; ok {
		query = query.Where("submitted_by = ?", submittedBy)
	}

	// Default listing is newest first
	if sort == DefaultSort && order == DefaultOrder {
		query = query.Order("created_at DESC")
	} else {
		field, direction := resolveSort(sort, order)
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: field},
			Desc:   direction == "DESC",
		})
	}

	places := make([]models.Place, 0)
	if err := query.Find(&places).Error; err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id uint) (*models.Place, error) {
	var place models.Place
	err := r.db.WithContext(ctx).First(&place, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return &place, nil
}

// Save inserts a new place and returns it with its generated id.
func (r *PlaceRepository) Save(ctx context.Context, place models.Place) (models.Place, error) {
	now := r.now()
	if place.CreatedAt.IsZero() {
		place.CreatedAt = now
	}
	if place.UpdatedAt.IsZero() {
		place.UpdatedAt = now
	}
	if place.SubmittedBy == "" {
		place.SubmittedBy = models.DefaultSubmitter
	}

	if err := r.db.WithContext(ctx).Create(&place).Error; err != nil {
		return models.Place{}, newPersistenceError("create", err)
	}
	return place, nil
}

// Update writes every column of an existing place and refreshes updated_at.
func (r *PlaceRepository) Update(ctx context.Context, place models.Place) (models.Place, error) {
	place.UpdatedAt = r.now()
	if place.UpdatedAt.Before(place.CreatedAt) {
		place.UpdatedAt = place.CreatedAt
	}
	if place.SubmittedBy == "" {
		place.SubmittedBy = models.DefaultSubmitter
	}

	result := r.db.WithContext(ctx).
		Model(&models.Place{}).
		Where("id = ?", place.ID).
		Updates(map[string]any{
			"name":         place.Name,
			"description":  place.Description,
			"category":     place.Category,
			"address":      place.Address,
			"city":         place.City,
			"rating":       place.Rating,
			"submitted_by": place.SubmittedBy,
			"updated_at":   place.UpdatedAt,
		})
	if result.Error != nil {
		return models.Place{}, newPersistenceError("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Place{}, newPersistenceError("update", ErrPlaceNotFound)
	}
	return place, nil
}

func (r *PlaceRepository) Remove(ctx context.Context, place models.Place) error {
	result := r.db.WithContext(ctx).Delete(&models.Place{}, place.ID)
	if result.Error != nil {
		return newPersistenceError("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return newPersistenceError("delete", ErrPlaceNotFound)
	}
	return nil
}

func (r *PlaceRepository) GetCategories() []string {
	categories := make([]string, len(models.Categories))
	copy(categories, models.Categories)
	return categories
}

// GetCities returns the distinct cities currently stored, ascending.
func (r *PlaceRepository) GetCities(ctx context.Context) ([]string, error) {
	cities := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Place{}).
		Distinct().
		Order("city ASC").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func resolveSort(sort, order string) (string, string) {
	field := DefaultSort
	for _, candidate := range sortFields {
		if sort == candidate {
			field = sort
			break
		}
	}

	direction := strings.ToUpper(order)
	if direction != "ASC" && direction != "DESC" {
		direction = DefaultOrder
	}
	return field, direction
}

// parseThreshold reads a minimum rating; unparsable input counts as 0.
func parseThreshold(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
