package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/models"
	"github.com/snap-point/places-api/repositories"
	"github.com/snap-point/places-api/types"
	"github.com/snap-point/places-api/utils"
)

// PlaceStore is the persistence the controller needs; PlaceRepository
// satisfies it.
type PlaceStore interface {
	FindAllWithFilters(ctx context.Context, filters types.PlaceFilters, sort, order string) ([]models.Place, error)
	FindByID(ctx context.Context, id uint) (*models.Place, error)
	Save(ctx context.Context, place models.Place) (models.Place, error)
	Update(ctx context.Context, place models.Place) (models.Place, error)
	Remove(ctx context.Context, place models.Place) error
	GetCategories() []string
	GetCities(ctx context.Context) ([]string, error)
}

type PlaceController struct {
	Store  PlaceStore
	Logger *slog.Logger
	now    func() time.Time
}

func NewPlaceController(store PlaceStore, logger *slog.Logger) *PlaceController {
	return &PlaceController{Store: store, Logger: logger, now: models.Now}
}

// WithClock sets the clock used to stamp newly created places.
func (pc *PlaceController) WithClock(now func() time.Time) *PlaceController {
	pc.now = now
	return pc
}

// ListPlaces godoc
// @Summary List places with optional filters and sorting
// @Tags places
// @Produce json
// @Param category query string false "Exact category"
// @Param city query string false "Exact city"
// @Param rating query number false "Minimum rating"
// @Param submitted_by query string false "Exact submitter"
// @Param sort query string false "name, category, city, rating, created_at or submitted_by (default created_at)"
// @Param order query string false "ASC or DESC (default DESC)"
// @Success 200 {object} PlaceListResponse
// @Router /places [get]
func (pc *PlaceController) ListPlaces(c *gin.Context) {
	var query types.PlaceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: StatusError, Message: "Invalid query parameters", Error: err.Error()})
		return
	}

	places, err := pc.Store.FindAllWithFilters(c.Request.Context(), query.PlaceFilters, query.Sort, query.Order)
	if err != nil {
		pc.fail(c, "Failed to fetch places", err)
		return
	}

	data := make([]types.PlaceResponse, 0, len(places))
	for _, place := range places {
		data = append(data, place.ToResponse())
	}

	c.JSON(http.StatusOK, PlaceListResponse{
		Status:  StatusSuccess,
		Data:    data,
		Count:   len(data),
		Filters: query.Applied(),
		Sort:    query.Sort,
		Order:   query.Order,
	})
}

// GetPlace godoc
// @Summary Get a single place
// @Tags places
// @Produce json
// @Param id path integer true "Place ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /places/{id} [get]
func (pc *PlaceController) GetPlace(c *gin.Context) {
	place, ok := pc.findPlace(c, "Failed to fetch place")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Data: place.ToResponse()})
}

// CreatePlace godoc
// @Summary Create a place
// @Tags places
// @Accept json
// @Produce json
// @Param input body types.PlaceFields true "Place fields"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 422 {object} Envelope
// @Router /places [post]
func (pc *PlaceController) CreatePlace(c *gin.Context) {
	var input types.PlaceFields
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: StatusError, Message: "Invalid JSON data"})
		return
	}

	if input.SubmittedBy == nil {
		anonymous := models.DefaultSubmitter
		input.SubmittedBy = &anonymous
	}

	place := models.NewPlace(input, pc.now())
	if errs := models.Validate(place); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	saved, err := pc.Store.Save(c.Request.Context(), place)
	if err != nil {
		pc.fail(c, "Failed to create place", err)
		return
	}

	pc.Logger.Info("place created",
		"place_id", saved.ID,
		"category", saved.Category,
		"address", saved.FullAddress(),
		"rating", saved.FormattedRating(),
		"subject", authSubject(c),
		"request_id", utils.GetRequestID(c),
	)
	c.JSON(http.StatusCreated, Envelope{
		Status:  StatusSuccess,
		Message: "Place created successfully",
		Data:    saved.ToResponse(),
	})
}

// UpdatePlace godoc
// @Summary Partially update a place
// @Description Only fields present in the body are changed
// @Tags places
// @Accept json
// @Produce json
// @Param id path integer true "Place ID"
// @Param input body types.PlaceFields true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 422 {object} Envelope
// @Router /places/{id} [put]
func (pc *PlaceController) UpdatePlace(c *gin.Context) {
	if _, ok := utils.ParseIDParam(c, "id"); !ok {
		placeNotFound(c)
		return
	}

	var input types.PlaceFields
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{Status: StatusError, Message: "Invalid JSON data"})
		return
	}

	existing, ok := pc.findPlace(c, "Failed to update place")
	if !ok {
		return
	}

	place := models.ApplyUpdate(*existing, input)
	if errs := models.Validate(place); len(errs) > 0 {
		validationFailed(c, errs)
		return
	}

	updated, err := pc.Store.Update(c.Request.Context(), place)
	if repositories.KindOf(err) == repositories.KindNotFound {
		placeNotFound(c)
		return
	}
	if err != nil {
		pc.fail(c, "Failed to update place", err)
		return
	}

	pc.Logger.Info("place updated",
		"place_id", updated.ID,
		"address", updated.FullAddress(),
		"rating", updated.FormattedRating(),
		"subject", authSubject(c),
		"request_id", utils.GetRequestID(c),
	)
	c.JSON(http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Message: "Place updated successfully",
		Data:    updated.ToResponse(),
	})
}

// DeletePlace godoc
// @Summary Delete a place
// @Tags places
// @Produce json
// @Param id path integer true "Place ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /places/{id} [delete]
func (pc *PlaceController) DeletePlace(c *gin.Context) {
	existing, ok := pc.findPlace(c, "Failed to delete place")
	if !ok {
		return
	}

	err := pc.Store.Remove(c.Request.Context(), *existing)
	if repositories.KindOf(err) == repositories.KindNotFound {
		placeNotFound(c)
		return
	}
	if err != nil {
		pc.fail(c, "Failed to delete place", err)
		return
	}

	pc.Logger.Info("place deleted",
		"place_id", existing.ID,
		"subject", authSubject(c),
		"request_id", utils.GetRequestID(c),
	)
	c.JSON(http.StatusOK, Envelope{Status: StatusSuccess, Message: "Place deleted successfully"})
}

// ListCategories godoc
// @Summary List the allowed place categories
// @Tags places
// @Produce json
// @Success 200 {object} ListResponse
// @Router /categories [get]
func (pc *PlaceController) ListCategories(c *gin.Context) {
	categories := pc.Store.GetCategories()
	c.JSON(http.StatusOK, ListResponse{Status: StatusSuccess, Data: categories, Count: len(categories)})
}

// ListCities godoc
// @Summary List the cities that currently have places
// @Tags places
// @Produce json
// @Success 200 {object} ListResponse
// @Router /cities [get]
func (pc *PlaceController) ListCities(c *gin.Context) {
	cities, err := pc.Store.GetCities(c.Request.Context())
	if err != nil {
		pc.fail(c, "Failed to fetch cities", err)
		return
	}
	c.JSON(http.StatusOK, ListResponse{Status: StatusSuccess, Data: cities, Count: len(cities)})
}

// findPlace loads the place named by the :id parameter, writing the 404 or
// 500 response itself when it cannot.
func (pc *PlaceController) findPlace(c *gin.Context, failMessage string) (*models.Place, bool) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		placeNotFound(c)
		return nil, false
	}

	place, err := pc.Store.FindByID(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, failMessage, err)
		return nil, false
	}
	if place == nil {
		placeNotFound(c)
		return nil, false
	}
	return place, true
}

func (pc *PlaceController) fail(c *gin.Context, message string, err error) {
	pc.Logger.Error(message,
		"error", err,
		"kind", repositories.KindOf(err),
		"path", c.Request.URL.Path,
		"request_id", utils.GetRequestID(c),
	)
	c.JSON(http.StatusInternalServerError, Envelope{Status: StatusError, Message: message, Error: err.Error()})
}

// authSubject names the token holder behind a mutation, empty when the guard
// is disabled.
func authSubject(c *gin.Context) string {
	if user := utils.GetUser(c); user != nil {
		return user.Subject
	}
	return ""
}

func placeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{Status: StatusError, Message: "Place not found"})
}

func validationFailed(c *gin.Context, errs models.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Status:  StatusError,
		Message: "Validation failed",
		Errors:  errs.Messages(),
	})
}
