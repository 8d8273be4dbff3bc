package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists failing fields in declaration order:
// name, category, address, city, rating.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Message)
	}
	return messages
}

// placeRules is the validation view of a Place. Field order decides the
// order of reported errors.
type placeRules struct {
	Name     string   `json:"name" validate:"notblank,max=255"`
	Category string   `json:"category" validate:"notblank,max=50,place_category"`
	Address  string   `json:"address" validate:"notblank"`
	City     string   `json:"city" validate:"notblank,max=100"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

var ruleMessages = map[string]string{
	"name.notblank":           "Name is required",
	"name.max":                "Name must be less than 255 characters",
	"category.notblank":       "Category is required",
	"category.max":            "Category must be less than 50 characters",
	"category.place_category": "Category must be one of: " + strings.Join(Categories, ", "),
	"address.notblank":        "Address is required",
	"city.notblank":           "City is required",
	"city.max":                "City must be less than 100 characters",
	"rating.gte":              "Rating must be between 0 and 5",
	"rating.lte":              "Rating must be between 0 and 5",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("place_category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks every rule a place must satisfy before it is persisted.
// It returns nil when the place is valid.
func Validate(p Place) ValidationErrors {
	err := validate.Struct(placeRules{
		Name:     p.Name,
		Category: p.Category,
		Address:  p.Address,
		City:     p.City,
		Rating:   p.Rating,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Message: err.Error()}}
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := ruleMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		result = append(result, FieldError{Field: fe.Field(), Message: msg})
	}
	return result
}

func (p Place) IsValid() bool {
	return len(Validate(p)) == 0
}
