package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// slugPattern: lowercase alphanumerics and hyphens, nothing else.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("slug", ValidateSlugRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slug", ValidateSlugRule)
	}
}

func ValidateSlugRule(fl validator.FieldLevel) bool {
	return ValidateSlug(fl.Field().String())
}

// ValidateSlug reports whether s is a valid URL-safe identifier.
func ValidateSlug(s string) bool {
	return slugPattern.MatchString(s)
}
