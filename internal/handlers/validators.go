package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rovema/comercial-backend/internal/core/domain"
)

// RegisterCustomValidators installs the domain validation tags on gin's
// binding validator. Must run before any request binding uses them.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("visitstatus", func(fl validator.FieldLevel) bool {
		return domain.VisitStatus(fl.Field().String()).IsValid()
	})
}
