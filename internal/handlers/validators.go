package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/variohq/reno_backend/internal/core/domain"
)

// RegisterCustomValidators installs the enum validators referenced by the
// binding tags on the request DTOs. Values are matched against the static
// domain tables so the accepted set stays in one place.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("expensecategory", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})

	_ = v.RegisterValidation("expensepriority", func(fl validator.FieldLevel) bool {
		switch domain.Priority(fl.Field().String()) {
		case domain.PriorityMustHave, domain.PriorityNiceToHave, domain.PriorityCanSkip:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("taskphase", func(fl validator.FieldLevel) bool {
		_, ok := domain.PhaseByName(fl.Field().String())
		return ok
	})
}
