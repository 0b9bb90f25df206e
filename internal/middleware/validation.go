package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oguzk/learnhub/internal/app/models"
)

// RegisterCustomValidators installs the enum validation tags used in request
// binding. Must run once before the router starts handling requests.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("roletype", func(fl validator.FieldLevel) bool {
		return models.RoleType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("coursecategory", func(fl validator.FieldLevel) bool {
		return models.CourseCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("coursedifficulty", func(fl validator.FieldLevel) bool {
		return models.CourseDifficulty(fl.Field().String()).Valid()
	})
}
