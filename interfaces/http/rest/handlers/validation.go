package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Adams-404/Between/domain/core/entities"

	"github.com/go-playground/validator/v10"
)

// Validator checks request bodies against their validate tags. Error
// messages use the json field names.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the hhmm and mood rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		_, err := time.Parse("15:04", s)
		return err == nil && len(s) == 5
	})
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return entities.IsMood(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate returns the first failed rule as a readable error.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	e := errs[0]
	return fmt.Errorf("%s: %s", e.Field(), message(e.Tag(), e.Param()))
}

func message(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	case "hhmm":
		return "must be a time of day as HH:MM"
	case "mood":
		return fmt.Sprintf("must be one of: %s", strings.Join(entities.Moods, ", "))
	default:
		return fmt.Sprintf("failed %s validation", tag)
	}
}
