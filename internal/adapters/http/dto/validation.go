package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

var (
	// ErrValidation wraps struct-tag failures on a request.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps JSON or query decoding failures.
	ErrBinding = errors.New("binding failed")
)

var validate = newValidator()

// newValidator reports fields by their wire name (JSON for bodies, form for
// query strings) and adds the clock and notempty rules.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name, _, _ := strings.Cut(fld.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}

		return ""
	})

	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || domain.ValidClockTime(s)
	})
	mustRegister(v, "notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// selfValidating requests check rules their tags cannot express, such as
// unique favorite ids.
type selfValidating interface {
	Validate() error
}

// Validate checks struct tags, then the request's own Validate method when
// it has one. Tag failures wrap ErrValidation; the request's own failures
// are returned as the domain error they are.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if sv, ok := v.(selfValidating); ok {
		return sv.Validate()
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors maps each failing wire field to a readable message. Any
// error without validator details yields an empty map.
func ValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fields
	}

	for _, fe := range fieldErrs {
		fields[fe.Field()] = validationMessage(fe)
	}

	return fields
}

var validationMessages = map[string]string{
	"required": "this field is required",
	"notempty": "must not be empty",
	"clock":    "must be a 24-hour HH:mm time",
	"hexcolor": "must be a hex color such as #6C5CE7",
	"oneof":    "must be one of: %s",
}

func validationMessage(fe validator.FieldError) string {
	switch tag := fe.Tag(); tag {
	case "min", "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}

		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters", bound, fe.Param())
		}

		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	default:
		msg, ok := validationMessages[tag]
		if !ok {
			return "failed validation: " + tag
		}

		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, fe.Param())
		}

		return msg
	}
}
