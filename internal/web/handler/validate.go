package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator builds a validator that reports field names as they appear
// on the wire, taken from the json tag.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// invalidInput is the 400 envelope for validation failures.
type invalidInput struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// ValidateStruct runs validation on a decoded request body and returns the
// per-field failures, or nil when the body is valid.
func ValidateStruct(body interface{}) []FieldError {
	err := validate.Struct(body)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Rule: "invalid"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
		})
	}

	return fieldErrors
}

// JSONInvalidInput sends the 400 envelope carrying field-level failures.
func JSONInvalidInput(c *fiber.Ctx, fieldErrors []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(invalidInput{
		Message: "Invalid input",
		Errors:  fieldErrors,
	})
}

// JSONBadBody is the 400 response for a body that did not decode at all.
func JSONBadBody(c *fiber.Ctx) error {
	return JSONMessage(c, fiber.StatusBadRequest, "Invalid request body")
}
