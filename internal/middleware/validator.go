package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/chrisrobison/RSG-Chess-mobile/internal/api"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const BodyKey = "validatedBody"

var validate = validator.New()

// Validate checks v against its struct tags and returns a readable error.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "len":
			details.WriteString(fmt.Sprintf("%s must be %s characters", fe.Field(), fe.Param()))
		case "max":
			if fe.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%s", details.String())
}

// ValidateBody parses the JSON body into a new T, validates it and stores
// it in the request locals for Body to pick up.
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if len(c.Body()) > 0 {
			if err := c.BodyParser(req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
					Error:   "invalid request body",
					Code:    api.ErrInvalidRequest,
					Details: err.Error(),
				})
			}
		}
		if err := Validate(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(api.ErrorResponse{
				Error:   "validation failed",
				Code:    api.ErrInvalidRequest,
				Details: err.Error(),
			})
		}
		c.Locals(BodyKey, req)
		return c.Next()
	}
}

// Body returns the request validated by ValidateBody[T].
func Body[T any](c *fiber.Ctx) *T {
	req, _ := c.Locals(BodyKey).(*T)
	return req
}
