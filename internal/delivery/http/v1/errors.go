package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-task-history/internal/services"
)

const (
	msgUserNotFound      = "User not found"
	msgTaskNotFound      = "Task not found"
	msgUserHasDependents = "User still has tasks or task history"
	msgInvalidTaskStatus = "Invalid task status"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// newServiceError maps the services sentinel errors to their HTTP
// counterparts. Anything unknown is an internal error.
func newServiceError(err error) apiError {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return newNotFoundError(msgUserNotFound)
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError(msgTaskNotFound)
	case errors.Is(err, services.ErrUserHasDependents):
		return newConflictError(msgUserHasDependents)
	case errors.Is(err, services.ErrInvalidTaskStatus):
		return newBadRequestError(msgInvalidTaskStatus)
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}

// newBindingError describes the first failed validation rule using the
// json field name, or falls back to a generic message.
func newBindingError(err error) apiError {
	if errors.Is(err, io.EOF) {
		return newBadRequestError(errInvalidRequestBody.Error())
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fieldErr := validationErrs[0]
		switch fieldErr.Tag() {
		case "required":
			return newBadRequestError(fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			return newBadRequestError(fmt.Sprintf("%s must be one of: %s",
				fieldErr.Field(), strings.ReplaceAll(fieldErr.Param(), " ", ", ")))
		default:
			return newBadRequestError(fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}

	return newBadRequestError(errInvalidRequestBody.Error())
}

var registerJSONTagNamesOnce sync.Once

// registerJSONTagNames makes validation errors report json field names.
func registerJSONTagNames() {
	registerJSONTagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}
