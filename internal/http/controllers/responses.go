package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"pokedex_server/internal/http/middleware"
	"pokedex_server/internal/repository"
	"pokedex_server/internal/validation"
	"pokedex_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the "error" field of every failure body
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeDatabaseError    = "DATABASE_ERROR"
)

func validationFailed(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error":   CodeValidationFailed,
		"message": "Validation failed",
		"errors":  errs,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   CodeNotFound,
		"message": message,
	})
}

// respondError maps a repository failure onto the response. Only failures that are
// neither validation nor lookup errors reach the client as 500.
func respondError(c *gin.Context, err error, action string) {
	var errs validation.Errors
	switch {
	case errors.As(err, &errs):
		colors.PrintWarning("Validation failed while trying to %s: %v", action, errs)
		validationFailed(c, errs)
	case errors.Is(err, repository.ErrNotFound):
		notFound(c, capitalize(err.Error()))
	default:
		colors.PrintError("Failed to %s [%s]: %v", action, middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   CodeDatabaseError,
			"message": "Failed to " + action,
		})
	}
}

// parseID reads a numeric path parameter. An id that is not a positive number cannot
// name a record, so it is answered with 404 like any other missing record.
func parseID(c *gin.Context, entity string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		notFound(c, capitalize(entity)+" "+raw+" not found")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into dst. Type mismatches on known fields become field
// violations, anything else that is not JSON is a 400.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		validationFailed(c, validation.Single(typeErr.Field, typeMismatch(typeErr)))
		return false
	}

	colors.PrintError("JSON binding failed: %v", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   CodeInvalidJSON,
		"message": "Invalid JSON format in request body",
		"details": err.Error(),
	})
	return false
}

func typeMismatch(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Bool:
		return "must be true or false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if strings.HasPrefix(e.Value, "number") {
			return "must be an integer"
		}
		return "is not a number"
	default:
		return "is invalid"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
