package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ldumont/sqlvsorm/internal/database"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"` // populated for validation failures
}

// FieldError names one violated field constraint.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// --- Error Response Helpers ---

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondValidationError sends a 422 listing the violated fields when the
// binding failure came from declared field constraints.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: strings.ToLower(fe.Field()),
				Rule:  fe.Tag(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid request body"})
}

// respondStoreError maps repository sentinel errors onto status codes;
// anything unrecognized is a server error.
func respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, database.ErrAuthorNotFound):
		respondNotFound(c, "author")
	case errors.Is(err, database.ErrTagNotFound):
		respondNotFound(c, "tag")
	case errors.Is(err, database.ErrNameTaken):
		respondConflict(c, "name already taken")
	default:
		respondInternalError(c, err, context)
	}
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Returns the parsed ID or responds with a 404 and returns
// 0, false — a non-numeric id can never reference an existing row.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondNotFound(c, paramName)
		return 0, false
	}
	return uint(id), true
}
