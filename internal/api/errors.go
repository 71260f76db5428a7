package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/habrreader/internal/domain"
)

// Error codes returned in ErrorResponse.Code.
const (
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeUpstream        = "UPSTREAM_ERROR"
	codeNotFound        = "NOT_FOUND"
	codeInternal        = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps the retrieval error taxonomy onto HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, codeInvalidArgument
	case errors.Is(err, domain.ErrExtraction), errors.Is(err, domain.ErrEmptyResult):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrParse):
		return http.StatusBadGateway, codeUpstream
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// respondError records err on the context and writes the mapped response.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, code := statusFor(err)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

// respondBadRequest writes a 400 for malformed request parameters.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: codeInvalidArgument})
}
