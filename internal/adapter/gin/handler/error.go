package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "course-enrollment-service/pkg/errors"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError maps typed usecase errors onto HTTP responses. Anything
// without a known type becomes a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	var (
		notFound      *errs.NotFoundError
		alreadyExists *errs.AlreadyExistsError
		unauthorized  *errs.UnauthorizedError
		invalid       *errs.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(notFound.HTTPStatus(), ErrorResponse{Error: "not_found", Message: notFound.Error()})
	case errors.As(err, &alreadyExists):
		c.JSON(alreadyExists.HTTPStatus(), ErrorResponse{Error: "already_exists", Message: alreadyExists.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(unauthorized.HTTPStatus(), ErrorResponse{Error: "unauthorized", Message: unauthorized.Error()})
	case errors.As(err, &invalid):
		c.JSON(invalid.HTTPStatus(), ErrorResponse{Error: "validation_error", Message: invalid.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: "An internal error occurred"})
	}
}
