package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-collectibles/internal/api/shared/errors"
	"github.com/feral-file/ff-collectibles/internal/collectibles"
	"github.com/feral-file/ff-collectibles/internal/domain"
	"github.com/feral-file/ff-collectibles/internal/logger"
)

func respond(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, apierrors.Response{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respond(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respond(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respond(c, http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respond(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondServiceError maps an error of the collectibles service to a response.
// Anything the caller cannot fix is reported as a provider failure.
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		respondNotFound(c, message, err.Error())
	case errors.Is(err, domain.ErrUnsupportedProvider),
		errors.Is(err, domain.ErrInvalidWallet),
		errors.Is(err, collectibles.ErrMismatchedTokenLists):
		respondBadRequest(c, message, err.Error())
	default:
		logger.WarnCtx(c.Request.Context(), message, zap.Error(err))
		respond(c, http.StatusBadGateway, apierrors.NewProviderError(message, err.Error()))
	}
}
