package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blogapi/internal/domain/apperr"
	"blogapi/pkg/response"
)

// fail maps a service error onto the HTTP taxonomy. Unexpected faults are
// logged and reported with an opaque message.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperr.ErrConflict):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, apperr.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
