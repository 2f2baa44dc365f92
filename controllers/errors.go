package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/bar-api/events"
	"github.com/yeremiapane/bar-api/repository"
	"github.com/yeremiapane/bar-api/utils"
)

const internalErrorMessage = "internal server error"

// respondRepoError maps repository error kinds to HTTP statuses. Unexpected
// errors are logged and answered with a generic message.
func respondRepoError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, repository.ErrConflict):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.WithFields(logrus.Fields{
			"action": action,
			"path":   c.Request.URL.Path,
		}).Errorf("request failed: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// parseIDParam reads a positive numeric path parameter, answering 400 when it
// is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondMessage(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// publish hands a committed change to the event publishers. Failures are only
// logged; the write already succeeded.
func publish(c *gin.Context, publisher events.Publisher, eventType string, data interface{}) {
	if publisher == nil {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	if err := publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		utils.ErrorLogger.Printf("publish %s: %v", eventType, err)
	}
}
