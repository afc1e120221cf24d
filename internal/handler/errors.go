package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"housing-service/internal/apperr"
	"housing-service/internal/logger"
)

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:       http.StatusBadRequest,
	apperr.KindNotFound:         http.StatusNotFound,
	apperr.KindPermissionDenied: http.StatusForbidden,
	apperr.KindUnauthenticated:  http.StatusUnauthorized,
	apperr.KindConflict:         http.StatusConflict,
}

// respondError writes err as {"detail": ...}. Unclassified errors are logged
// and reported as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind == apperr.KindInternal {
		log.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	body := gin.H{"detail": e.Detail}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	c.JSON(statusByKind[e.Kind], body)
}

// bindError reports a request body that failed binding as a validation error.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body", "fields": gin.H{"body": err.Error()}})
}

// paramID parses a positive id path parameter, answering 404 when it is malformed.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil {
		return v
	}
	return fallback
}
