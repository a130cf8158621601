// Package handlers exposes the REST surface. Handlers stay thin: bind,
// call into models, map the result onto the wire.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shreeramenterprise/sems_backend/utils"
	"gorm.io/gorm"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ProcessValidationErrors(verrs)})
		return
	}
	status := errStatus(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBindError reports a request body that failed binding. Bind
// failures are always the caller's fault.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ProcessValidationErrors(verrs)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// errStatus maps model errors onto HTTP statuses. Rejected input carries
// the InputError type; anything unrecognized is a server fault.
func errStatus(err error) int {
	var inputErr *utils.InputError
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, utils.ErrorAdminRequired):
		return http.StatusForbidden
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pathId(c *gin.Context) (int, bool) {
	var uri struct {
		Id int `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uri.Id, true
}
