package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func GetSettingsHandler(c *gin.Context) {
	settings, err := models.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, settings)
}

func UpdateSettingsHandler(c *gin.Context) {
	var input models.CompanySettingsUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	settings, err := models.UpdateSettings(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, settings)
}
