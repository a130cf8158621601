package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func ListVehiclesHandler(c *gin.Context) {
	vehicles, err := models.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicles)
}

func CreateVehicleHandler(c *gin.Context) {
	var input models.NewVehicle
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	vehicle, err := models.CreateVehicle(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicle)
}

func DeleteVehicleHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	vehicle, err := models.DeleteVehicle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, vehicle)
}
