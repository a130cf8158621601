package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func ListMaterialRatesHandler(c *gin.Context) {
	rates, err := models.ListMaterialRates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rates)
}

func CreateMaterialRateHandler(c *gin.Context) {
	var input models.NewMaterialRate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	rate, err := models.CreateMaterialRate(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}

// UpdateMaterialRateByNameHandler updates a rate addressed by material name
// instead of id, for clients that only know the material.
func UpdateMaterialRateByNameHandler(c *gin.Context) {
	var input models.NewMaterialRate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	rate, err := models.UpdateMaterialRate(c.Request.Context(), 0, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}

func UpdateMaterialRateHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewMaterialRate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	rate, err := models.UpdateMaterialRate(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}

func DeleteMaterialRateHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	rate, err := models.DeleteMaterialRate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, rate)
}
