package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func orderFilterFromQuery(c *gin.Context) models.OrderFilter {
	clientId, _ := strconv.Atoi(c.Query("client_id"))
	beforeYear, _ := strconv.Atoi(c.Query("before_year"))
	beforeMonth, _ := strconv.Atoi(c.Query("before_month"))
	return models.OrderFilter{
		ClientId:    clientId,
		Month:       c.Query("month"),
		BeforeYear:  beforeYear,
		BeforeMonth: beforeMonth,
	}
}

func ListOrdersHandler(c *gin.Context) {
	orders, err := models.ListOrders(c.Request.Context(), orderFilterFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

func GetOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	order, err := models.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func CreateOrderHandler(c *gin.Context) {
	var input models.NewOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := models.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func UpdateOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := models.UpdateOrder(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func DeleteOrderHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	order, err := models.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}
