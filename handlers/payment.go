package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func ListPaymentsHandler(c *gin.Context) {
	clientId, _ := strconv.Atoi(c.Query("client_id"))
	beforeYear, _ := strconv.Atoi(c.Query("before_year"))
	beforeMonth, _ := strconv.Atoi(c.Query("before_month"))
	filter := models.PaymentFilter{
		ClientId:    clientId,
		Month:       c.Query("month"),
		BeforeYear:  beforeYear,
		BeforeMonth: beforeMonth,
	}
	payments, err := models.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payments)
}

func GetPaymentHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	payment, err := models.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

func CreatePaymentHandler(c *gin.Context) {
	var input models.NewPayment
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	payment, err := models.CreatePayment(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}

func DeletePaymentHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	payment, err := models.DeletePayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, payment)
}
