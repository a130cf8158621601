package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
	"github.com/shreeramenterprise/sems_backend/pdf"
)

func ListInvoicesHandler(c *gin.Context) {
	clientId, _ := strconv.Atoi(c.Query("client_id"))
	invoices, err := models.ListInvoices(c.Request.Context(), clientId)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoices)
}

func GetInvoiceHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	invoice, err := models.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func CreateInvoiceHandler(c *gin.Context) {
	var input models.NewInvoice
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	invoice, err := models.CreateInvoice(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func UpdateInvoiceHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.InvoiceUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	invoice, err := models.UpdateInvoice(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

func DeleteInvoiceHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	invoice, err := models.DeleteInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invoice)
}

// InvoicePdfHandler streams the rendered invoice as an attachment.
func InvoicePdfHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	invoice, err := models.GetInvoice(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	client, err := models.GetClient(ctx, invoice.ClientId)
	if err != nil {
		respondError(c, err)
		return
	}
	settings, err := models.GetSettings(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := pdf.RenderInvoice(&buf, invoice, client, settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render invoice"})
		return
	}
	filename := fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
