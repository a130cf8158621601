package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/models"
)

func ListClientsHandler(c *gin.Context) {
	clients, err := models.GetAllClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, clients)
}

func GetClientHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	client, err := models.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, client)
}

func CreateClientHandler(c *gin.Context) {
	var input models.NewClient
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	client, err := models.CreateClient(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, client)
}

func UpdateClientHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var input models.NewClient
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	client, err := models.UpdateClient(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, client)
}

func DeleteClientHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	client, err := models.DeleteClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, client)
}

// ClientStatementHandler returns the chronological ledger for one
// client: opening balance, every order and payment, running balance.
func ClientStatementHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	statement, err := models.GetClientStatement(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, statement)
}
