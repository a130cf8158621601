package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shreeramenterprise/sems_backend/middlewares"
)

// RegisterRoutes wires the full API surface under /api. Everything
// except login and the one-time admin setup requires a session;
// destructive and administrative routes additionally require admin.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/login", LoginHandler)
	api.POST("/auth/setup-admin", SetupAdminHandler)

	auth := api.Group("", middlewares.RequireAuth())
	admin := api.Group("", middlewares.RequireAdmin())

	auth.POST("/auth/logout", LogoutHandler)
	auth.GET("/auth/user", SessionUserHandler)

	auth.GET("/clients", ListClientsHandler)
	auth.GET("/clients/:id", GetClientHandler)
	auth.GET("/clients/:id/statement", ClientStatementHandler)
	auth.POST("/clients", CreateClientHandler)
	auth.PATCH("/clients/:id", UpdateClientHandler)
	admin.DELETE("/clients/:id", DeleteClientHandler)

	auth.GET("/orders", ListOrdersHandler)
	auth.GET("/orders/:id", GetOrderHandler)
	auth.POST("/orders", CreateOrderHandler)
	auth.PATCH("/orders/:id", UpdateOrderHandler)
	admin.DELETE("/orders/:id", DeleteOrderHandler)

	auth.GET("/payments", ListPaymentsHandler)
	auth.GET("/payments/:id", GetPaymentHandler)
	auth.POST("/payments", CreatePaymentHandler)
	admin.DELETE("/payments/:id", DeletePaymentHandler)

	auth.GET("/invoices", ListInvoicesHandler)
	auth.GET("/invoices/:id", GetInvoiceHandler)
	auth.GET("/invoices/:id/pdf", InvoicePdfHandler)
	auth.POST("/invoices", CreateInvoiceHandler)
	auth.PATCH("/invoices/:id", UpdateInvoiceHandler)
	admin.DELETE("/invoices/:id", DeleteInvoiceHandler)

	auth.GET("/material-rates", ListMaterialRatesHandler)
	auth.POST("/material-rates", CreateMaterialRateHandler)
	auth.PATCH("/material-rates", UpdateMaterialRateByNameHandler)
	auth.PATCH("/material-rates/:id", UpdateMaterialRateHandler)
	admin.DELETE("/material-rates/:id", DeleteMaterialRateHandler)

	auth.GET("/vehicles", ListVehiclesHandler)
	auth.POST("/vehicles", CreateVehicleHandler)
	admin.DELETE("/vehicles/:id", DeleteVehicleHandler)

	admin.GET("/staff", ListStaffHandler)
	admin.POST("/staff", CreateStaffHandler)
	admin.PATCH("/staff/:id", UpdateStaffHandler)
	admin.DELETE("/staff/:id", DeleteStaffHandler)

	auth.GET("/settings", GetSettingsHandler)
	admin.PATCH("/settings", UpdateSettingsHandler)

	auth.GET("/reports/summary", SummaryReportHandler)
	auth.GET("/reports/export", ExportReportHandler)
}
