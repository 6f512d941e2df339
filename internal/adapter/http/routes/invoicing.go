package routes

import (
	"github.com/gin-gonic/gin"

	"locksmith_invoicing/internal/adapter/http/handlers"
)

const (
	PathQuickBooks    = "/qb"
	PathInvoices      = "/invoices"
	PathVehicles      = "/vehicles"
	PathJobs          = "/jobs"
	PathResetCustomer = "/reset-customer"
)

func addQuickBooksRoutes(rg *gin.RouterGroup, qb *handlers.QuickBooksHandler, customers *handlers.CustomerHandler) {
	group := rg.Group(PathQuickBooks)
	{
		group.GET("/connect", qb.Connect)
		group.GET("/callback", qb.Callback)
		group.GET("/status", qb.Status)
		group.POST("/disconnect", qb.Disconnect)
		group.GET("/items", qb.Items)

		group.GET("/customers", customers.Search)
		group.POST("/customers", customers.Create)
		group.GET("/customers/:id", customers.Get)

		group.POST("/session-customer", customers.Select)
		group.GET("/session-customer", customers.Selected)
	}
}

func addInvoicingRoutes(
	rg *gin.RouterGroup,
	customers *handlers.CustomerHandler,
	invoices *handlers.InvoiceHandler,
	jobs *handlers.JobHandler,
	vehicles *handlers.VehicleHandler,
) {
	rg.POST(PathResetCustomer, customers.Reset)

	inv := rg.Group(PathInvoices)
	{
		inv.GET("", invoices.List)
		inv.GET("/current", invoices.Current)
		inv.POST("/send", invoices.Send)
		inv.GET("/:id", invoices.Get)
	}

	rg.GET(PathVehicles+"/:vin", vehicles.Lookup)
	rg.POST(PathJobs, jobs.Submit)
}
