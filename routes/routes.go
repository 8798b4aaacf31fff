package routes

import (
	"stitchworks-api/controllers"
	"stitchworks-api/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers groups everything RegisterRoutes wires up.
type Controllers struct {
	Orders     *controllers.OrderController
	Deliveries *controllers.DeliveryController
	Inventory  *controllers.InventoryController
	Salaries   *controllers.SalaryController
	Employees  *controllers.EmployeeController
}

// RegisterRoutes sets up the full HTTP surface. Order placement and invoice
// download are public; everything else is admin-only.
func RegisterRoutes(r *gin.Engine, c Controllers, authSecret string) {

	// Public: customers place orders and fetch their invoice.
	r.POST("/orders", c.Orders.Create)
	r.GET("/orders/:id/invoice", c.Orders.Invoice)

	auth := middleware.AuthMiddleware(authSecret)
	admin := middleware.RequireRole("admin")

	orders := r.Group("/orders")
	orders.Use(auth, admin)
	{
		orders.GET("/", c.Orders.List)
		orders.GET("/:id", c.Orders.Get)
		orders.PUT("/:id", c.Orders.Update)
		orders.DELETE("/:id", c.Orders.Delete)
		orders.PATCH("/:id/status", c.Orders.SetStatus)
	}

	deliveries := r.Group("/deliveries")
	deliveries.Use(auth, admin)
	{
		deliveries.GET("/", c.Deliveries.List)
		deliveries.GET("/:id", c.Deliveries.Get)
		deliveries.POST("/reconcile", c.Deliveries.Reconcile)
		deliveries.PATCH("/:id/assign", c.Deliveries.AssignDriver)
		deliveries.PATCH("/:id/unassign", c.Deliveries.RemoveDriver)
		deliveries.DELETE("/:id", c.Deliveries.Delete)
	}

	inventory := r.Group("/inventory")
	inventory.Use(auth, admin)
	{
		inventory.GET("/", c.Inventory.List)
		inventory.GET("/low", c.Inventory.LowStock)
		inventory.GET("/:code", c.Inventory.Get)
		inventory.POST("/", c.Inventory.Create)
		inventory.PUT("/:code", c.Inventory.Update)
		inventory.DELETE("/:code", c.Inventory.Delete)
		inventory.POST("/:code/add", c.Inventory.AddStock)
		inventory.POST("/:code/remove", c.Inventory.RemoveStock)
	}

	salaries := r.Group("/salaries")
	salaries.Use(auth, admin)
	{
		salaries.GET("/", c.Salaries.List)
		salaries.GET("/:code", c.Salaries.Get)
		salaries.POST("/", c.Salaries.Create)
		salaries.PATCH("/:code/paid", c.Salaries.MarkPaid)
		salaries.DELETE("/:code", c.Salaries.Delete)
	}

	reports := r.Group("/reports")
	reports.Use(auth, admin)
	{
		reports.GET("/summary", c.Salaries.MonthlySummary)
	}

	employees := r.Group("/employees")
	employees.Use(auth, admin)
	{
		employees.GET("/", c.Employees.List)
		employees.GET("/:id", c.Employees.Get)
		employees.POST("/", c.Employees.Create)
		employees.PUT("/:id", c.Employees.Update)
		employees.DELETE("/:id", c.Employees.Delete)
		employees.POST("/:id/attendance", c.Employees.RecordAttendance)
		employees.GET("/:id/attendance", c.Employees.ListAttendance)
	}
}
