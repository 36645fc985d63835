package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/shop_admin/internal/middleware"
	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	Auth           *middleware.Auth
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/get-token", d.AuthHandler.GetToken)
	auth.POST("/register", d.AuthHandler.Register)

	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	products := e.Group("/products", d.Auth.RequireAuth)
	products.GET("", d.ProductHandler.List)
	products.GET("/search", d.ProductHandler.Search)
	products.GET("/:id", d.ProductHandler.Get)
	products.POST("/create", d.ProductHandler.Create, staff)
	products.POST("/:id/update", d.ProductHandler.Update, staff)
	products.POST("/:id/delete", d.ProductHandler.Delete, staff)

	orders := e.Group("/orders", d.Auth.RequireAuth)
	orders.GET("", d.OrderHandler.List)
	orders.GET("/:id", d.OrderHandler.Get)
	orders.POST("/create", d.OrderHandler.Create)
	orders.POST("/:id/update", d.OrderHandler.Update, staff)
	orders.POST("/:id/update-status", d.OrderHandler.UpdateStatus, staff)
	orders.POST("/:id/delete", d.OrderHandler.Delete, staff)

	users := e.Group("/users", d.Auth.RequireAuth, staff)
	users.GET("", d.UserHandler.List)
	users.GET("/:id", d.UserHandler.Get)
	users.POST("/create", d.UserHandler.Create)
	users.POST("/:id/update", d.UserHandler.Update)
	users.POST("/:id/delete", d.UserHandler.Delete)
}
