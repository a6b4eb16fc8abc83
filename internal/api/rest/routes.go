package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dhoini/Tims-microservice/config"
	"github.com/Dhoini/Tims-microservice/internal/api/rest/handlers"
	"github.com/Dhoini/Tims-microservice/internal/api/rest/middleware"
	"github.com/Dhoini/Tims-microservice/internal/service"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// SetupRouter wires middleware, routes and handlers onto a Gin engine
func SetupRouter(
	cfg *config.Config,
	customerService service.CustomerService,
	orderService service.OrderService,
	registry *prometheus.Registry,
	log *logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(recovery(cfg, log))
	r.Use(cors.Default())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	paging := handlers.PagingDefaults{
		PageNumber: cfg.Pagination.DefaultPageNumber,
		PageSize:   cfg.Pagination.DefaultPageSize,
	}
	dev := cfg.App.IsDevelopment()

	customerHandler := handlers.NewCustomerHandler(customerService, paging, dev, log)
	orderHandler := handlers.NewOrderHandler(orderService, paging, dev, log)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.GET("/paged", customerHandler.GetPagedCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)

			// Orders of one customer
			customers.GET("/:id/orders/paged", orderHandler.GetCustomerOrdersPaged)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/paged", orderHandler.GetPagedOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}

// recovery converts panics into the generic 500 response, exposing the
// panic value only in development mode
func recovery(cfg *config.Config, log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Panic recovered: %v", recovered)

		body := gin.H{"message": "Internal server error"}
		if cfg.App.IsDevelopment() {
			body["error"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
