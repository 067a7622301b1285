package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JSambassador/barber-shop/config"
	"github.com/JSambassador/barber-shop/controllers"
	"github.com/JSambassador/barber-shop/services"
)

func SetupRouter(data *services.DataService, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(config.RequestLogger(log))

	serviceController := controllers.NewServiceController(data)
	customerController := controllers.NewCustomerController(data)
	appointmentController := controllers.NewAppointmentController(data)
	queueController := controllers.NewQueueController(data)
	syncController := controllers.NewSyncController(data)

	api := r.Group("/api")
	{
		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", serviceController.List)
			servicesGroup.POST("", serviceController.Create)
			servicesGroup.PUT("/:id", serviceController.Update)
			servicesGroup.DELETE("/:id", serviceController.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerController.List)
			customers.GET("/:id", customerController.Get)
			customers.POST("", customerController.Create)
			customers.PUT("/:id", customerController.Update)
			customers.DELETE("/:id", customerController.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentController.List)
			appointments.POST("", appointmentController.Create)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.DELETE("/:id", appointmentController.Delete)
		}

		queue := api.Group("/queue")
		{
			queue.GET("", queueController.List)
			queue.POST("", queueController.Add)
			queue.DELETE("/:id", queueController.Remove)
		}

		api.POST("/sync", syncController.Sync)
		api.GET("/health", syncController.Health)
	}

	return r
}
