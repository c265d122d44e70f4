package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shop-service/config"
	"shop-service/consumers"
	"shop-service/controllers"
	"shop-service/database"
	"shop-service/middlewares"
	"shop-service/rabbitmq"
	"shop-service/repositories"
	"shop-service/services"
)

func main() {
	if err := database.InitDB(); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.CloseDB()

	cfg := config.LoadConfig()

	if err := database.Bootstrap(cfg); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	rmq, err := rabbitmq.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("RabbitMQ initialization failed: %v", err)
	}
	defer rmq.Close()

	if err := rmq.SetupQueues(); err != nil {
		log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
	}

	productRepo := repositories.NewProductRepository(database.DB)
	orderRepo := repositories.NewOrderRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)

	go consumers.StartOrderConsumer(rmq.Channel, cfg, orderRepo)

	pricing := services.NewPricingEngine(productRepo)
	controllers.SetProductService(services.NewProductService(productRepo))
	controllers.SetOrderService(services.NewOrderService(orderRepo, userRepo, pricing))
	controllers.SetUserRepository(userRepo)
	controllers.SetRabbitMQ(rmq)

	r := gin.Default()

	r.Use(middlewares.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/login", controllers.Login)

	r.GET("/products", controllers.ListProducts)
	r.GET("/products/filter", controllers.FilterProducts)
	r.GET("/products/:id", controllers.GetProduct)
	r.GET("/orders", controllers.ListOrders)
	r.GET("/orders/filter", controllers.FilterOrders)
	r.GET("/orders/:id", controllers.GetOrder)

	// mutating routes; bearer auth only when enabled
	write := r.Group("/")
	if cfg.AuthEnabled {
		write.Use(middlewares.AuthMiddleware())
	}
	write.POST("/products", controllers.CreateProduct)
	write.PUT("/products/:id", controllers.UpdateProduct)
	write.DELETE("/products/:id", controllers.DeleteProduct)
	write.POST("/orders", controllers.CreateOrder)
	write.PUT("/orders/:id", controllers.UpdateOrder)
	write.DELETE("/orders/:id", controllers.DeleteOrder)

	addr := ":" + cfg.Port
	log.Printf("Shop service starting on port %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
