// /cmd/web/main.go
package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mayorista/catalogo-backend/internal/config"
	"github.com/mayorista/catalogo-backend/internal/database"
	"github.com/mayorista/catalogo-backend/internal/handler"
	"github.com/mayorista/catalogo-backend/internal/store"
	"github.com/mayorista/catalogo-backend/pkg/logger"
)

func main() {
	// El .env es opcional: en contenedores las variables ya vienen
	// puestas en el ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("falló la migración del esquema", zap.Error(err))
	}
	if err := database.SeedProducts(db); err != nil {
		log.Fatal("falló el seed del catálogo", zap.Error(err))
	}

	productHandler := &handler.ProductHandler{Catalog: store.NewCatalogStore(db)}
	orderHandler := &handler.OrderHandler{Orders: store.NewOrderStore(db)}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestID(), handler.AccessLog())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/", handler.ShowHome)
	router.GET("/productos", productHandler.ListProducts)
	router.POST("/pedidos", orderHandler.CreateOrder)
	router.GET("/pedidos", orderHandler.ListOrders)

	log.Info("servidor escuchando", zap.String("puerto", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("el servidor terminó con error", zap.Error(err))
	}
}
