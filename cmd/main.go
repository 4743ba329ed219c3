package main

import (
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"invoicepress/internal/caching"
	"invoicepress/internal/config"
	"invoicepress/internal/handlers"
	"invoicepress/internal/render"
	"invoicepress/internal/services"
)

const version = "1.0.0"

func main() {
	// Renderer configuration
	renderCfg := config.DefaultRenderConfig()
	if cfgPath := os.Getenv("RENDER_CONFIG"); cfgPath != "" {
		loaded, err := config.LoadRenderConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load render config: %v", err)
		}
		renderCfg = loaded
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000" // Default MinIO endpoint
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	storageSvc, err := services.NewMinioStorageService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize storage service: %v", err)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379" // Default Redis address
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0 // Default DB
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Image source: a local directory when configured, object storage otherwise
	var images render.ImageSource
	if dir := os.Getenv("IMAGE_DIR"); dir != "" {
		images = services.NewDirImageSource(dir)
	} else {
		images = services.NewObjectImageSource(storageSvc, renderCfg.Storage.ImageBucket)
	}

	assembler := render.NewAssembler(images, renderCfg.RendererConfig())
	documentSvc := services.NewDocumentService(assembler, storageSvc, cacheSvc, renderCfg.Storage.DocumentBucket)

	documentHandlers := handlers.NewDocumentHandlers(documentSvc)
	healthHandlers := handlers.NewHealthHandlers(storageSvc, version)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	e.GET("/healthz", healthHandlers.HealthCheck)
	e.POST("/documents/render", documentHandlers.RenderDocument)
	e.POST("/documents", documentHandlers.CreateDocument)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("invoicepress %s listening on :%s", version, port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
