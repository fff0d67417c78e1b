package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/middleware"
	"github.com/namratah118/trykymi/routes"
	"github.com/namratah118/trykymi/services"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	if err := config.InitDB(conf); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	assistantClient, err := services.NewAssistantClient(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint, conf.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to initialize assistant client: %v", err)
	}

	assistantService := services.NewAssistantService(assistantClient)
	debriefService := services.NewDebriefService(assistantClient, time.Duration(conf.AITimeoutSeconds)*time.Second)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, assistantService, debriefService)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		log.Printf("starting server on port %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// wait for an interrupt, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("waiting for background tasks...")
	assistantService.Wait()
	log.Println("server stopped")
}
