package routes

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "pesquisa_pbr/docs" // This will be auto-generated
	"pesquisa_pbr/internal/adapter/http/handlers"
	"pesquisa_pbr/internal/infrastructure/seed"
	"pesquisa_pbr/internal/store"
	"pesquisa_pbr/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "8080"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	st := store.New(loadInitialState())

	authUseCase := usecase.NewAuthUseCase(st, getenvDefault("AUTH_TOKEN_SECRET", "dev-secret-change-me"), tokenTTL())
	projectUseCase := usecase.NewProjectUseCase(st)
	userUseCase := usecase.NewUserUseCase(st)
	areaUseCase := usecase.NewAreaUseCase(st)
	collectionUseCase := usecase.NewCollectionUseCase(st)
	dashboardUseCase := usecase.NewDashboardUseCase(st)

	authHandler := handlers.NewAuthHandler(authUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	fieldHandler := handlers.NewFieldHandler(collectionUseCase, areaUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSurveyRoutes(v1, authUseCase, authHandler, projectHandler, userHandler, fieldHandler, dashboardHandler)
}

// loadInitialState uses the seed file named by SEED_FILE when present,
// falling back to the built-in mock dataset.
func loadInitialState() store.State {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		log.Printf("[seed][infra] no SEED_FILE configured, using built-in dataset")
		return seed.Default()
	}
	state, err := seed.Load(path)
	if err != nil {
		log.Fatalf("[seed][infra] failed to load seed file: %v", err)
	}
	log.Printf("[seed][infra] loaded %s: %d projects, %d users, %d areas",
		path, len(state.Projects), len(state.Users), len(state.SurveyAreas))
	return state
}

func tokenTTL() time.Duration {
	raw := getenvDefault("AUTH_TOKEN_TTL", "8h")
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[auth][infra] invalid AUTH_TOKEN_TTL %q, using 8h", raw)
		return 8 * time.Hour
	}
	return ttl
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
