package mrecords

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	apiBase = "/api"
)

var (
	config Config
	engine *gin.Engine
	pool   *pgxpool.Pool
)

func initDBConn() {
	var err error
	pool, err = pgxpool.New(
		context.Background(),
		fmt.Sprintf(
			"postgres://%s:%s@%s/%s",
			config.DBUser,
			config.DBPassword,
			config.DBAddress,
			config.DBName,
		),
	)
	if err != nil {
		log.Fatalf("could not connect to the database: %v", err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalf("failed to ping the db: %v", err)
	}

	b, err := os.ReadFile(config.InitSQLPath)
	if err != nil {
		log.Fatalf("failed to open and read the init sql file: %v", err)
	}
	sql := string(b)
	// apply init sql script
	_, err = pool.Exec(context.Background(), sql)
	if err != nil {
		log.Fatalf("failed to execute init sql: %v", err)
	}
}

func setCors() {
	corsconfig := cors.DefaultConfig()
	corsconfig.AllowOrigins = config.AllowedOrigins
	corsconfig.AllowMethods = config.AllowedMethods
	corsconfig.AllowHeaders = config.AllowedHeaders
	engine.Use(cors.New(corsconfig))
}

func setRoutes() {
	root := engine.Group("/")
	{
		root.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "alive"})
		})
	}

	api := engine.Group(apiBase)
	{
		api.GET("/athletes", handleListAthletes)
		api.GET("/athletes/:id", handleGetAthlete)
		api.POST("/athletes", handleAthleteCreate)
		api.PUT("/athletes/:id", handleAthleteUpdate)
		api.DELETE("/athletes/:id", handleAthleteDelete)

		api.GET("/injuries", handleListInjuries)
		api.GET("/injuries/athlete/:athleteId", handleListInjuriesByAthlete)
		api.GET("/injuries/:id", handleGetInjury)
		api.POST("/injuries", handleInjuryCreate)
		api.PUT("/injuries/:id", handleInjuryUpdate)
		api.DELETE("/injuries/:id", handleInjuryDelete)

		api.GET("/treatments", handleListTreatments)
		api.GET("/treatments/injury/:injuryId", handleListTreatmentsByInjury)
		api.GET("/treatments/:id", handleGetTreatment)
		api.POST("/treatments", handleTreatmentCreate)
		api.PUT("/treatments/:id", handleTreatmentUpdate)
		api.DELETE("/treatments/:id", handleTreatmentDelete)
	}
}

func InitAndServe(confPath string) {
	config = loadConfig(confPath)

	engine = gin.Default()
	setGinMode(config.ApiGinMode)

	setCors()
	setRoutes()

	initDBConn()

	// serve http
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           engine,
		ReadHeaderTimeout: time.Second * 5,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	<-ctx.Done()

	stop()
	log.Println("shutting down gracefully, press Ctrl+C again to force")

	// close db conn
	pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func setGinMode(mode string) {
	switch strings.ToLower(mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "envgin":
		gin.SetMode(gin.EnvGinMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
