package front

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jvarela86/Athlete-Injury-Tracker/internal/utils"
)

const (
	templatesPath = "./internal/front/web/templates"
	staticsPath   = "internal/front/web/static"
)

var (
	config     Config
	engine     *gin.Engine
	downstream *Downstream
)

func setCors() {
	corsconfig := cors.DefaultConfig()
	corsconfig.AllowOrigins = config.AllowedOrigins
	corsconfig.AllowMethods = config.AllowedMethods
	corsconfig.AllowHeaders = config.AllowedHeaders
	engine.Use(cors.New(corsconfig))
}

// requestID tags every request so banner errors can be matched to log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request.id", rid)
		c.Writer.Header().Set("X-Request-Id", rid)
		c.Next()
	}
}

func buildFuncMap() template.FuncMap {
	return template.FuncMap{
		"lower":                strings.ToLower,
		"formatDate":           formatDate,
		"dateInput":            dateInput,
		"athleteStatusBadge":   athleteStatusBadge,
		"injurySeverityBadge":  injurySeverityBadge,
		"injuryStatusBadge":    injuryStatusBadge,
		"treatmentResultBadge": treatmentResultBadge,
		"add": func(a, b any) float64 {
			return utils.ToFloat64(a) + utils.ToFloat64(b)
		},
	}
}

func setTemplateEngine() {
	engine.SetHTMLTemplate(template.Must(template.New("").Funcs(buildFuncMap()).ParseGlob(templatesPath + "/*.html")))
}

func setRoutes() {
	// set statics
	engine.Static("/static", staticsPath)

	root := engine.Group("/")
	{
		root.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "alive"})
		})
		root.GET("/", handleHome)
	}

	athletes := engine.Group("/athletes")
	{
		athletes.GET("", handleAthleteList)
		athletes.GET("/add", handleAthleteForm)
		athletes.POST("/add", handleAthleteSubmit)
		athletes.GET("/:id", handleAthleteDetail)
		athletes.GET("/:id/edit", handleAthleteForm)
		athletes.POST("/:id/edit", handleAthleteSubmit)
		athletes.POST("/:id/delete", handleAthleteDelete)
	}

	injuries := engine.Group("/injuries")
	{
		injuries.GET("", handleInjuryList)
		injuries.GET("/add", handleInjuryForm)
		injuries.POST("/add", handleInjurySubmit)
		injuries.GET("/:id", handleInjuryDetail)
		injuries.GET("/:id/edit", handleInjuryForm)
		injuries.POST("/:id/edit", handleInjurySubmit)
		injuries.POST("/:id/delete", handleInjuryDelete)
	}

	treatments := engine.Group("/treatments")
	{
		treatments.GET("", handleTreatmentList)
		treatments.GET("/add", handleTreatmentForm)
		treatments.POST("/add", handleTreatmentSubmit)
		treatments.GET("/:id", handleTreatmentDetail)
		treatments.GET("/:id/edit", handleTreatmentForm)
		treatments.POST("/:id/edit", handleTreatmentSubmit)
		treatments.POST("/:id/delete", handleTreatmentDelete)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "bad path"})
	})
}

func InitAndServe(confPath string) {
	// load configuration
	config = loadConfig(confPath)
	// instantiate a new http server
	engine = gin.Default()
	setGinMode(config.ApiGinMode)

	downstream = &Downstream{
		Base:   fmt.Sprintf("http://%s/api", config.RecordsAddress),
		Client: http.DefaultClient,
	}

	engine.Use(requestID())

	// -> setup cors
	setCors()
	// -> setup funcMaps & setup templateEngine
	setTemplateEngine()
	// -> setupRoutes
	setRoutes()

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
