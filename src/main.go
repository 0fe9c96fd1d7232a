package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"regexp"
	"rsud/src/boot"
	"rsud/src/config"
	"rsud/src/controllers"
	"rsud/src/db"
	"rsud/src/lib"
	awslib "rsud/src/lib/aws"
	"rsud/src/middlewares"
	"rsud/src/types"
	"rsud/src/utils"
	"strconv"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	apiPrefix    string = "/api"
	maxBodyBytes int64  = 10 << 20
)

var nikValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	return utils.ValidNIK(fl.Field().String())
}

// bedcount checks the field against the sibling named by the tag param,
// e.g. `bedcount=TotalBeds`.
var bedcount validator.Func = func(fl validator.FieldLevel) bool {
	total := fl.Parent().FieldByName(fl.Param())
	if !total.IsValid() || !total.CanInt() || !fl.Field().CanInt() {
		return false
	}
	return fl.Field().Int() <= total.Int()
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("nik", nikValidatorFunc)
		v.RegisterValidation("bedcount", bedcount)
	}
}

func bodyLimit(ctx *gin.Context) {
	if ctx.Request.Body != nil {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)
	}
	ctx.Next()
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.RequestID, middlewares.SecureHeaders, bodyLimit)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		on, err := strconv.ParseBool(os.Getenv("MAINTENANCE_MODE"))
		if err == nil && on {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

// appHostPattern compiles APP_HOST, the allowed browser origin pattern. Nil
// means no cross-origin access.
func appHostPattern() *regexp.Regexp {
	appHost := os.Getenv("APP_HOST")
	if appHost == "" {
		return nil
	}
	re, err := regexp.Compile(appHost)
	if err != nil {
		log.Printf("Invalid APP_HOST pattern %q: %s\n", appHost, err.Error())
		return nil
	}
	return re
}

func corsMiddleware() gin.HandlerFunc {
	if config.API_ENV == "local" {
		return cors.Default()
	}
	appHost := appHostPattern()
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", "X-Request-ID")
	cc.AllowOriginFunc = func(origin string) bool {
		return appHost != nil && appHost.MatchString(origin)
	}
	cc.AllowCredentials = true
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	api.GET("/health", func(ctx *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Printf("Health check failed: %s\n", err.Error())
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	publicDoctorHandlers(api)
	publicRegistrationHandlers(api)
	publicMessageHandlers(api)
	publicFacilityHandlers(api)
	patientHandlers(api)
	guestAuthRoutes(api)
	return api
}

func adminRoutes(g *gin.Engine) *gin.RouterGroup {
	authorized := apiGroup(g)
	authorized.Use(middlewares.AdminAuth)
	{
		authorized = doctorHandlers(authorized)
		authorized = registrationHandlers(authorized)
		authorized = messageHandlers(authorized)
		authorized = userHandlers(authorized)
		authorized = bpjsHandlers(authorized)
		authorized = facilityHandlers(authorized)
		authorized = roomHandlers(authorized)
		authorized = bankHandlers(authorized)
		authorized = dashboardHandlers(authorized)
	}
	return authorized
}

// realtimeOrigin mirrors corsMiddleware for the socket.io handshake.
func realtimeOrigin() any {
	if config.API_ENV == "local" {
		return "*"
	}
	if re := appHostPattern(); re != nil {
		return re
	}
	return false
}

func authorizeRealtimeAdmin(token string) error {
	_, err := middlewares.CheckToken(token, types.ROLE_ADMIN)
	return err
}

func setupSocketServer(r *gin.Engine) {
	if !config.RealtimeEnabled() {
		return
	}
	_, handler := lib.NewRealtimeServer(lib.RealtimeOptions{
		Origin:    realtimeOrigin(),
		Authorize: authorizeRealtimeAdmin,
	})
	r.GET("/socket.io/*any", gin.WrapH(handler))
	r.POST("/socket.io/*any", gin.WrapH(handler))
	log.Println("WS server listening for connections...")
}

func initLogger() {
	cwd, _ := os.Getwd()
	logsDir := path.Join(cwd, "logs")
	os.MkdirAll(logsDir, 0o755)
	serverLogs := path.Join(logsDir, "server.log")
	apiLogs := path.Join(logsDir, "api.log")
	gin.ForceConsoleColor()

	f, err := os.Create(apiLogs)
	if err != nil {
		log.Printf("Could not create %s: %s\n", apiLogs, err.Error())
	} else {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	if os.Getenv("API_ENV") == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	if err := awslib.LoadSecrets(context.Background()); err != nil {
		log.Printf("Could not load secrets: %s\n", err.Error())
	}
	config.Reload()
	if config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.ResetAdminCredentials()
	initLogger()
	registerValidators()

	boot.InitDb()
	boot.InitScheduler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go boot.InitBroker(ctx)

	router := setupRouter()
	router.Use(corsMiddleware())
	router = maintenanceModeMiddleware(router)
	setupSocketServer(router)
	publicRoutes(router)
	adminRoutes(router)

	srv := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: router,
	}
	go func() {
		log.Printf("API listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Could not start server: %s\n", err.Error())
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %s\n", err.Error())
	}
	boot.StopScheduler()
	lib.KafkaClose()
}
