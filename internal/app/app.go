package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/darshan27122006-bit/Equilearn/internal/config"
	"github.com/darshan27122006-bit/Equilearn/internal/controller"
	"github.com/darshan27122006-bit/Equilearn/internal/service"
	"github.com/darshan27122006-bit/Equilearn/internal/store"
	"github.com/darshan27122006-bit/Equilearn/pkg/database"
	"github.com/darshan27122006-bit/Equilearn/pkg/logger"
	"github.com/darshan27122006-bit/Equilearn/pkg/monitoring"
	"github.com/darshan27122006-bit/Equilearn/pkg/security"
	"github.com/darshan27122006-bit/Equilearn/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Store           *store.Store
	services        *services
	configCallbacks []func(*config.Config)
}

type services struct {
	auth      *service.AuthService
	ai        *service.AIService
	content   *service.ContentService
	progress  *service.ProgressService
	classroom *service.ClassroomService
	quiz      *service.QuizService
	assign    *service.AssignmentService
	message   *service.MessageService
	tutor     *service.TutorService
	storage   *service.StorageService
}

type controllers struct {
	auth      *controller.AuthController
	content   *controller.ContentController
	progress  *controller.ProgressController
	classroom *controller.ClassroomController
	quiz      *controller.QuizController
	assign    *controller.AssignmentController
	message   *controller.MessageController
	tutor     *controller.TutorController
	admin     *controller.AdminController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to the registered callbacks.
// Only settings read per-request (AI endpoint, rate limits) take
// effect; the store backend is fixed for the process lifetime.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("configuration reloaded")
}

// initStore builds the persistence layer for the configured backend.
func initStore(cfg *config.Config) (*store.Store, error) {
	var backend store.Backend

	switch cfg.Store.Backend {
	case "mysql":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		backend, err = store.NewGormBackend(db)
		if err != nil {
			return nil, err
		}
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		backend = store.NewRedisBackend(rdb)
	case "memory":
		backend = store.NewMemoryBackend()
	default:
		db, err := database.InitSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		backend, err = store.NewSQLiteBackend(db)
		if err != nil {
			return nil, err
		}
	}

	return store.New(backend, cfg.Store.Namespace), nil
}

func (a *App) initServices(st *store.Store, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.auth = service.NewAuthService(st)
	s.content = service.NewContentService(st, s.ai)
	s.progress = service.NewProgressService(st)
	s.classroom = service.NewClassroomService(st)
	s.quiz = service.NewQuizService(st)
	s.assign = service.NewAssignmentService(st)
	s.message = service.NewMessageService(st)
	s.tutor = service.NewTutorService(st, s.ai)

	return s
}

func (a *App) initControllers(s *services, st *store.Store, cfg *config.Config) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		content:   controller.NewContentController(s.content, s.storage),
		progress:  controller.NewProgressController(s.progress),
		classroom: controller.NewClassroomController(s.classroom),
		quiz:      controller.NewQuizController(s.quiz),
		assign:    controller.NewAssignmentController(s.assign, s.storage),
		message:   controller.NewMessageController(s.message),
		tutor:     controller.NewTutorController(s.tutor),
		admin:     controller.NewAdminController(st, s.content),
		health:    controller.NewHealthController(st, cfg),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	st, err := initStore(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize store", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  st,
	}

	services := app.initServices(st, cfg)
	app.services = services
	controllers := app.initControllers(services, st, cfg)

	// Seed default accounts on an empty store.
	if err := services.auth.Bootstrap(); err != nil {
		logger.Log.Fatal("failed to seed default accounts", zap.Error(err))
	}

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("equilearn", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Store.Close(); err != nil {
		logger.Log.Error("store close failed", zap.Error(err))
	}

	log.Println("Server exiting")
}
