package app

import (
	"context"
	"errors"
	"lls_backend/internal/config"
	"lls_backend/internal/controller"
	"lls_backend/internal/repository"
	"lls_backend/internal/service"
	"lls_backend/internal/util"
	"lls_backend/pkg/database"
	"lls_backend/pkg/logger"
	"lls_backend/pkg/monitoring"
	"lls_backend/pkg/security"
	"lls_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	academic   *repository.AcademicRepository
	staff      *repository.StaffRepository
	student    *repository.StudentRepository
	learning   *repository.LearningRepository
	quiz       *repository.QuizRepository
	submission *repository.SubmissionRepository
	evaluation *repository.EvaluationRepository
	progress   *repository.ProgressRepository
	admin      *repository.AdminRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	academic   *service.AcademicService
	staff      *service.StaffService
	student    *service.StudentService
	learning   *service.LearningService
	quiz       *service.QuizService
	submission *service.SubmissionService
	evaluation *service.EvaluationService
	progress   *service.ProgressService
	admin      *service.AdminService
}

type controllers struct {
	auth       *controller.AuthController
	academic   *controller.AcademicController
	staff      *controller.StaffController
	student    *controller.StudentController
	learning   *controller.LearningController
	submission *controller.SubmissionController
	admin      *controller.AdminController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，只有日志级别和评分开关会在运行时生效
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		academic:   repository.NewAcademicRepository(db),
		staff:      repository.NewStaffRepository(db),
		student:    repository.NewStudentRepository(db),
		learning:   repository.NewLearningRepository(db),
		quiz:       repository.NewQuizRepository(db),
		submission: repository.NewSubmissionRepository(db),
		evaluation: repository.NewEvaluationRepository(db),
		progress:   repository.NewProgressRepository(db),
		admin:      repository.NewAdminRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.staff, repos.student, cfg)
	s.academic = service.NewAcademicService(repos.academic)
	s.staff = service.NewStaffService(repos.staff)
	s.student = service.NewStudentService(repos.student, repos.academic)
	s.learning = service.NewLearningService(repos.learning, s.storage)
	s.quiz = service.NewQuizService(db, repos.quiz)
	s.submission = service.NewSubmissionService(db, repos.submission)
	s.evaluation = service.NewEvaluationService(db, repos.evaluation, repos.submission)
	s.evaluation.SetRederiveOnReevaluation(cfg.Grading.RederiveOnReevaluation)
	s.progress = service.NewProgressService(repos.progress)
	s.admin = service.NewAdminService(repos.admin)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		academic:   controller.NewAcademicController(s.academic),
		staff:      controller.NewStaffController(s.staff),
		student:    controller.NewStudentController(s.student),
		learning:   controller.NewLearningController(s.learning, s.quiz, s.progress, s.academic),
		submission: controller.NewSubmissionController(s.submission, s.evaluation),
		admin:      controller.NewAdminController(s.admin),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 组装路由和各层依赖，不做任何外部初始化，测试直接使用
func New(cfg *config.Config, db *gorm.DB) *App {
	gin.SetMode(ginMode(cfg.Server.Mode))
	controller.RegisterValidators()
	monitoring.Init()

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	app.services = app.initServices(repos, cfg, db)
	controllers := app.initControllers(app.services, db)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal && cfg.Storage.LocalPath != "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(logger.SetLevel)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.services.evaluation.SetRederiveOnReevaluation(c.Grading.RederiveOnReevaluation)
		logger.Log.Info("Grading config applied",
			zap.Bool("rederive_on_reevaluation", c.Grading.RederiveOnReevaluation))
	})

	return app
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}

// NewApp 初始化日志、数据库、追踪后组装应用
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Database.AutoMigrate || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := New(cfg, db)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lls-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing, continuing without it", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
