package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-registry-api/api/swagger"
	"github.com/noah-isme/school-registry-api/internal/handler"
	internalmiddleware "github.com/noah-isme/school-registry-api/internal/middleware"
	"github.com/noah-isme/school-registry-api/internal/repository"
	"github.com/noah-isme/school-registry-api/internal/service"
	"github.com/noah-isme/school-registry-api/internal/validation"
	"github.com/noah-isme/school-registry-api/pkg/cache"
	"github.com/noah-isme/school-registry-api/pkg/config"
	"github.com/noah-isme/school-registry-api/pkg/database"
	"github.com/noah-isme/school-registry-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-registry-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-registry-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		logr.Info("schema migrated")
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		cacheSvc = service.NewCacheService(repository.NewCacheRepository(client, logr), metrics, cfg.Cache.TTL, logr, true)
	}

	validator := validation.New()

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	classRepo := repository.NewClassRepository(db)
	classStudentRepo := repository.NewClassStudentRepository(db)
	classTeacherRepo := repository.NewClassTeacherRepository(db)
	userRepo := repository.NewUserRepository(db)
	if metrics != nil {
		studentRepo.WithObserver(metrics)
		teacherRepo.WithObserver(metrics)
		lessonRepo.WithObserver(metrics)
		classRepo.WithObserver(metrics)
		classStudentRepo.WithObserver(metrics)
		classTeacherRepo.WithObserver(metrics)
		userRepo.WithObserver(metrics)
	}

	studentSvc := service.NewStudentService(studentRepo, validator, cacheSvc, logr)
	if metrics != nil {
		studentSvc.WithRejectionRecorder(metrics)
	}
	authSvc := service.NewAuthService(userRepo, validator, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            "school-registry-api",
	})

	routes := handler.Routes{
		Students:      handler.NewStudentHandler(studentSvc, service.NewRosterService(studentSvc, logr), cfg.Import.MaxFileSizeBytes),
		Teachers:      handler.NewTeacherHandler(service.NewTeacherService(teacherRepo, validator, logr)),
		Lessons:       handler.NewLessonHandler(service.NewLessonService(lessonRepo, validator, logr)),
		Classes:       handler.NewClassHandler(service.NewClassService(classRepo, validator, cacheSvc, logr)),
		ClassStudents: handler.NewClassStudentHandler(service.NewClassStudentService(classStudentRepo, validator, cacheSvc, logr)),
		ClassTeachers: handler.NewClassTeacherHandler(service.NewClassTeacherService(classTeacherRepo, validator, logr)),
		Users:         handler.NewUserHandler(service.NewUserService(userRepo, validator, logr)),
		Auth:          handler.NewAuthHandler(authSvc),
		Metrics:       handler.NewMetricsHandler(metricsSource(metrics), db),
		Tokens:        authSvc,
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(internalmiddleware.Metrics(metrics))
	}

	routes.Register(r, cfg.APIPrefix)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// metricsSource keeps a nil *MetricsService from becoming a non-nil interface.
func metricsSource(m *service.MetricsService) handler.MetricsSource {
	if m == nil {
		return nil
	}
	return m
}
