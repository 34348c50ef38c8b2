package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rezaali07/NextLearn-backend/internal/app/server"
	"github.com/rezaali07/NextLearn-backend/internal/config"
	"github.com/rezaali07/NextLearn-backend/internal/delivery/http"
	"github.com/rezaali07/NextLearn-backend/internal/service"
	"github.com/rezaali07/NextLearn-backend/internal/service/auth"
	"github.com/rezaali07/NextLearn-backend/internal/service/category"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/access"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/earnings"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/engagement"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/management"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/purchase"
	"github.com/rezaali07/NextLearn-backend/internal/service/course/query"
	"github.com/rezaali07/NextLearn-backend/internal/service/progress"
	"github.com/rezaali07/NextLearn-backend/internal/storage/elastic"
	"github.com/rezaali07/NextLearn-backend/internal/storage/minio_storage"
	"github.com/rezaali07/NextLearn-backend/internal/storage/postgres"
	"github.com/rezaali07/NextLearn-backend/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	minioClient, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}
	imageRepo, err := minio_storage.NewImageStorage(minioClient, cfg.Minio.ImageBucket, cfg.Minio.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing image bucket", err)
	}

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	searchRepo := elastic.NewCourseSearchRepository(esClient, cfg.ES.Index)
	if err := searchRepo.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error creating search index", err)
	}

	userRepo := postgres.NewUserPostgres(pg.Pool)
	tokenRepo := postgres.NewTokensPostgres(pg.Pool)
	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	categoryRepo := postgres.NewCategoryPostgres(pg.Pool)
	lessonRepo := postgres.NewLessonPostgres(pg.Pool)
	quizRepo := postgres.NewQuizPostgres(pg.Pool)
	engagementRepo := postgres.NewEngagementPostgres(pg.Pool)
	purchaseRepo := postgres.NewPurchasePostgres(pg.Pool)
	progressRepo := postgres.NewProgressPostgres(pg.Pool)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := auth.NewAuthService(log, jwtManager, userRepo, tokenRepo)
	accessService := access.NewService(log, courseRepo, purchaseRepo)

	u := service.Collection{
		Auth:       authService,
		Access:     accessService,
		Engagement: engagement.NewService(log, courseRepo, engagementRepo),
		Purchase:   purchase.NewService(log, courseRepo, purchaseRepo),
		Earnings:   earnings.NewService(log, courseRepo),
		Management: management.NewService(log, courseRepo, categoryRepo, lessonRepo, quizRepo, searchRepo, imageRepo),
		Query:      query.NewService(log, courseRepo, categoryRepo, lessonRepo, quizRepo, searchRepo, imageRepo, accessService),
		Progress:   progress.NewService(log, progressRepo, userRepo),
		Category:   category.NewService(log, categoryRepo),
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
