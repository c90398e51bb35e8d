package main

import (
	"Panel_Sync_Service/internal/panel-service/api/handler"
	"Panel_Sync_Service/internal/panel-service/api/routes"
	"Panel_Sync_Service/internal/panel-service/config"
	"Panel_Sync_Service/internal/panel-service/events"
	"Panel_Sync_Service/internal/panel-service/lock"
	"Panel_Sync_Service/internal/panel-service/pterodactyl"
	"Panel_Sync_Service/internal/panel-service/repository"
	"Panel_Sync_Service/internal/panel-service/service"
	"Panel_Sync_Service/internal/panel-service/steam"
	"Panel_Sync_Service/pkg/infra"
	"Panel_Sync_Service/pkg/logger"
	"Panel_Sync_Service/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/panel-service.log")
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "panel-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	//set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	//set up kafka producer
	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ActivityTopic)
	defer kafkaWriter.Close()

	// set up external clients
	panelClient := pterodactyl.NewClient(appConfig.Panel.BaseURI, appConfig.Panel.APIKey, appConfig.Panel.ClientAPIKey, appConfig.Panel.RequestTimeout)
	tokenService := steam.NewTokenService(appConfig.Steam.BaseURI, appConfig.Steam.APIKey, appConfig.Panel.RequestTimeout)

	ownerCtx, ownerCancel := context.WithTimeout(context.Background(), appConfig.Panel.RequestTimeout)
	owner := service.ResolveOwner(ownerCtx, panelClient, appConfig.Panel.OwnerUsername, zapLogger)
	ownerCancel()
	if owner.Resolved {
		zapLogger.Info("resolved panel owner account", zap.Int64("user_id", owner.ID))
	}

	// set up dependencies
	locationRepo := repository.NewLocationRepository(db)
	nodeRepo := repository.NewNodeRepository(db)
	serverRepo := repository.NewServerRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	activityProducer := events.NewActivityProducer(kafkaWriter)
	serverLocker := lock.NewServerLocker(redisClient, appConfig.Lifecycle.LockTTL)

	syncService := service.NewSyncService(panelClient, tokenService, locationRepo, nodeRepo, serverRepo, owner, zapLogger)
	lifecycleService := service.NewLifecycleService(panelClient, tokenService, nodeRepo, serverRepo, activityRepo, activityProducer, owner,
		appConfig.Lifecycle.PowerWaitAttempts, appConfig.Lifecycle.PowerWaitInterval, zapLogger)

	handlerLogger := handler.NewLogger(zapLogger)
	serverHandler := handler.NewServerHandler(handlerLogger, lifecycleService, serverLocker)
	syncHandler := handler.NewSyncHandler(handlerLogger, syncService)

	m := middleware.NewAuthMiddleware()

	// Create cronjob for periodic panel sync
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Sync.CronSpec, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel2()
		zapLogger.Info("scheduled sync run started")
		if e := syncService.SyncAll(ctx2); e != nil {
			zapLogger.Error("scheduled sync run failed", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for panel sync", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddServerRoutes(r, serverHandler, syncHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
