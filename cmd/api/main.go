package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/adnet-api/internal/config"
	"github.com/yourusername/adnet-api/internal/handler"
	"github.com/yourusername/adnet-api/internal/middleware"
	pgRepo "github.com/yourusername/adnet-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/adnet-api/internal/repository/redis"
	"github.com/yourusername/adnet-api/internal/service"
	"github.com/yourusername/adnet-api/pkg/auth"
	"github.com/yourusername/adnet-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	gameRepo := pgRepo.NewGameRepo(db)
	gameAdRepo := pgRepo.NewGameAdRepo(db)
	playlistRepo := pgRepo.NewPlaylistRepo(db)
	scheduleRepo := pgRepo.NewScheduleRepo(db)
	deploymentRepo := pgRepo.NewDeploymentRepo(db)
	assetRepo := pgRepo.NewAssetRepo(db)
	containerRepo := pgRepo.NewContainerRepo(db)
	engagementRepo := pgRepo.NewEngagementRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Сервис токенов игр
	tokenService, err := auth.NewGameTokenService(
		cfg.Auth.GameTokenSecret,
		time.Duration(cfg.Auth.TokenExpiryHrs)*time.Hour,
	)
	if err != nil {
		log.Printf("Failed to initialize GameTokenService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	availabilityService := service.NewAvailabilityService(
		gameAdRepo, scheduleRepo, deploymentRepo, cacheRepo,
		time.Duration(cfg.Cache.AvailabilityTTLSec)*time.Second,
	)
	gameService := service.NewGameService(gameRepo, containerRepo, tokenService)
	gameAdService := service.NewGameAdService(gameAdRepo, gameRepo, assetRepo, availabilityService)
	scheduleService := service.NewScheduleService(
		scheduleRepo, deploymentRepo, playlistRepo, gameAdRepo, gameRepo, availabilityService,
	)
	containerService := service.NewContainerService(containerRepo, gameAdRepo, assetRepo, engagementRepo)
	maintenanceService := service.NewMaintenanceService(deploymentRepo, assetRepo, cfg.Maintenance.BatchSize)

	// Инициализируем обработчики
	gameHandler := handler.NewGameHandler(gameService, availabilityService, containerService)
	gameAdHandler := handler.NewGameAdHandler(gameAdService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	containerHandler := handler.NewContainerHandler(containerService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)

	// Инициализируем middleware
	gameAuth := middleware.NewGameAuthMiddleware(tokenService, gameRepo)
	rateLimiter := middleware.NewRateLimiter(redisClient)
	rateLimitCfg := middleware.DefaultGameRateLimitConfig()
	if cfg.RateLimit.MaxRequests > 0 {
		rateLimitCfg.MaxRequests = cfg.RateLimit.MaxRequests
	}
	if cfg.RateLimit.WindowSec > 0 {
		rateLimitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
	}

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Регистрация игр (выдача учетных данных)
		api.POST("/games", gameHandler.RegisterGame)

		// Рекламные кампании
		gameAds := api.Group("/game-ads")
		{
			gameAds.POST("", gameAdHandler.CreateGameAd)
			gameAds.GET("", gameAdHandler.ListGameAds)

			adWithID := gameAds.Group("/:id")
			adWithID.Use(middleware.ExtractUintParam("id", "adID"))
			{
				adWithID.GET("", gameAdHandler.GetGameAd)
				adWithID.POST("/link-games", gameAdHandler.LinkGames)
				adWithID.POST("/assets", gameAdHandler.AddAsset)
				adWithID.GET("/assets", gameAdHandler.ListAssets)
			}
		}

		// Расписания и деплои
		schedules := api.Group("/schedules")
		{
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.POST("", scheduleHandler.CreateSchedule)

			scheduleWithID := schedules.Group("/:id")
			scheduleWithID.Use(middleware.ExtractUintParam("id", "scheduleID"))
			{
				scheduleWithID.PUT("/status", scheduleHandler.UpdateScheduleStatus)
				scheduleWithID.GET("/deployments", scheduleHandler.ListDeployments)
				scheduleWithID.POST("/deployments", scheduleHandler.CreateDeployment)
				scheduleWithID.PUT("/deployments", scheduleHandler.UpdateDeployment)
			}
		}

		// Маршруты игровых серверов: требуют учетных данных игры
		games := api.Group("/games/:gameId")
		games.Use(
			middleware.ExtractUintParam("gameId", "gameID"),
			gameAuth.RequireGame(),
			rateLimiter.LimitByGame(rateLimitCfg),
			gameAuth.RequireGameOwner("gameID"),
		)
		{
			games.POST("/token", gameHandler.IssueToken)
			games.GET("/ads/available", gameHandler.AvailableAds)
			games.GET("/containers", gameHandler.ListContainers)
			games.POST("/containers", gameHandler.CreateContainer)
		}

		// Контейнеры
		containers := api.Group("/containers/:id")
		containers.Use(middleware.ExtractUintParam("id", "containerID"))
		{
			// Назначение рекламы — административная операция
			containers.PUT("/ad", containerHandler.AssignAd)

			// Остальные операции выполняет игровой сервер
			gameContainers := containers.Group("")
			gameContainers.Use(gameAuth.RequireGame(), rateLimiter.LimitByGame(rateLimitCfg))
			{
				gameContainers.GET("/ad", containerHandler.GetAd)
				gameContainers.PUT("/position", containerHandler.UpdatePosition)
				gameContainers.POST("/engagement", containerHandler.RecordEngagement)
			}
		}

		// Обслуживающие задачи
		admin := api.Group("/admin/maintenance")
		{
			admin.POST("/dedup-deployments", maintenanceHandler.DedupDeployments)
			admin.POST("/retype-assets", maintenanceHandler.RetypeAssets)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
