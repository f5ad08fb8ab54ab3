package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/yourusername/adnet-api/internal/config"
	pgRepo "github.com/yourusername/adnet-api/internal/repository/postgres"
	"github.com/yourusername/adnet-api/internal/service"
	"github.com/yourusername/adnet-api/pkg/database"
)

// Утилита обслуживания базы: запускает те же задачи, что и
// /api/admin/maintenance, но из командной строки (для cron и ручных прогонов).
func main() {
	var (
		runDedup  = flag.Bool("dedup-deployments", false, "удалить дубликаты деплойментов")
		runRetype = flag.Bool("retype-assets", false, "пересчитать типизацию ассетов")
		timeout   = flag.Duration("timeout", 10*time.Minute, "общий тайм-аут задачи")
	)
	flag.Parse()

	if !*runDedup && !*runRetype {
		log.Println("Не выбрана ни одна задача: укажите -dedup-deployments и/или -retype-assets")
		flag.Usage()
		os.Exit(2)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	deploymentRepo := pgRepo.NewDeploymentRepo(db)
	assetRepo := pgRepo.NewAssetRepo(db)
	maintenanceService := service.NewMaintenanceService(deploymentRepo, assetRepo, cfg.Maintenance.BatchSize)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	exitCode := 0

	if *runDedup {
		log.Println("[Maintenance] Запуск дедупликации деплойментов...")
		summary, err := maintenanceService.DedupDeployments(ctx)
		if err != nil {
			log.Printf("[Maintenance] Дедупликация завершилась с ошибкой: %v", err)
			exitCode = 1
		}
		printSummary("dedup_deployments", summary)
	}

	if *runRetype {
		log.Println("[Maintenance] Запуск перетипизации ассетов...")
		summary, err := maintenanceService.RetypeAssets(ctx)
		if err != nil {
			log.Printf("[Maintenance] Перетипизация завершилась с ошибкой: %v", err)
			exitCode = 1
		}
		printSummary("retype_assets", summary)
	}

	os.Exit(exitCode)
}

func printSummary(job string, summary *service.JobSummary) {
	if summary == nil {
		return
	}
	out, err := json.MarshalIndent(map[string]interface{}{"job": job, "summary": summary}, "", "  ")
	if err != nil {
		log.Printf("[Maintenance] Не удалось сериализовать отчет: %v", err)
		return
	}
	os.Stdout.Write(append(out, '\n'))
}
