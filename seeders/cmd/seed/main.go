package main

import (
	"context"
	"flag"
	"log"

	"pedidos-system/pkg/config"
	"pedidos-system/pkg/database/postgresql"
	applogger "pedidos-system/pkg/logger"
	"pedidos-system/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runBootstrap := flag.Bool("bootstrap", false, "Создать первого менеджера")
	runDemo := flag.Bool("demo", false, "Наполнить базу демо-данными")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -bootstrap -demo)")

	flag.Parse()

	if !*runBootstrap && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -bootstrap")
		log.Println("  go run ./seeders/cmd/seed/main.go -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	logger := applogger.NewLogger()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, logger); err != nil {
		log.Fatalf("❌ Ошибка применения миграций: %v", err)
	}

	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN, logger)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к БД: %v", err)
	}
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runBootstrap {
		seeders.SeedBootstrap(dbPool, cfg)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		seeders.SeedDemo(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
