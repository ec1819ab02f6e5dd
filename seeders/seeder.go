package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"pedidos-system/pkg/config"
)

// SeedBootstrap создает первого менеджера. Без него некому одобрять
// новые учетные записи, и система остается пустой навсегда.
func SeedBootstrap(db *pgxpool.Pool, cfg *config.Config) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания первого менеджера...")

	if err := seedManager(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания менеджера: %v", err)
	}

	log.Println("✅ Создание первого менеджера завершено!")
}

// SeedDemo наполняет базу демонстрационными данными для локальной разработки.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данными...")

	if err := seedDemoOrders(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения демо-заказами: %v", err)
	}

	log.Println("✅ Наполнение демо-данными завершено!")
}
