package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/utils"
)

// seedDemoOrders создает одобренного инженера и набор заказов на каждом
// этапе конвейера, чтобы дашборд сразу показывал осмысленные цифры.
func seedDemoOrders(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание демо-инженера и заказов...")

	email := "engenheiro@pedidos.local"
	var engineerID string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&engineerID)
	if errors.Is(err, pgx.ErrNoRows) {
		hashedPassword, hashErr := utils.HashPassword("engenheiro123")
		if hashErr != nil {
			return hashErr
		}
		err = db.QueryRow(ctx,
			`INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id`,
			"Engenheiro Demo", email, hashedPassword, constants.RoleEngineer,
		).Scan(&engineerID)
	}
	if err != nil {
		return fmt.Errorf("ошибка при создании демо-инженера: %w", err)
	}

	var orderCount int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE engineer_id = $1", engineerID).Scan(&orderCount); err != nil {
		return fmt.Errorf("ошибка при подсчете демо-заказов: %w", err)
	}
	if orderCount > 0 {
		log.Println("    - Демо-заказы уже существуют. Пропускаем.")
		return nil
	}

	demo := []struct {
		materials string
		status    string
		urgency   string
	}{
		{"Cimento CP-II 50kg x20", constants.StatusPending, constants.UrgencyHigh},
		{"Vergalhão 10mm x120", constants.StatusApproved, constants.UrgencyNormal},
		{"Tinta acrílica branca 18L x4", constants.StatusInProgress, constants.UrgencyLow},
		{"Tubo PVC 100mm x30", constants.StatusReady, constants.UrgencyNormal},
		{"Areia média m3 x6", constants.StatusDelivered, constants.UrgencyNormal},
	}

	for _, d := range demo {
		_, err := db.Exec(ctx,
			`INSERT INTO orders (engineer_id, status, urgency, cost_center, materials)
             VALUES ($1, $2, $3, $4, $5)`,
			engineerID, d.status, d.urgency, "CC-OBRA-01", d.materials,
		)
		if err != nil {
			return fmt.Errorf("ошибка при вставке демо-заказа: %w", err)
		}
	}

	log.Printf("    - Создано демо-заказов: %d", len(demo))
	return nil
}
