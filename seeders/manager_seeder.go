package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pedidos-system/pkg/constants"
	"pedidos-system/pkg/utils"
)

func seedManager(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователя 'Gestor'...")

	email := os.Getenv("SEED_MANAGER_EMAIL")
	if email == "" {
		email = "gestor@pedidos.local"
	}
	password := os.Getenv("SEED_MANAGER_PASSWORD")
	if password == "" {
		password = "gestor123"
	}

	var existingID string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		log.Println("    - Менеджер уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password, role)
              VALUES ($1, $2, $3, $4)`
	if _, err := db.Exec(ctx, query, "Gestor", email, hashedPassword, constants.RoleManager); err != nil {
		return fmt.Errorf("ошибка при создании менеджера: %w", err)
	}

	log.Printf("    - Менеджер создан: %s", email)
	return nil
}
