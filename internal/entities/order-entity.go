package entities

import (
	"time"

	"pedidos-system/pkg/types"

	"github.com/google/uuid"
)

// Order — заказ материалов. Поля status и urgency хранятся как текст:
// слой чтения обязан переживать неизвестные значения (легаси-данные),
// классификация выполняется в pkg/constants.
type Order struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	EngineerID      uuid.UUID  `json:"engineer_id" db:"engineer_id"`
	Status          string     `json:"status" db:"status"`
	Urgency         string     `json:"urgency" db:"urgency"`
	CostCenter      string     `json:"cost_center" db:"cost_center"`
	Materials       string     `json:"materials" db:"materials"`
	ResponsibleName *string    `json:"responsible_name,omitempty" db:"responsible_name"`
	Deadline        *time.Time `json:"deadline,omitempty" db:"deadline"`

	types.BaseEntity
	types.SoftDelete
}
