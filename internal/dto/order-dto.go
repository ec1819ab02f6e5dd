package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderDTO struct {
	Materials       string     `json:"materials" validate:"required"`
	CostCenter      string     `json:"cost_center" validate:"required"`
	Urgency         string     `json:"urgency" validate:"omitempty,order_urgency"`
	ResponsibleName *string    `json:"responsible_name" validate:"omitempty,max=255"`
	Deadline        *time.Time `json:"deadline" validate:"omitempty"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" validate:"required,order_status"`
}

// OrderDTO — заказ в том виде, в котором его потребляет клиент:
// сырые значения плюс вычисленные шаг конвейера, подписи и важность.
type OrderDTO struct {
	ID              uuid.UUID  `json:"id"`
	EngineerID      uuid.UUID  `json:"engineer_id"`
	Status          string     `json:"status"`
	StatusStep      int        `json:"status_step"`
	StatusLabel     string     `json:"status_label"`
	Urgency         string     `json:"urgency"`
	UrgencyLabel    string     `json:"urgency_label"`
	UrgencySeverity string     `json:"urgency_severity"`
	CostCenter      string     `json:"cost_center"`
	Materials       string     `json:"materials"`
	ResponsibleName *string    `json:"responsible_name,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
