package constants

// --- СТАТУСЫ ЗАКАЗОВ (совпадает со значениями в БД) ---
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusInProgress = "in_progress"
	StatusReady      = "ready"
	StatusDelivered  = "delivered"
	StatusRejected   = "rejected"
)

// IsKnownStatus сообщает, входит ли значение в словарь статусов конвейера.
func IsKnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusInProgress, StatusReady, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

// StatusStepCount — количество сегментов индикатора прогресса.
const StatusStepCount = 5

// Подписи сегментов индикатора, в порядке шагов 1..5.
var StatusStepLabels = [StatusStepCount]string{
	"Pendente",
	"Em Cotação",
	"Comprado",
	"Saiu p/ Entrega",
	"Entregue",
}

// StatusStep возвращает порядковый шаг конвейера для статуса, от 1 до 5.
// Сравнение строгое, без обрезки пробелов: любое неизвестное значение
// (в том числе rejected и устаревшие статусы) деградирует к первому шагу.
func StatusStep(status string) int {
	switch status {
	case StatusPending:
		return 1
	case StatusApproved:
		return 2
	case StatusInProgress:
		return 3
	case StatusReady:
		return 4
	case StatusDelivered:
		return 5
	default:
		return 1
	}
}

// StatusLabel возвращает подпись бейджа статуса для клиента.
// У rejected есть подпись, но нет собственного шага в StatusStep —
// отклонённый заказ показывается на первом сегменте.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pendente"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Rejeitado"
	default:
		return "Pendente"
	}
}

// UrgencyLabel возвращает подпись срочности; неизвестные значения
// трактуются как normal.
func UrgencyLabel(urgency string) string {
	switch urgency {
	case UrgencyLow:
		return "Baixa"
	case UrgencyNormal:
		return "Média"
	case UrgencyHigh:
		return "Alta"
	default:
		return "Média"
	}
}

// Уровни важности бейджа срочности.
const (
	SeverityCritical = "critical"
	SeverityNeutral  = "neutral"
	SeverityMuted    = "muted"
)

func UrgencySeverity(urgency string) string {
	switch urgency {
	case UrgencyHigh:
		return SeverityCritical
	case UrgencyLow:
		return SeverityMuted
	default:
		return SeverityNeutral
	}
}
