package dto

// OrderStatsDTO — сводка по снимку заказов для карточек дашборда.
// InProgress считает заказы в сыром статусе approved: карточка на клиенте
// подписана "Andamento", статусы in_progress/ready/rejected в сводку
// не входят.
type OrderStatsDTO struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Delivered  int `json:"delivered"`
}
