package domain

import "time"

// PointsHistory запись журнала баллов
// Difference всегда равна NewPoints - OldPoints, записи только добавляются
type PointsHistory struct {
	ID         int64
	CustomerID int64
	OldPoints  int
	NewPoints  int
	Difference int
	Reason     string
	ChangedBy  Actor
	CreatedAt  time.Time
}

// IsConsistent проверяет инвариант разницы
func (p *PointsHistory) IsConsistent() bool {
	return p.Difference == p.NewPoints-p.OldPoints
}
