package domain

import (
	"fmt"
	"time"
)

// Refund размер возврата баллов при отмене
type Refund struct {
	Points int
	Reason string
	Late   bool
}

// RefundFor вычисляет возврат при отмене записи
// Администратор всегда возвращает полную сумму, клиент получает половину при отмене менее чем за 2 часа
func RefundFor(apt *Appointment, actor Actor, now time.Time) Refund {
	if actor == ActorAdmin {
		return Refund{
			Points: FullRefund,
			Reason: fmt.Sprintf("Admin cancellation: %s", apt.ServiceName),
		}
	}

	startsAt, err := apt.StartsAt()
	if err == nil && startsAt.Sub(WallClockIn(now, startsAt.Location())) < LateCancelWindow {
		return Refund{
			Points: LateCancelRefund,
			Reason: fmt.Sprintf("Late cancellation penalty: %s", apt.ServiceName),
			Late:   true,
		}
	}

	return Refund{
		Points: FullRefund,
		Reason: fmt.Sprintf("Cancellation refund: %s", apt.ServiceName),
	}
}
