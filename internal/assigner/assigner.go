// Package assigner подбирает стол под размер группы.
// Клиент не выбирает стол сам: подбор детерминированный, first-fit.
package assigner

import (
	"errors"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// ErrNoResourceAvailable возвращается, когда ни один стол не вмещает группу.
// Это пользовательская валидационная ошибка ("нет свободного стола"),
// она блокирует отправку бронирования, но не является фатальной.
var ErrNoResourceAvailable = errors.New("assigner: no resource available for party size")

// Eligible returns the active resources that can seat the party, preserving
// upstream order. The upstream list order is a contract: FirstFit depends
// on it.
func Eligible(resources []domain.Resource, partySize int) []domain.Resource {
	eligible := make([]domain.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Active && r.CanSeat(partySize) {
			eligible = append(eligible, r)
		}
	}
	return eligible
}

// FirstFit picks the first active resource with seats >= partySize, in the
// order the upstream list came in. First-fit, not best-fit: the result is
// never the smallest sufficient table unless it happens to come first.
func FirstFit(resources []domain.Resource, partySize int) (*domain.Resource, error) {
	for i := range resources {
		if resources[i].Active && resources[i].CanSeat(partySize) {
			r := resources[i]
			return &r, nil
		}
	}
	return nil, ErrNoResourceAvailable
}
