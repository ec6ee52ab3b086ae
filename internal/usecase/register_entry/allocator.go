package register_entry

import (
	"github.com/parkirc/parking-service/internal/domain"
)

// selectSpace выбирает место для транспортного средства из списка кандидатов.
// Политика выбора: наименее недавно занятое место (LRU), чтобы износ
// распределялся по всем местам равномерно:
//   - никогда не занимавшиеся места (LastOccupiedTime == nil) идут первыми
//   - затем от самого старого LastOccupiedTime к самому свежему
//   - при равенстве побеждает меньший номер места, затем меньший ID
//
// Занятые, неактивные и несовместимые по категории места никогда не выбираются.
// Возвращает nil, если подходящих мест нет.
func selectSpace(candidates []*domain.ParkingSpace, vehicleType string) *domain.ParkingSpace {
	var best *domain.ParkingSpace

	for _, space := range candidates {
		if !space.IsFree() || !space.MatchesType(vehicleType) {
			continue
		}

		if best == nil || lessRecentlyUsed(space, best) {
			best = space
		}
	}

	return best
}

// lessRecentlyUsed сравнивает два свободных места по политике LRU
func lessRecentlyUsed(a, b *domain.ParkingSpace) bool {
	switch {
	case a.LastOccupiedTime == nil && b.LastOccupiedTime != nil:
		return true
	case a.LastOccupiedTime != nil && b.LastOccupiedTime == nil:
		return false
	case a.LastOccupiedTime != nil && b.LastOccupiedTime != nil:
		if !a.LastOccupiedTime.Equal(*b.LastOccupiedTime) {
			return a.LastOccupiedTime.Before(*b.LastOccupiedTime)
		}
	}

	// Оба nil или времена равны - детерминированный порядок по номеру места
	if a.SpaceNumber != b.SpaceNumber {
		return a.SpaceNumber < b.SpaceNumber
	}
	return a.ID < b.ID
}
