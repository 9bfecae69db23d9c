package services

import (
	"fmt"
	"math"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"
)

// BuildTransportOptions derives one option per mode profile whose range
// covers the origin-destination distance. Price, duration, carbon and
// arrival are computed deterministically from the great-circle distance;
// no live pricing or schedule data is consulted.
//
// When no profile is applicable the result is never empty: a single
// long-haul flight is synthesized so downstream components always see
// at least one option.
func BuildTransportOptions(origin, destination domain.Place, profiles []ports.ModeProfile) []domain.TransportOption {
	distanceKm := origin.Coords.DistanceKm(destination.Coords)

	options := make([]domain.TransportOption, 0, len(profiles))
	for _, p := range profiles {
		if p.MaxRangeKm > 0 && distanceKm > p.MaxRangeKm {
			continue
		}
		if p.SpeedKmh <= 0 {
			continue
		}
		options = append(options, optionFromProfile(p, distanceKm))
	}

	if len(options) == 0 {
		options = append(options, synthesizeLongHaul(distanceKm))
	}

	return options
}

func optionFromProfile(p ports.ModeProfile, distanceKm float64) domain.TransportOption {
	duration := round1(distanceKm/p.SpeedKmh + p.OverheadHours)
	departMin := ParseClock(p.Departure)

	return domain.TransportOption{
		Mode:          p.Mode,
		PriceUSD:      math.Round(p.BaseUSD + p.USDPerKm*distanceKm),
		DurationHours: duration,
		CarbonKg:      round1(p.CarbonKgPerKm * distanceKm),
		Departure:     FormatClock(departMin),
		Arrival:       FormatClock(departMin + int(math.Round(duration*60))),
		Summary:       fmt.Sprintf("%s (%.0f km)", p.Summary, distanceKm),
	}
}

// Fallback for origin-destination pairs out of range for every profile.
func synthesizeLongHaul(distanceKm float64) domain.TransportOption {
	return optionFromProfile(ports.ModeProfile{
		Mode:          domain.ModeFlight,
		SpeedKmh:      750,
		BaseUSD:       120,
		USDPerKm:      0.11,
		CarbonKgPerKm: 0.133,
		OverheadHours: 3,
		Departure:     "08:30",
		Summary:       "Long-haul flight, one checked bag included",
	}, distanceKm)
}

// ClassifyBest returns the strict-minimum options by price and by
// duration. Ties break by earliest departure, then by mode rank, so the
// classification is deterministic for any option order.
func ClassifyBest(options []domain.TransportOption) (bestByCost, bestByTime domain.TransportOption) {
	bestByCost = options[0]
	bestByTime = options[0]

	for _, o := range options[1:] {
		if lessBy(o, bestByCost, o.PriceUSD, bestByCost.PriceUSD) {
			bestByCost = o
		}
		if lessBy(o, bestByTime, o.DurationHours, bestByTime.DurationHours) {
			bestByTime = o
		}
	}
	return bestByCost, bestByTime
}

func lessBy(a, b domain.TransportOption, ka, kb float64) bool {
	if ka != kb {
		return ka < kb
	}
	da, db := ParseClock(a.Departure), ParseClock(b.Departure)
	if da != db {
		return da < db
	}
	return a.Mode.Rank() < b.Mode.Rank()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
