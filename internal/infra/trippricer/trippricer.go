// Package trippricer is the built-in stand-in for the external trip-pricing
// collaborator. The quote computation itself is outside the core; this
// simulator only has to consume the preferences and cumulative reward points
// it is handed.
package trippricer

import (
	"context"
	"math/rand/v2"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var providerNames = []string{
	"Holiday Travels",
	"Enterprize Ventures Limited",
	"Sunny Days",
	"FlyAway Trips",
	"United Partners Vacations",
	"Dream Trips",
	"Live Free",
	"Dancing Waves Cruselines and Partners",
	"AdventureCo",
	"Cure-Your-Enthusiasm",
}

const quotesPerRequest = 5

type pricer struct{}

// New creates the simulated trip pricer.
func New() service.TripPricer {
	return &pricer{}
}

// GetPrice quotes five deals. Each price scales with party size and nights
// and is discounted by the user's cumulative reward points, floored at zero.
func (p *pricer) GetPrice(ctx context.Context, _ string, _ uuid.UUID, adults, children, nights, rewardPoints int) ([]entity.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	if nights <= 0 {
		nights = 1
	}

	providers := make([]entity.Provider, 0, quotesPerRequest)
	for i := 0; i < quotesPerRequest; i++ {
		base := float64(rand.IntN(450)+250) * float64(nights)
		price := base + float64(adults)*220 + float64(children)*110 - float64(rewardPoints)
		if price < 0 {
			price = 0
		}
		providers = append(providers, entity.Provider{
			Name:   providerNames[rand.IntN(len(providerNames))],
			Price:  price,
			TripID: uuid.New(),
		})
	}

	return providers, nil
}
