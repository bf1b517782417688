package geo

import (
	"testing"

	"tourguide/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles_ZeroForSamePoint(t *testing.T) {
	loc := entity.Location{Latitude: 33.817595, Longitude: -117.922008}

	assert.Zero(t, DistanceMiles(loc, loc))
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := entity.Location{Latitude: 33.817595, Longitude: -117.922008}
	b := entity.Location{Latitude: 43.582767, Longitude: -110.821999}

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}

func TestDistanceMiles_KnownDistances(t *testing.T) {
	tests := []struct {
		name  string
		a     entity.Location
		b     entity.Location
		miles float64
	}{
		{
			name:  "one degree of latitude",
			a:     entity.Location{Latitude: 0, Longitude: 0},
			b:     entity.Location{Latitude: 1, Longitude: 0},
			miles: 69.1,
		},
		{
			name:  "anaheim to jackson hole",
			a:     entity.Location{Latitude: 33.817595, Longitude: -117.922008},
			b:     entity.Location{Latitude: 43.582767, Longitude: -110.821999},
			miles: 787,
		},
		{
			name:  "antipodal points",
			a:     entity.Location{Latitude: 0, Longitude: 0},
			b:     entity.Location{Latitude: 0, Longitude: 180},
			miles: 12430,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMiles(tt.a, tt.b)
			// Within one percent; the haversine sphere radius differs
			// slightly from ellipsoidal references.
			assert.InEpsilon(t, tt.miles, got, 0.01)
		})
	}
}

func TestDistanceMiles_MonotonicAlongMeridian(t *testing.T) {
	origin := entity.Location{Latitude: 0, Longitude: 0}

	previous := 0.0
	for lat := 1.0; lat <= 10; lat++ {
		d := DistanceMiles(origin, entity.Location{Latitude: lat, Longitude: 0})
		assert.Greater(t, d, previous)
		previous = d
	}
}
