package gpsutil

import (
	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// seedAttraction is one row of the static catalog before IDs are assigned.
type seedAttraction struct {
	name  string
	city  string
	state string
	lat   float64
	lng   float64
}

// The static US attraction catalog served by the simulator. Positions are
// fixed for the life of the process; IDs are assigned once at construction.
var attractionSeeds = []seedAttraction{
	{"Disneyland", "Anaheim", "CA", 33.817595, -117.922008},
	{"Jackson Hole", "Jackson Hole", "WY", 43.582767, -110.821999},
	{"Mojave National Preserve", "Kelso", "CA", 35.141689, -115.510399},
	{"Joshua Tree National Park", "Joshua Tree National Park", "CA", 33.881866, -115.90065},
	{"Buffalo National River", "St Joe", "AR", 35.985512, -92.757652},
	{"Hot Springs National Park", "Hot Springs", "AR", 34.52153, -93.042267},
	{"Kartchner Caverns State Park", "Benson", "AZ", 31.837551, -110.347382},
	{"Legend Valley", "Thornville", "OH", 39.937778, -82.40667},
	{"McKinley Tower", "Anchorage", "AK", 61.218887, -149.877502},
	{"Flatiron Building", "New York City", "NY", 40.741112, -73.989723},
	{"Fallingwater", "Mill Run", "PA", 39.906113, -79.468056},
	{"Union Station", "Washington D.C.", "DC", 38.897095, -77.006332},
	{"Roger Dean Stadium", "Jupiter", "FL", 26.890959, -80.116577},
	{"Texas Memorial Stadium", "Austin", "TX", 30.283682, -97.732536},
	{"Bryce Canyon National Park", "Bryce Canyon City", "UT", 37.593048, -112.187332},
	{"Vail Ski Resort", "Vail", "CO", 39.641861, -106.374413},
	{"Cataloochee Ski Area", "Maggie Valley", "NC", 35.562787, -83.098678},
	{"Zion National Park", "Springdale", "UT", 37.297817, -113.02877},
	{"Grand Canyon National Park", "Grand Canyon Village", "AZ", 36.106965, -112.112997},
	{"Yellowstone National Park", "Yellowstone", "WY", 44.427963, -110.588455},
	{"Golden Gate Bridge", "San Francisco", "CA", 37.819929, -122.478255},
	{"Mount Rushmore", "Keystone", "SD", 43.879102, -103.459067},
	{"Niagara Falls State Park", "Niagara Falls", "NY", 43.0962, -79.0377},
	{"Space Needle", "Seattle", "WA", 47.620422, -122.349358},
	{"Gateway Arch", "St Louis", "MO", 38.624691, -90.184776},
	{"Cadillac Ranch", "Amarillo", "TX", 35.187301, -101.987014},
}

func buildCatalog() []entity.Attraction {
	catalog := make([]entity.Attraction, 0, len(attractionSeeds))
	for _, seed := range attractionSeeds {
		catalog = append(catalog, entity.Attraction{
			ID:    uuid.New(),
			Name:  seed.name,
			City:  seed.city,
			State: seed.state,
			Location: entity.Location{
				Latitude:  seed.lat,
				Longitude: seed.lng,
			},
		})
	}

	return catalog
}
