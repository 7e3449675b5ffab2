package station

import (
	"maps"
	"slices"
)

// Catalog is the read-only station index shared by all queries.
type Catalog struct {
	stations map[string]StationData // telecode -> station
	order    []string               // telecodes in first-seen order
	byCity   map[string][]StationRef
	cityCode map[string]StationRef
	byName   map[string]StationRef
}

// NewCatalog builds the catalog and its derived indices. A repeated telecode
// keeps its first position and its last value. MissingStations are appended
// when upstream lacks them.
func NewCatalog(stations []StationData) *Catalog {
	c := &Catalog{
		stations: make(map[string]StationData, len(stations)+len(MissingStations)),
		byCity:   map[string][]StationRef{},
		cityCode: map[string]StationRef{},
		byName:   map[string]StationRef{},
	}
	for _, s := range stations {
		c.put(s)
	}
	for _, s := range MissingStations {
		if _, ok := c.stations[s.StationCode]; !ok {
			c.put(s)
		}
	}

	for _, code := range c.order {
		s := c.stations[code]
		c.byCity[s.City] = append(c.byCity[s.City], s.Ref())
		c.byName[s.StationName] = s.Ref()
	}
	for city, refs := range c.byCity {
		for _, ref := range refs {
			if ref.StationName == city {
				c.cityCode[city] = ref
				break
			}
		}
	}
	return c
}

func (c *Catalog) put(s StationData) {
	if s.StationCode == "" {
		return
	}
	if _, ok := c.stations[s.StationCode]; !ok {
		c.order = append(c.order, s.StationCode)
	}
	c.stations[s.StationCode] = s
}

// Len returns the number of stations.
func (c *Catalog) Len() int { return len(c.order) }

// Has reports whether telecode is known.
func (c *Catalog) Has(telecode string) bool {
	_, ok := c.stations[telecode]
	return ok
}

// Station returns the full record for a telecode.
func (c *Catalog) Station(telecode string) (StationData, bool) {
	s, ok := c.stations[telecode]
	return s, ok
}

// CityStations returns every station of a city in catalog order.
func (c *Catalog) CityStations(city string) ([]StationRef, bool) {
	refs, ok := c.byCity[city]
	return slices.Clone(refs), ok
}

// CityStation returns the station named after the city.
func (c *Catalog) CityStation(city string) (StationRef, bool) {
	ref, ok := c.cityCode[city]
	return ref, ok
}

// ByName returns the station with the given display name.
func (c *Catalog) ByName(name string) (StationRef, bool) {
	ref, ok := c.byName[name]
	return ref, ok
}

// All returns every station keyed by telecode.
func (c *Catalog) All() map[string]StationData {
	return maps.Clone(c.stations)
}
