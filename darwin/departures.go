package darwin

import (
	"time"

	"github.com/openraildata/darwin-ldb/ldbws"
)

// DepartureBoard is the result of a next/fastest departures query: one
// departure per requested destination.
type DepartureBoard struct {
	// The time at which the board was generated.
	GeneratedAt time.Time `json:"generatedAt"`

	// The CRS code of the location that the board is for.
	CRS string `json:"crs"`

	// The display name of the location that the board is for.
	LocationName string `json:"locationName"`

	// One entry per destination in the request filter list, in request
	// order. Empty if there are none.
	Departures []Departure `json:"departures"`
}

// Departure pairs a requested destination with the next or fastest
// service to it.
type Departure struct {
	// The destination CRS code from the request filter list.
	CRS string `json:"crs"`

	// The departing service.
	Service ServiceItem `json:"service"`
}

func newDepartureBoard(board *ldbws.DeparturesBoard) *DepartureBoard {
	b := &DepartureBoard{
		Departures: []Departure{},
	}

	if board.BaseStationBoard != nil {
		b.GeneratedAt = board.GeneratedAt
		b.CRS = crsString(board.Crs)
		b.LocationName = locationNameString(board.LocationName)
	}

	if board.Departures == nil {
		return b
	}

	for _, item := range board.Departures.Destination {
		if item == nil {
			continue
		}

		departure := Departure{
			CRS: crsString(item.Crs),
		}

		if item.Service != nil {
			departure.Service = newServiceItem(item.Service)
		}

		b.Departures = append(b.Departures, departure)
	}

	return b
}
