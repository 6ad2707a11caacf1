package darwin

import (
	"fmt"
	"strings"
	"time"

	"github.com/openraildata/darwin-ldb/ldbws"
)

// StationBoard is a live arrival/departure board for a single station.
// It is built from one service response and is not updated afterwards.
type StationBoard struct {
	// The time at which the board was generated.
	GeneratedAt time.Time `json:"generatedAt"`

	// The CRS code of the location that the board is for.
	CRS string `json:"crs"`

	// The display name of the location that the board is for.
	LocationName string `json:"locationName"`

	// Train services appearing on the board. Empty if there are none.
	TrainServices []ServiceItem `json:"trainServices"`

	// Scheduled or replacement rail bus services. Empty if there are none.
	BusServices []ServiceItem `json:"busServices"`

	// Ferry services appearing on the board. Empty if there are none.
	FerryServices []ServiceItem `json:"ferryServices"`

	// Disruption messages that apply to the board location. The text may
	// contain XML-encoded HTML fragments such as hyperlinks.
	NRCCMessages []string `json:"nrccMessages"`
}

func (b *StationBoard) String() string {
	return fmt.Sprintf("%s - %s", b.CRS, b.LocationName)
}

// ServiceItem is a single service row from a station board.
type ServiceItem struct {
	// The identifier of this service, relative to the board it appeared
	// on. Can be passed to Session.ServiceDetails.
	ServiceID string `json:"serviceID"`

	// Scheduled and estimated arrival times. These are display strings
	// ("11:57", "On time", "Cancelled"), not parseable times, and are
	// empty at locations where the service does not arrive or depart.
	STA string `json:"sta,omitempty"`
	ETA string `json:"eta,omitempty"`

	// Scheduled and estimated departure times, as above.
	STD string `json:"std,omitempty"`
	ETD string `json:"etd,omitempty"`

	// The platform number, if known and available.
	Platform string `json:"platform,omitempty"`

	// The Train Operating Company running the service.
	OperatorName string `json:"operator,omitempty"`
	OperatorCode string `json:"operatorCode,omitempty"`

	// True when the service runs a circular route and will call at this
	// location again later in its journey.
	IsCircularRoute bool `json:"isCircularRoute,omitempty"`

	// True when the service is cancelled at this location.
	IsCancelled bool `json:"isCancelled,omitempty"`

	// The train length (number of units), zero when unknown.
	Length uint16 `json:"length,omitempty"`

	// Origins and destinations of the service. A service can have more
	// than one of either when trains join or divide mid journey.
	Origins      []ServiceLocation `json:"origins"`
	Destinations []ServiceLocation `json:"destinations"`
}

func (s *ServiceItem) String() string {
	return fmt.Sprintf("Service %s", s.ServiceID)
}

// OriginText describes the origin(s) of the service in a single human
// readable string.
func (s *ServiceItem) OriginText() string {
	return locationText(s.Origins)
}

// DestinationText describes the destination(s) of the service in a single
// human readable string.
func (s *ServiceItem) DestinationText() string {
	return locationText(s.Destinations)
}

// ServiceLocation is one origin or destination of a service.
type ServiceLocation struct {
	// The display name of the location.
	LocationName string `json:"locationName"`

	// The CRS code of the location. "???" means the service reported a
	// location with no known CRS code.
	CRS string `json:"crs"`

	// Optional routing text displayed after the location name, e.g.
	// "via Manchester Piccadilly & Wilmslow". Only present on
	// destinations.
	Via string `json:"via,omitempty"`

	// The service type (Bus/Ferry/Train) the service will change to on
	// the way to this location, when it differs from the current type.
	FutureChangeTo string `json:"futureChangeTo,omitempty"`
}

func (l ServiceLocation) String() string {
	if l.Via != "" {
		return fmt.Sprintf("%s %s", l.LocationName, l.Via)
	}
	return l.LocationName
}

func locationText(locations []ServiceLocation) string {
	parts := make([]string, 0, len(locations))
	for _, location := range locations {
		parts = append(parts, location.String())
	}
	return strings.Join(parts, ", ")
}

func newStationBoard(board *ldbws.StationBoard) *StationBoard {
	b := &StationBoard{
		TrainServices: newServiceItems(board.TrainServices),
		BusServices:   newServiceItems(board.BusServices),
		FerryServices: newServiceItems(board.FerryServices),
		NRCCMessages:  []string{},
	}

	if board.BaseStationBoard != nil {
		b.GeneratedAt = board.GeneratedAt
		b.CRS = crsString(board.Crs)
		b.LocationName = locationNameString(board.LocationName)
		b.NRCCMessages = newNRCCMessages(board.NrccMessages)
	}

	return b
}

func newServiceItems(services *ldbws.ArrayOfServiceItems) []ServiceItem {
	if services == nil {
		return []ServiceItem{}
	}

	items := make([]ServiceItem, 0, len(services.Service))
	for _, service := range services.Service {
		if service == nil {
			continue
		}
		items = append(items, newServiceItem(service))
	}

	return items
}

func newServiceItem(service *ldbws.ServiceItem) ServiceItem {
	item := ServiceItem{
		Origins:      newServiceLocations(service.Origin),
		Destinations: newServiceLocations(service.Destination),
	}

	if service.BaseServiceItem != nil {
		item.ServiceID = string(deref(service.ServiceID))
		item.STA = timeString(service.Sta)
		item.ETA = timeString(service.Eta)
		item.STD = timeString(service.Std)
		item.ETD = timeString(service.Etd)
		item.Platform = platformString(service.Platform)
		item.OperatorName = string(derefTOCName(service.Operator))
		item.OperatorCode = string(derefTOCCode(service.OperatorCode))
		item.IsCircularRoute = service.IsCircularRoute
		item.IsCancelled = service.IsCancelled
		item.Length = trainLength(service.Length)
	}

	return item
}

func newServiceLocations(locations *ldbws.ArrayOfServiceLocations) []ServiceLocation {
	if locations == nil {
		return []ServiceLocation{}
	}

	result := make([]ServiceLocation, 0, len(locations.Location))
	for _, location := range locations.Location {
		if location == nil {
			continue
		}
		result = append(result, ServiceLocation{
			LocationName:   locationNameString(location.LocationName),
			CRS:            crsString(location.Crs),
			Via:            location.Via,
			FutureChangeTo: location.FutureChangeTo,
		})
	}

	return result
}

func newNRCCMessages(messages *ldbws.ArrayOfNRCCMessages) []string {
	if messages == nil {
		return []string{}
	}

	result := make([]string, 0, len(messages.Message))
	for _, message := range messages.Message {
		if message == nil {
			continue
		}
		result = append(result, message.Value)
	}

	return result
}

func crsString(v *ldbws.CRSType) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func locationNameString(v *ldbws.LocationNameType) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func timeString(v *ldbws.TimeType) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func platformString(v *ldbws.PlatformType) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func deref(v *ldbws.ServiceIDType) ldbws.ServiceIDType {
	if v == nil {
		return ""
	}
	return *v
}

func derefTOCName(v *ldbws.TOCName) ldbws.TOCName {
	if v == nil {
		return ""
	}
	return *v
}

func derefTOCCode(v *ldbws.TOCCode) ldbws.TOCCode {
	if v == nil {
		return ""
	}
	return *v
}

func trainLength(v *ldbws.TrainLength) uint16 {
	if v == nil {
		return 0
	}
	return uint16(*v)
}
