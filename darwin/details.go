package darwin

import (
	"time"

	"github.com/openraildata/darwin-ldb/ldbws"
)

// ServiceDetails are the full details of a single service, obtained with
// a service ID from a station board.
type ServiceDetails struct {
	// The time at which the details were generated.
	GeneratedAt time.Time `json:"generatedAt"`

	// The board location the details were accessed from.
	CRS          string `json:"crs"`
	LocationName string `json:"locationName"`

	// The Train Operating Company running the service.
	OperatorName string `json:"operator,omitempty"`
	OperatorCode string `json:"operatorCode,omitempty"`

	// Display-string times at the board location. ATA/ATD are actual
	// times and are only present once the corresponding estimate is not.
	STA string `json:"sta,omitempty"`
	ETA string `json:"eta,omitempty"`
	ATA string `json:"ata,omitempty"`
	STD string `json:"std,omitempty"`
	ETD string `json:"etd,omitempty"`
	ATD string `json:"atd,omitempty"`

	// The platform number, if known and available.
	Platform string `json:"platform,omitempty"`

	// True when the service is cancelled at this location.
	IsCancelled bool `json:"isCancelled,omitempty"`

	// Vendor-supplied reasons. CancelReason is set when the service is
	// cancelled, DelayReason when it is running late.
	CancelReason string `json:"cancelReason,omitempty"`
	DelayReason  string `json:"delayReason,omitempty"`

	// A message describing a missed movement report, when one is overdue.
	OverdueMessage string `json:"overdueMessage,omitempty"`

	// The train length (number of units), zero when unknown.
	Length uint16 `json:"length,omitempty"`

	// Calling points before this location, one list per origin of the
	// service. Empty if the board location is the origin.
	PreviousCallingPointLists []CallingPointList `json:"previousCallingPointLists"`

	// Calling points after this location, one list per destination of
	// the service. Empty if the board location is the destination.
	SubsequentCallingPointLists []CallingPointList `json:"subsequentCallingPointLists"`
}

// DisruptionReason describes why the service is disrupted: the
// cancellation reason when the service is cancelled, otherwise any
// late-running reason. Empty when the service is running normally.
func (d *ServiceDetails) DisruptionReason() string {
	if d.IsCancelled && d.CancelReason != "" {
		return d.CancelReason
	}
	return d.DelayReason
}

// PreviousCallingPoints flattens the previous calling point lists into a
// single journey-ordered slice.
func (d *ServiceDetails) PreviousCallingPoints() []CallingPoint {
	return flattenCallingPoints(d.PreviousCallingPointLists)
}

// SubsequentCallingPoints flattens the subsequent calling point lists
// into a single journey-ordered slice.
func (d *ServiceDetails) SubsequentCallingPoints() []CallingPoint {
	return flattenCallingPoints(d.SubsequentCallingPointLists)
}

// CallingPointList is one leg of calling points, relative to one origin
// or destination of the service. Services that join or divide have more
// than one list.
type CallingPointList struct {
	CallingPoints []CallingPoint `json:"callingPoints"`

	// The service type (train, bus, ferry) of this leg.
	ServiceType string `json:"serviceType,omitempty"`

	// True when the passenger must change service to follow this leg.
	ServiceChangeRequired bool `json:"serviceChangeRequired,omitempty"`

	// True when this leg can no longer be reached because the
	// association has been cancelled.
	AssociationIsCancelled bool `json:"assocIsCancelled,omitempty"`
}

// CallingPoint is one intermediate stop on a service's journey.
type CallingPoint struct {
	// The display name of the location.
	LocationName string `json:"locationName"`

	// The CRS code of the location, "???" when unknown.
	CRS string `json:"crs"`

	// Scheduled, estimated and actual display-string times at this
	// location. The time is an arrival or a departure depending on
	// whether the point is in a previous or a subsequent list. At most
	// one of ET and AT is present.
	ST string `json:"st,omitempty"`
	ET string `json:"et,omitempty"`
	AT string `json:"at,omitempty"`

	// True when the service is cancelled at this location.
	IsCancelled bool `json:"isCancelled,omitempty"`

	// The train length (number of units), zero when unknown.
	Length uint16 `json:"length,omitempty"`
}

func newServiceDetails(details *ldbws.ServiceDetails) *ServiceDetails {
	return &ServiceDetails{
		GeneratedAt:                 details.GeneratedAt,
		CRS:                         crsString(details.Crs),
		LocationName:                locationNameString(details.LocationName),
		OperatorName:                string(derefTOCName(details.Operator)),
		OperatorCode:                string(derefTOCCode(details.OperatorCode)),
		STA:                         timeString(details.Sta),
		ETA:                         timeString(details.Eta),
		ATA:                         timeString(details.Ata),
		STD:                         timeString(details.Std),
		ETD:                         timeString(details.Etd),
		ATD:                         timeString(details.Atd),
		Platform:                    platformString(details.Platform),
		IsCancelled:                 details.IsCancelled,
		CancelReason:                details.CancelReason,
		DelayReason:                 details.DelayReason,
		OverdueMessage:              details.OverdueMessage,
		Length:                      trainLength(details.Length),
		PreviousCallingPointLists:   newCallingPointLists(details.PreviousCallingPoints),
		SubsequentCallingPointLists: newCallingPointLists(details.SubsequentCallingPoints),
	}
}

func newCallingPointLists(lists *ldbws.ArrayOfArrayOfCallingPoints) []CallingPointList {
	if lists == nil {
		return []CallingPointList{}
	}

	result := make([]CallingPointList, 0, len(lists.CallingPointList))
	for _, list := range lists.CallingPointList {
		if list == nil {
			continue
		}

		points := make([]CallingPoint, 0, len(list.CallingPoint))
		for _, point := range list.CallingPoint {
			if point == nil {
				continue
			}
			points = append(points, CallingPoint{
				LocationName: locationNameString(point.LocationName),
				CRS:          crsString(point.Crs),
				ST:           timeString(point.St),
				ET:           timeString(point.Et),
				AT:           timeString(point.At),
				IsCancelled:  point.IsCancelled,
				Length:       trainLength(point.Length),
			})
		}

		entry := CallingPointList{
			CallingPoints:          points,
			ServiceChangeRequired:  list.ServiceChangeRequired,
			AssociationIsCancelled: list.AssocIsCancelled,
		}

		if list.ServiceType != nil {
			entry.ServiceType = string(*list.ServiceType)
		}

		result = append(result, entry)
	}

	return result
}

func flattenCallingPoints(lists []CallingPointList) []CallingPoint {
	points := []CallingPoint{}
	for _, list := range lists {
		points = append(points, list.CallingPoints...)
	}
	return points
}
