package darwin

import (
	"testing"

	"github.com/openraildata/darwin-ldb/ldbws"
)

func callingPointList(serviceType string, names ...string) *ldbws.ArrayOfCallingPoints {
	list := &ldbws.ArrayOfCallingPoints{
		ServiceType: createServiceType(serviceType),
	}

	for _, name := range names {
		list.CallingPoint = append(list.CallingPoint, &ldbws.CallingPoint{
			LocationName: createLocationNameType(name),
			Crs:          createCRSType("XXX"),
			St:           createTimeType("12:00"),
			Et:           createTimeType("On time"),
		})
	}

	return list
}

func stockportDetails() *ldbws.ServiceDetails {
	return &ldbws.ServiceDetails{
		GeneratedAt:  generatedAt,
		LocationName: createLocationNameType("Manchester Piccadilly"),
		Crs:          createCRSType("MAN"),
		Operator:     createTOCName("East Midlands Railway"),
		OperatorCode: createTOCCode("EM"),
		Platform:     createPlatformType("13"),
		Sta:          createTimeType("15:41"),
		Eta:          createTimeType("On time"),
		Std:          createTimeType("15:43"),
		Etd:          createTimeType("On time"),
		Length:       createTrainLength(4),
		PreviousCallingPoints: &ldbws.ArrayOfArrayOfCallingPoints{
			CallingPointList: []*ldbws.ArrayOfCallingPoints{
				callingPointList("train", "Sheffield", "Dore & Totley", "Chinley", "New Mills Central", "Marple"),
			},
		},
		SubsequentCallingPoints: &ldbws.ArrayOfArrayOfCallingPoints{
			CallingPointList: []*ldbws.ArrayOfCallingPoints{
				callingPointList("train", "Stockport", "Wilmslow", "Crewe"),
				callingPointList("train", "Stockport", "Macclesfield"),
			},
		},
	}
}

func TestSession_ServiceDetails(t *testing.T) {
	t.Run("maps service details onto friendly types", func(t *testing.T) {
		mock := &mockLDBService{details: stockportDetails()}
		session := testSession(t, mock)

		details, err := session.ServiceDetails("u0bRc9iGz6QPJPk0ipljgg==")
		if err != nil {
			t.Fatal(err)
		}

		if mock.serviceDetailsRequest == nil {
			t.Fatal("expected a GetServiceDetails request")
		}

		if *mock.serviceDetailsRequest.ServiceID != "u0bRc9iGz6QPJPk0ipljgg==" {
			t.Errorf("got `%s` for requested service ID", *mock.serviceDetailsRequest.ServiceID)
		}

		if details.LocationName != "Manchester Piccadilly" || details.CRS != "MAN" {
			t.Errorf("got %s/%s for board location", details.LocationName, details.CRS)
		}

		if details.OperatorName != "East Midlands Railway" || details.OperatorCode != "EM" {
			t.Errorf("got %s/%s for operator", details.OperatorName, details.OperatorCode)
		}

		if details.STA != "15:41" || details.ETA != "On time" {
			t.Errorf("got sta `%s` eta `%s`", details.STA, details.ETA)
		}

		if details.STD != "15:43" || details.ETD != "On time" {
			t.Errorf("got std `%s` etd `%s`", details.STD, details.ETD)
		}

		if details.ATA != "" || details.ATD != "" {
			t.Errorf("got ata `%s` atd `%s`, want no actual times", details.ATA, details.ATD)
		}

		if details.Platform != "13" {
			t.Errorf("got `%s` for platform", details.Platform)
		}

		if details.Length != 4 {
			t.Errorf("got %d for length", details.Length)
		}

		if details.IsCancelled {
			t.Error("service should not be cancelled")
		}

		if details.OverdueMessage != "" {
			t.Errorf("got `%s` for overdue message", details.OverdueMessage)
		}
	})

	t.Run("keeps one calling point list per leg and flattens in order", func(t *testing.T) {
		session := testSession(t, &mockLDBService{details: stockportDetails()})

		details, err := session.ServiceDetails("service")
		if err != nil {
			t.Fatal(err)
		}

		if len(details.PreviousCallingPointLists) != 1 {
			t.Fatalf("got %d previous lists, want 1", len(details.PreviousCallingPointLists))
		}

		previous := details.PreviousCallingPointLists[0]
		if len(previous.CallingPoints) != 5 {
			t.Errorf("got %d previous calling points, want 5", len(previous.CallingPoints))
		}

		if previous.ServiceType != "train" {
			t.Errorf("got `%s` for leg service type", previous.ServiceType)
		}

		if previous.ServiceChangeRequired || previous.AssociationIsCancelled {
			t.Error("leg attributes should be false")
		}

		if len(details.SubsequentCallingPointLists) != 2 {
			t.Fatalf("got %d subsequent lists, want 2", len(details.SubsequentCallingPointLists))
		}

		flattened := details.SubsequentCallingPoints()
		if len(flattened) != 5 {
			t.Fatalf("got %d flattened subsequent calling points, want 5", len(flattened))
		}

		if flattened[0].LocationName != "Stockport" {
			t.Errorf("got `%s` for first subsequent calling point", flattened[0].LocationName)
		}

		if flattened[4].LocationName != "Macclesfield" {
			t.Errorf("got `%s` for last subsequent calling point", flattened[4].LocationName)
		}

		point := flattened[0]
		if point.ST != "12:00" || point.ET != "On time" || point.AT != "" {
			t.Errorf("unexpected calling point times %#v", point)
		}
	})

	t.Run("missing calling point lists become empty slices", func(t *testing.T) {
		details := stockportDetails()
		details.PreviousCallingPoints = nil

		session := testSession(t, &mockLDBService{details: details})

		got, err := session.ServiceDetails("service")
		if err != nil {
			t.Fatal(err)
		}

		if got.PreviousCallingPointLists == nil || len(got.PreviousCallingPointLists) != 0 {
			t.Errorf("got %#v, want an empty slice", got.PreviousCallingPointLists)
		}

		if len(got.PreviousCallingPoints()) != 0 {
			t.Error("flattened previous calling points should be empty")
		}
	})
}

func TestServiceDetails_DisruptionReason(t *testing.T) {
	t.Run("prefers the cancellation reason when cancelled", func(t *testing.T) {
		details := &ServiceDetails{
			IsCancelled:  true,
			CancelReason: "This train has been cancelled because of a fault on this train",
			DelayReason:  "This train has been delayed",
		}

		if details.DisruptionReason() != details.CancelReason {
			t.Errorf("got `%s`", details.DisruptionReason())
		}
	})

	t.Run("falls back to the delay reason", func(t *testing.T) {
		details := &ServiceDetails{
			DelayReason: "This train has been delayed by a broken down train",
		}

		if details.DisruptionReason() != details.DelayReason {
			t.Errorf("got `%s`", details.DisruptionReason())
		}
	})

	t.Run("empty when the service runs normally", func(t *testing.T) {
		details := &ServiceDetails{}

		if details.DisruptionReason() != "" {
			t.Errorf("got `%s`, want empty", details.DisruptionReason())
		}
	})
}
