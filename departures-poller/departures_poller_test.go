package main

import (
	"context"
	"io/ioutil"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/gomodule/redigo/redis"
	"github.com/openraildata/darwin-ldb/darwin"
	"github.com/openraildata/darwin-ldb/dlog"
	"github.com/openraildata/darwin-ldb/ldbws"
	"github.com/openraildata/darwin-ldb/repository"
	"github.com/pkg/errors"
)

const snsTopicARN = "arn:aws:sns:mars-north-8:123456789012:ldb-departures"

type MockSNSClient struct {
	snsiface.SNSAPI

	PublishCallCount int
	PublishedInput   *sns.PublishInput
}

func (ms *MockSNSClient) Publish(input *sns.PublishInput) (*sns.PublishOutput, error) {
	ms.PublishCallCount++
	ms.PublishedInput = input

	return &sns.PublishOutput{MessageId: aws.String("ABC-123")}, nil
}

func createLocationNameType(locationNameStr string) *ldbws.LocationNameType {
	locationName := ldbws.LocationNameType(locationNameStr)

	return &locationName
}

func createCRSType(crsStr string) *ldbws.CRSType {
	crs := ldbws.CRSType(crsStr)

	return &crs
}

func createTimeType(timeStr string) *ldbws.TimeType {
	timeType := ldbws.TimeType(timeStr)

	return &timeType
}

func createPlatformType(platformStr string) *ldbws.PlatformType {
	platform := ldbws.PlatformType(platformStr)

	return &platform
}

func createTOCCode(tocCodeStr string) *ldbws.TOCCode {
	tocCode := ldbws.TOCCode(tocCodeStr)

	return &tocCode
}

func createTOCName(tocNameStr string) *ldbws.TOCName {
	tocName := ldbws.TOCName(tocNameStr)

	return &tocName
}

func createServiceIDType(serviceIDStr string) *ldbws.ServiceIDType {
	serviceIDType := ldbws.ServiceIDType(serviceIDStr)

	return &serviceIDType
}

var happyRailStationResponse = &ldbws.GetDepartureBoardResponse{
	GetStationBoardResult: &ldbws.StationBoard{
		BaseStationBoard: &ldbws.BaseStationBoard{
			GeneratedAt:       time.Date(2026, 8, 29, 11, 54, 0, 0, time.UTC),
			LocationName:      createLocationNameType("Manchester Piccadilly"),
			Crs:               createCRSType("MAN"),
			PlatformAvailable: true,
		},
		TrainServices: &ldbws.ArrayOfServiceItems{
			Service: []*ldbws.ServiceItem{
				{
					BaseServiceItem: &ldbws.BaseServiceItem{
						Std:          createTimeType("11:57"),
						Etd:          createTimeType("On time"),
						Platform:     createPlatformType("1"),
						Operator:     createTOCName("TransPennine Express"),
						OperatorCode: createTOCCode("TP"),
						ServiceID:    createServiceIDType("u0bRc9iGz6QPJPk0ipljgg=="),
					},
					Origin: &ldbws.ArrayOfServiceLocations{
						Location: []*ldbws.ServiceLocation{
							{
								LocationName: createLocationNameType("Manchester Airport"),
								Crs:          createCRSType("MIA"),
							},
						},
					},
					Destination: &ldbws.ArrayOfServiceLocations{
						Location: []*ldbws.ServiceLocation{
							{
								LocationName: createLocationNameType("Middlesbrough"),
								Crs:          createCRSType("MBR"),
							},
						},
					},
				},
			},
		},
	},
}

const happyDeparturesJSON = `{` +
	`"generatedAt":"2026-08-29T11:54:00Z",` +
	`"crs":"MAN",` +
	`"locationName":"Manchester Piccadilly",` +
	`"trainServices":[{` +
	`"serviceID":"u0bRc9iGz6QPJPk0ipljgg==",` +
	`"std":"11:57",` +
	`"etd":"On time",` +
	`"platform":"1",` +
	`"operator":"TransPennine Express",` +
	`"operatorCode":"TP",` +
	`"origins":[{"locationName":"Manchester Airport","crs":"MIA"}],` +
	`"destinations":[{"locationName":"Middlesbrough","crs":"MBR"}]` +
	`}],` +
	`"busServices":[],` +
	`"ferryServices":[],` +
	`"nrccMessages":[]` +
	`}`

type MockLDBService struct {
	ldbws.LDBServiceSoap
}

func (m *MockLDBService) GetDepartureBoardContext(ctx context.Context, request *ldbws.GetDepartureBoardRequest) (*ldbws.GetDepartureBoardResponse, error) {
	if *request.Crs == "MAN" {
		return happyRailStationResponse, nil
	}

	return nil, errors.New("something went wrong")
}

func testPoller(t *testing.T, redisAddr string, snsClient snsiface.SNSAPI) Poller {
	t.Helper()

	logger := dlog.NewLogger([]dlog.LoggerOption{
		dlog.LoggerSetOutput(ioutil.Discard),
	}...)

	darwinSession, err := darwin.NewSession(
		darwin.SessionService(&MockLDBService{}),
		darwin.SessionLogger(logger),
	)
	if err != nil {
		t.Fatal(err)
	}

	return Poller{
		Logger:      logger,
		Session:     darwinSession,
		SNSClient:   snsClient,
		SNSTopicARN: aws.String(snsTopicARN),
		Pool: repository.NewRedisPool([]repository.RedisPoolOption{
			repository.RedisPoolDial(func() (redis.Conn, error) {
				return redis.Dial("tcp", redisAddr)
			}),
		}...),
		TTLSeconds: 120,
	}
}

func TestPoller_Handler(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		departuresDB, err := miniredis.Run()
		if err != nil {
			t.Fatal(err)
		}
		defer departuresDB.Close()

		mockedSNSClient := &MockSNSClient{}

		p := testPoller(t, departuresDB.Addr(), mockedSNSClient)
		defer func() {
			if err := p.Pool.Close(); err != nil {
				t.Error(err)
			}
		}()

		if err := p.Handler(RailStation{CRSCode: "MAN"}); err != nil {
			t.Error(err)
			return
		}

		departuresDB.CheckGet(t, "MAN", happyDeparturesJSON)

		if ttl := departuresDB.TTL("MAN"); ttl != 120*time.Second {
			t.Errorf("got %v for cached board TTL, want %v", ttl, 120*time.Second)
		}

		if mockedSNSClient.PublishCallCount != 1 {
			t.Error("SNS Publish should have been called once.")
		}

		if got := aws.StringValue(mockedSNSClient.PublishedInput.Message); got != happyDeparturesJSON {
			t.Errorf("published message:\ngot:\n%s\nwant:\n%s", got, happyDeparturesJSON)
		}

		if got := aws.StringValue(mockedSNSClient.PublishedInput.TopicArn); got != snsTopicARN {
			t.Errorf("got `%s` for published topic ARN", got)
		}
	})

	t.Run("rejects a malformed CRS code before calling the service", func(t *testing.T) {
		departuresDB, err := miniredis.Run()
		if err != nil {
			t.Fatal(err)
		}
		defer departuresDB.Close()

		mockedSNSClient := &MockSNSClient{}

		p := testPoller(t, departuresDB.Addr(), mockedSNSClient)
		defer func() {
			if err := p.Pool.Close(); err != nil {
				t.Error(err)
			}
		}()

		if err := p.Handler(RailStation{CRSCode: "not-a-crs"}); err == nil {
			t.Error("expected an error for a malformed CRS code")
		}

		if mockedSNSClient.PublishCallCount != 0 {
			t.Error("SNS Publish should not have been called.")
		}
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		departuresDB, err := miniredis.Run()
		if err != nil {
			t.Fatal(err)
		}
		defer departuresDB.Close()

		mockedSNSClient := &MockSNSClient{}

		p := testPoller(t, departuresDB.Addr(), mockedSNSClient)
		defer func() {
			if err := p.Pool.Close(); err != nil {
				t.Error(err)
			}
		}()

		if err := p.Handler(RailStation{CRSCode: "ZZZ"}); err == nil {
			t.Error("expected the service error to surface")
		}

		if mockedSNSClient.PublishCallCount != 0 {
			t.Error("SNS Publish should not have been called.")
		}
	})
}
