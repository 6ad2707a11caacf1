package darwin

import (
	"context"

	"github.com/openraildata/darwin-ldb/ldbws"
)

// mockLDBService records the last request received for each operation and
// serves canned responses.
type mockLDBService struct {
	ldbws.LDBServiceSoap

	calls int

	departureBoardRequest        *ldbws.GetDepartureBoardRequest
	arrivalBoardRequest          *ldbws.GetArrivalBoardRequest
	arrivalDepartureBoardRequest *ldbws.GetArrivalDepartureBoardRequest
	serviceDetailsRequest        *ldbws.GetServiceDetailsRequest
	nextDeparturesRequest        *ldbws.GetNextDeparturesRequest
	fastestDeparturesRequest     *ldbws.GetFastestDeparturesRequest

	board           *ldbws.StationBoard
	details         *ldbws.ServiceDetails
	departuresBoard *ldbws.DeparturesBoard
	err             error
}

func (m *mockLDBService) GetDepartureBoardContext(ctx context.Context, request *ldbws.GetDepartureBoardRequest) (*ldbws.GetDepartureBoardResponse, error) {
	m.calls++
	m.departureBoardRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetDepartureBoardResponse{GetStationBoardResult: m.board}, nil
}

func (m *mockLDBService) GetArrivalBoardContext(ctx context.Context, request *ldbws.GetArrivalBoardRequest) (*ldbws.GetArrivalBoardResponse, error) {
	m.calls++
	m.arrivalBoardRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetArrivalBoardResponse{GetStationBoardResult: m.board}, nil
}

func (m *mockLDBService) GetArrivalDepartureBoardContext(ctx context.Context, request *ldbws.GetArrivalDepartureBoardRequest) (*ldbws.GetArrivalDepartureBoardResponse, error) {
	m.calls++
	m.arrivalDepartureBoardRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetArrivalDepartureBoardResponse{GetStationBoardResult: m.board}, nil
}

func (m *mockLDBService) GetServiceDetailsContext(ctx context.Context, request *ldbws.GetServiceDetailsRequest) (*ldbws.GetServiceDetailsResponse, error) {
	m.calls++
	m.serviceDetailsRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetServiceDetailsResponse{GetServiceDetailsResult: m.details}, nil
}

func (m *mockLDBService) GetNextDeparturesContext(ctx context.Context, request *ldbws.GetNextDeparturesRequest) (*ldbws.GetNextDeparturesResponse, error) {
	m.calls++
	m.nextDeparturesRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetNextDeparturesResponse{DeparturesBoard: m.departuresBoard}, nil
}

func (m *mockLDBService) GetFastestDeparturesContext(ctx context.Context, request *ldbws.GetFastestDeparturesRequest) (*ldbws.GetFastestDeparturesResponse, error) {
	m.calls++
	m.fastestDeparturesRequest = request
	if m.err != nil {
		return nil, m.err
	}
	return &ldbws.GetFastestDeparturesResponse{DeparturesBoard: m.departuresBoard}, nil
}
