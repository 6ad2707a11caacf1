package darwin

import (
	"context"
	"os"
	"time"

	"github.com/hooklift/gowsdl/soap"
	"github.com/openraildata/darwin-ldb/dlog"
	"github.com/openraildata/darwin-ldb/ldbws"
	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// Session is a connection to the National Rail Enquiries OpenLDBWS
// (Darwin LDB) web service. It wraps the generated SOAP bindings and
// returns friendly, read-only response objects.
//
// A Session performs no caching and no retries; callers that poll the
// service should add those themselves (see the departures-poller command
// for an example).
type Session struct {
	Logger *dlog.Logger

	service     ldbws.LDBServiceSoap
	endpoint    string
	accessToken string
	timeout     time.Duration
}

type SessionOption struct {
	f func(*Session)
}

// SessionEndpoint sets the OpenLDBWS endpoint URL. Defaults to the value
// of NRE_OPENLDBWS_URL.
func SessionEndpoint(url string) SessionOption {
	return SessionOption{
		func(s *Session) {
			s.endpoint = url
		},
	}
}

// SessionAccessToken sets the Darwin access token sent in the SOAP header
// of every request. Defaults to the value of NRE_OPENLDBWS_ACCESS_TOKEN.
func SessionAccessToken(token string) SessionOption {
	return SessionOption{
		func(s *Session) {
			s.accessToken = token
		},
	}
}

// SessionTimeout sets the timeout for each SOAP call. The default is five
// seconds.
func SessionTimeout(timeout time.Duration) SessionOption {
	return SessionOption{
		func(s *Session) {
			s.timeout = timeout
		},
	}
}

func SessionLogger(logger *dlog.Logger) SessionOption {
	return SessionOption{
		func(s *Session) {
			s.Logger = logger
		},
	}
}

// SessionService replaces the SOAP service implementation. Intended for
// tests; when set, endpoint and access token are not required.
func SessionService(service ldbws.LDBServiceSoap) SessionOption {
	return SessionOption{
		func(s *Session) {
			s.service = service
		},
	}
}

// NewSession opens a session against OpenLDBWS. The endpoint URL and
// access token are taken from the NRE_OPENLDBWS_URL and
// NRE_OPENLDBWS_ACCESS_TOKEN environment variables unless supplied as
// options.
func NewSession(options ...SessionOption) (*Session, error) {
	s := &Session{
		timeout: defaultTimeout,
	}

	for _, option := range options {
		option.f(s)
	}

	if s.Logger == nil {
		s.Logger = dlog.NewLogger()
	}

	if s.service != nil {
		return s, nil
	}

	if s.endpoint == "" {
		s.endpoint = os.Getenv("NRE_OPENLDBWS_URL")
	}

	if s.accessToken == "" {
		s.accessToken = os.Getenv("NRE_OPENLDBWS_ACCESS_TOKEN")
	}

	if s.endpoint == "" {
		return nil, errors.New("no OpenLDBWS endpoint: set NRE_OPENLDBWS_URL or use SessionEndpoint")
	}

	if s.accessToken == "" {
		return nil, errors.New("no OpenLDBWS access token: set NRE_OPENLDBWS_ACCESS_TOKEN or use SessionAccessToken")
	}

	client := soap.NewClient(s.endpoint, soap.WithTimeout(s.timeout))
	client.AddHeader(ldbws.SOAPHeader{
		Header: ldbws.AccessToken{
			TokenValue: s.accessToken,
		},
	})

	s.service = ldbws.NewLDBServiceSoap(client)

	return s, nil
}

type boardQuery struct {
	rows        uint16
	departures  bool
	arrivals    bool
	destination string
	origin      string
}

type BoardOption struct {
	f func(*boardQuery)
}

// BoardRows sets the maximum number of services to return. The default
// is ten.
func BoardRows(rows uint16) BoardOption {
	return BoardOption{
		func(q *boardQuery) {
			q.rows = rows
		},
	}
}

// BoardDepartures includes or excludes departing services. Departures are
// included by default.
func BoardDepartures(include bool) BoardOption {
	return BoardOption{
		func(q *boardQuery) {
			q.departures = include
		},
	}
}

// BoardArrivals includes or excludes arriving services. Arrivals are
// excluded by default.
func BoardArrivals(include bool) BoardOption {
	return BoardOption{
		func(q *boardQuery) {
			q.arrivals = include
		},
	}
}

// BoardDestination restricts the board to services calling at the given
// CRS code later in their journey.
func BoardDestination(crs string) BoardOption {
	return BoardOption{
		func(q *boardQuery) {
			q.destination = crs
		},
	}
}

// BoardOrigin restricts the board to services that called at the given
// CRS code earlier in their journey.
func BoardOrigin(crs string) BoardOption {
	return BoardOption{
		func(q *boardQuery) {
			q.origin = crs
		},
	}
}

// StationBoard fetches the live board for a station identified by its
// three letter CRS code.
func (s *Session) StationBoard(crs string, options ...BoardOption) (*StationBoard, error) {
	return s.StationBoardContext(context.Background(), crs, options...)
}

func (s *Session) StationBoardContext(ctx context.Context, crs string, options ...BoardOption) (*StationBoard, error) {
	s.Logger.Debugf("StationBoardContext %s", crs)

	q := boardQuery{
		rows:       10,
		departures: true,
	}

	for _, option := range options {
		option.f(&q)
	}

	if !q.departures && !q.arrivals {
		return nil, errors.New("station board query must include departures or arrivals")
	}

	crsCode := ldbws.CRSType(crs)

	var filterCrs *ldbws.CRSType
	var filterType *ldbws.FilterType

	// A board can only be filtered on one location. When both are given,
	// the destination filter wins, as the service itself would behave.
	if q.destination != "" {
		if q.origin != "" {
			s.Logger.Printf("station board query can only filter on one of destination and origin; using destination %s", q.destination)
		}
		filter := ldbws.CRSType(q.destination)
		filterTo := ldbws.FilterTypeTo
		filterCrs = &filter
		filterType = &filterTo
	} else if q.origin != "" {
		filter := ldbws.CRSType(q.origin)
		filterFrom := ldbws.FilterTypeFrom
		filterCrs = &filter
		filterType = &filterFrom
	}

	var result *ldbws.StationBoard

	switch {
	case q.departures && q.arrivals:
		resp, err := s.service.GetArrivalDepartureBoardContext(ctx, &ldbws.GetArrivalDepartureBoardRequest{
			NumRows:    q.rows,
			Crs:        &crsCode,
			FilterCrs:  filterCrs,
			FilterType: filterType,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot get arrival and departure board for %s", crs)
		}
		result = resp.GetStationBoardResult
	case q.departures:
		resp, err := s.service.GetDepartureBoardContext(ctx, &ldbws.GetDepartureBoardRequest{
			NumRows:    q.rows,
			Crs:        &crsCode,
			FilterCrs:  filterCrs,
			FilterType: filterType,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot get departure board for %s", crs)
		}
		result = resp.GetStationBoardResult
	default:
		resp, err := s.service.GetArrivalBoardContext(ctx, &ldbws.GetArrivalBoardRequest{
			NumRows:    q.rows,
			Crs:        &crsCode,
			FilterCrs:  filterCrs,
			FilterType: filterType,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot get arrival board for %s", crs)
		}
		result = resp.GetStationBoardResult
	}

	if result == nil {
		return nil, errors.Errorf("empty station board response for %s", crs)
	}

	return newStationBoard(result), nil
}

// ServiceDetails fetches the full details of a single service, using a
// service ID obtained from a station board. Details are only available
// for a short time after the service has passed the board location.
func (s *Session) ServiceDetails(serviceID string) (*ServiceDetails, error) {
	return s.ServiceDetailsContext(context.Background(), serviceID)
}

func (s *Session) ServiceDetailsContext(ctx context.Context, serviceID string) (*ServiceDetails, error) {
	s.Logger.Debugf("ServiceDetailsContext %s", serviceID)

	id := ldbws.ServiceIDType(serviceID)

	resp, err := s.service.GetServiceDetailsContext(ctx, &ldbws.GetServiceDetailsRequest{
		ServiceID: &id,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get service details for %s", serviceID)
	}

	if resp.GetServiceDetailsResult == nil {
		return nil, errors.Errorf("empty service details response for %s", serviceID)
	}

	return newServiceDetails(resp.GetServiceDetailsResult), nil
}

// NextDepartures fetches the next departure from a station to each of the
// given destination CRS codes.
func (s *Session) NextDepartures(crs string, destinations []string) (*DepartureBoard, error) {
	return s.NextDeparturesContext(context.Background(), crs, destinations)
}

func (s *Session) NextDeparturesContext(ctx context.Context, crs string, destinations []string) (*DepartureBoard, error) {
	s.Logger.Debugf("NextDeparturesContext %s", crs)

	req := ldbws.GetNextDeparturesRequest{}
	crsCode := ldbws.CRSType(crs)
	req.Crs = &crsCode
	req.FilterList.Crs = filterListCrs(destinations)

	resp, err := s.service.GetNextDeparturesContext(ctx, &req)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get next departures from %s", crs)
	}

	if resp.DeparturesBoard == nil {
		return nil, errors.Errorf("empty next departures response for %s", crs)
	}

	return newDepartureBoard(resp.DeparturesBoard), nil
}

// FastestDepartures fetches the fastest departure from a station to each
// of the given destination CRS codes.
func (s *Session) FastestDepartures(crs string, destinations []string) (*DepartureBoard, error) {
	return s.FastestDeparturesContext(context.Background(), crs, destinations)
}

func (s *Session) FastestDeparturesContext(ctx context.Context, crs string, destinations []string) (*DepartureBoard, error) {
	s.Logger.Debugf("FastestDeparturesContext %s", crs)

	req := ldbws.GetFastestDeparturesRequest{}
	crsCode := ldbws.CRSType(crs)
	req.Crs = &crsCode
	req.FilterList.Crs = filterListCrs(destinations)

	resp, err := s.service.GetFastestDeparturesContext(ctx, &req)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot get fastest departures from %s", crs)
	}

	if resp.DeparturesBoard == nil {
		return nil, errors.Errorf("empty fastest departures response for %s", crs)
	}

	return newDepartureBoard(resp.DeparturesBoard), nil
}

func filterListCrs(destinations []string) []*ldbws.CRSType {
	filters := make([]*ldbws.CRSType, 0, len(destinations))
	for _, destination := range destinations {
		crs := ldbws.CRSType(destination)
		filters = append(filters, &crs)
	}
	return filters
}
