package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/gomodule/redigo/redis"
	"github.com/openraildata/darwin-ldb/darwin"
	"github.com/openraildata/darwin-ldb/dlog"
	"github.com/openraildata/darwin-ldb/repository"
	"github.com/openraildata/darwin-ldb/stations"
	"github.com/pkg/errors"
)

const defaultTTLSeconds = 120

type RailStation struct {
	CRSCode string `json:"crsCode"`
}

// Poller fetches a station's live board and fans it out: the JSON form
// of the board is cached in Redis under the station's CRS code and
// published to an SNS topic. The library itself does not cache; this is
// the caller-side caching it expects.
type Poller struct {
	Logger      *dlog.Logger
	Session     BoardSession
	SNSClient   snsiface.SNSAPI
	SNSTopicARN *string
	Pool        *redis.Pool
	TTLSeconds  int
}

type BoardSession interface {
	StationBoard(crs string, options ...darwin.BoardOption) (*darwin.StationBoard, error)
}

func main() {
	loggerOptions := []dlog.LoggerOption{
		dlog.LoggerSetOutput(os.Stderr),
		dlog.LoggerSetPrefix("departures-poller: "),
		dlog.LoggerSetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Llongfile),
	}

	logger := dlog.NewLogger(loggerOptions...)

	logger.Debug("main")

	snsTopicARN, exists := os.LookupEnv("AWS_SNS_TOPIC_ARN")
	if !exists || snsTopicARN == "" {
		logger.Fatal("AWS_SNS_TOPIC_ARN not set in environment")
	}

	departuresRedisHost, exists := os.LookupEnv("DEPARTURES_REDIS_HOST")
	if !exists || departuresRedisHost == "" {
		logger.Fatal("DEPARTURES_REDIS_HOST not set in environment")
	}

	ttlStr, exists := os.LookupEnv("DEPARTURES_TTL_SECONDS")
	if !exists || ttlStr == "" {
		ttlStr = strconv.Itoa(defaultTTLSeconds)
	}

	ttl, err := strconv.Atoi(ttlStr)
	if err != nil || ttl < 1 {
		logger.Fatal("DEPARTURES_TTL_SECONDS value is invalid")
	}

	darwinSession, err := darwin.NewSession(darwin.SessionLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}

	sess := session.Must(session.NewSession())

	snsClient := sns.New(sess)

	p := Poller{
		Logger:      logger,
		Session:     darwinSession,
		SNSClient:   snsClient,
		SNSTopicARN: &snsTopicARN,
		Pool: repository.NewRedisPool([]repository.RedisPoolOption{
			repository.RedisPoolDial(func() (redis.Conn, error) {
				return redis.Dial("tcp", departuresRedisHost)
			}),
		}...),
		TTLSeconds: ttl,
	}

	defer func() {
		p.Logger.Debug("close Redis pool")
		if err := p.Pool.Close(); err != nil {
			p.Logger.Print("failed to close Redis pool")
			return
		}
		p.Logger.Debug("closed Redis pool")
	}()

	lambda.Start(p.Handler)
}

func (p Poller) Handler(railStation RailStation) error {
	p.Logger.Debug("Handler")

	crs := railStation.CRSCode

	if !stations.IsValid(crs) {
		return errors.Errorf("`%s` is not a CRS code", crs)
	}

	board, err := p.Session.StationBoard(crs)
	if err != nil {
		return errors.Wrapf(err, "cannot get departures board for %s", crs)
	}

	departuresJSON, err := json.Marshal(board)
	if err != nil {
		return errors.Wrapf(err, "cannot marshal JSON from departures board for %s", crs)
	}

	if err := p.cacheDepartures(crs, departuresJSON); err != nil {
		return err
	}

	if _, err := p.SNSClient.Publish(&sns.PublishInput{
		Message:  aws.String(string(departuresJSON)),
		TopicArn: p.SNSTopicARN,
	}); err != nil {
		return errors.Wrapf(err, "cannot publish message to SNS topic `%s`", *p.SNSTopicARN)
	}

	return nil
}

func (p Poller) cacheDepartures(crs string, departuresJSON []byte) error {
	p.Logger.Debugf("cacheDepartures %s", crs)

	conn := p.Pool.Get()

	defer func() {
		if err := conn.Close(); err != nil {
			p.Logger.Print("failed to close Redis connection")
		}
	}()

	if _, err := conn.Do("SET", crs, departuresJSON, "EX", p.TTLSeconds); err != nil {
		return errors.Wrapf(err, "cannot cache departures board for %s", crs)
	}

	return nil
}
