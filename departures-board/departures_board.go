package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/openraildata/darwin-ldb/darwin"
	"github.com/openraildata/darwin-ldb/dlog"
	"github.com/openraildata/darwin-ldb/stations"
	"github.com/pkg/errors"
)

// DeparturesBoard renders a station's live departures as a table or as
// CSV on the given writer.
type DeparturesBoard struct {
	Logger  *dlog.Logger
	Session BoardSession
	Out     io.Writer
}

type BoardSession interface {
	StationBoard(crs string, options ...darwin.BoardOption) (*darwin.StationBoard, error)
}

func main() {
	loggerOptions := []dlog.LoggerOption{
		dlog.LoggerSetOutput(os.Stderr),
		dlog.LoggerSetPrefix("departures-board: "),
		dlog.LoggerSetFlags(log.Ldate | log.Ltime),
	}

	logger := dlog.NewLogger(loggerOptions...)

	logger.Debug("main")

	destination := flag.String("destination", "", "only include services travelling to this CRS code, e.g. HUD")
	origin := flag.String("origin", "", "only include services that came from this CRS code, e.g. LIV")
	rows := flag.Uint("rows", 10, "maximum number of services to show")
	csvOutput := flag.Bool("csv", false, "output in CSV format")
	flag.Parse()

	station := flag.Arg(0)
	if station == "" {
		station = os.Getenv("LDB_STATION")
	}

	if station == "" {
		logger.Fatal("no station given: pass a CRS code, e.g. MAN for Manchester Piccadilly, or set LDB_STATION")
	}

	station = strings.ToUpper(station)

	if !stations.IsValid(station) {
		logger.Fatalf("`%s` is not a CRS code: expected three letters, e.g. MAN", station)
	}

	rowCount, err := boardRowCount(*rows)
	if err != nil {
		logger.Fatal(err)
	}

	if name, err := stations.Name(station); err == nil {
		logger.Debugf("station %s is %s", station, name)
	}

	session, err := darwin.NewSession(darwin.SessionLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}

	db := DeparturesBoard{
		Logger:  logger,
		Session: session,
		Out:     os.Stdout,
	}

	options := []darwin.BoardOption{
		darwin.BoardRows(rowCount),
	}

	if *destination != "" {
		options = append(options, darwin.BoardDestination(strings.ToUpper(*destination)))
	}

	if *origin != "" {
		options = append(options, darwin.BoardOrigin(strings.ToUpper(*origin)))
	}

	if err := db.Run(station, *csvOutput, options...); err != nil {
		logger.Fatal(err)
	}
}

func (db *DeparturesBoard) Run(crs string, csvOutput bool, options ...darwin.BoardOption) error {
	db.Logger.Debugf("Run %s", crs)

	board, err := db.Session.StationBoard(crs, options...)
	if err != nil {
		return errors.Wrapf(err, "cannot get departures board for %s", crs)
	}

	rows := boardRows(board)

	if csvOutput {
		return db.writeCSV(rows)
	}

	return db.writeTable(board, rows)
}

// boardRowCount validates the -rows flag, which the service carries as
// a 16-bit value.
func boardRowCount(rows uint) (uint16, error) {
	if rows > math.MaxUint16 {
		return 0, errors.Errorf("cannot show %d rows: the most the service supports is %d", rows, math.MaxUint16)
	}

	return uint16(rows), nil
}

// boardRows returns the tabular form of a board: a header row followed
// by one row per train service.
func boardRows(board *darwin.StationBoard) [][]string {
	rows := [][]string{
		{"Platform", "Destination", "Scheduled", "Due"},
	}

	for _, service := range board.TrainServices {
		rows = append(rows, []string{
			service.Platform,
			service.DestinationText(),
			service.STD,
			service.ETD,
		})
	}

	return rows
}

func (db *DeparturesBoard) writeCSV(rows [][]string) error {
	w := csv.NewWriter(db.Out)

	if err := w.WriteAll(rows); err != nil {
		return errors.Wrap(err, "cannot write CSV output")
	}

	return nil
}

func (db *DeparturesBoard) writeTable(board *darwin.StationBoard, rows [][]string) error {
	if _, err := fmt.Fprintf(db.Out, "%s (generated at %s)\n\n", board.LocationName, board.GeneratedAt.Format("15:04:05")); err != nil {
		return errors.Wrap(err, "cannot write board heading")
	}

	w := tabwriter.NewWriter(db.Out, 5, 3, 3, ' ', 0)

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return errors.Wrap(err, "cannot write board row")
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "cannot flush board table")
	}

	return nil
}
