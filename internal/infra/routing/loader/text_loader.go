// Package loader reads transport network data files.
package loader

import (
	"bufio"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"intercity/internal/domain/entity"
	"intercity/internal/errors"
)

// ErrMissingHeader is returned for an input without a header line
var ErrMissingHeader = errors.New("transport data has no header line")

var (
	errTooFewFields  = errors.New("expected 6 fields: from to mode distance time cost")
	errInvalidNumber = errors.New("invalid number")
	errNegative      = errors.New("negative value")
)

const minFields = 6

// Record is one edge line from the data file
type Record struct {
	Line     int
	From     string
	To       string
	Mode     entity.Mode
	Distance int64 // informational, not used for routing
	Time     int64
	Cost     int64
}

// SkippedLine explains why a data line was not loaded
type SkippedLine struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Stats summarizes a parse
type Stats struct {
	Lines   int // data lines, excluding the header and blank lines
	Records int
	Skipped int
}

// NetworkData holds the parsed records in file order
type NetworkData struct {
	Records []Record
	Skipped []SkippedLine
	Stats   Stats
}

// TextLoader parses whitespace separated transport data:
//
//	fromCity toCity mode distance time cost
//
// The first line is a header. Blank lines are ignored. Lines that cannot be
// parsed are skipped with a warning.
type TextLoader struct {
	path   string
	logger *slog.Logger
}

// NewTextLoader creates a loader for the file at path
func NewTextLoader(path string, logger *slog.Logger) *TextLoader {
	if logger == nil {
		logger = slog.Default()
	}

	return &TextLoader{path: path, logger: logger}
}

// Load opens and parses the data file
func (l *TextLoader) Load() (*NetworkData, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open transport data")
	}
	defer file.Close()

	data, err := l.Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", l.path)
	}

	return data, nil
}

// Parse reads transport data from r
func (l *TextLoader) Parse(r io.Reader) (*NetworkData, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read header")
		}

		return nil, errors.WithStack(ErrMissingHeader)
	}

	data := &NetworkData{}
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		data.Stats.Lines++

		record, err := parseRecord(fields)
		if err != nil {
			l.skip(data, lineNum, err)

			continue
		}
		record.Line = lineNum
		data.Records = append(data.Records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read line %d", lineNum+1)
	}

	data.Stats.Records = len(data.Records)
	data.Stats.Skipped = len(data.Skipped)

	return data, nil
}

func (l *TextLoader) skip(data *NetworkData, lineNum int, err error) {
	data.Skipped = append(data.Skipped, SkippedLine{Line: lineNum, Reason: err.Error()})

	if errors.Is(err, entity.ErrUnknownMode) {
		l.logger.Warn("Skipping line with unknown transport mode",
			slog.Int("line", lineNum),
			slog.String("error", err.Error()),
		)

		return
	}

	l.logger.Warn("Skipping malformed line",
		slog.Int("line", lineNum),
		slog.String("error", err.Error()),
	)
}

func parseRecord(fields []string) (Record, error) {
	if len(fields) < minFields {
		return Record{}, errors.Wrapf(errTooFewFields, "got %d", len(fields))
	}

	mode, err := entity.ParseMode(fields[2])
	if err != nil {
		return Record{}, err
	}

	distance, err := parseWhole("distance", fields[3])
	if err != nil {
		return Record{}, err
	}
	travelTime, err := parseWhole("time", fields[4])
	if err != nil {
		return Record{}, err
	}
	cost, err := parseWhole("cost", fields[5])
	if err != nil {
		return Record{}, err
	}

	return Record{
		From:     fields[0],
		To:       fields[1],
		Mode:     mode,
		Distance: distance,
		Time:     travelTime,
		Cost:     cost,
	}, nil
}

// parseWhole parses a non-negative integer. Decimal values are truncated
// toward zero, so "2.5" hours becomes 2.
func parseWhole(field, raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
			return 0, errors.Wrapf(errInvalidNumber, "%s %q", field, raw)
		}
		if f < 0 {
			return 0, errors.Wrapf(errNegative, "%s %q", field, raw)
		}
		value = int64(f)
	}

	if value < 0 {
		return 0, errors.Wrapf(errNegative, "%s %q", field, raw)
	}

	return value, nil
}
