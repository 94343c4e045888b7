package menu

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
)

// Option configures a Loader.
type Option func(*Loader)

// WithSkipMalformed makes the loader log and skip records with bad
// numbers instead of abandoning the whole load.
func WithSkipMalformed(skip bool) Option {
	return func(l *Loader) {
		l.skipMalformed = skip
	}
}

// Loader reads menu files into a DishSink.
type Loader struct {
	log           *logger.Logger
	skipMalformed bool
}

// NewLoader creates a loader. By default the first malformed record
// aborts the load and nothing reaches the sink.
func NewLoader(log *logger.Logger, opts ...Option) *Loader {
	l := &Loader{log: log}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Result summarises a load.
type Result struct {
	Records    int // data records read, header excluded
	Added      int
	Duplicates int // rejected by the sink
	Unknown    int // unknown dish type, skipped silently
	Malformed  int // skipped because of bad numbers
}

// LoadFile opens path and loads it. Open failures are returned and leave
// the sink untouched.
func (l *Loader) LoadFile(path string, sink domain.DishSink) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening menu file: %w", err)
	}
	defer f.Close()

	l.log.Debug("loading menu from %s", path)
	res, err := l.Load(f, sink)
	if err != nil {
		return res, fmt.Errorf("loading %s: %w", path, err)
	}
	return res, nil
}

// Load reads records from r, skipping the header line, and adds every
// dish to sink in file order.
func (l *Loader) Load(r io.Reader, sink domain.DishSink) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		res    Result
		dishes []domain.Dish
		header = true
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("reading menu: %w", err)
		}
		if header {
			header = false
			continue
		}
		res.Records++
		line, _ := cr.FieldPos(0)

		if len(fields) < recordFields {
			l.log.Debug("line %d: %d of %d fields present", line, len(fields), recordFields)
		}

		dish, err := ParseRecord(fields)
		switch {
		case err == nil:
			dishes = append(dishes, dish)
		case errors.Is(err, domain.ErrUnknownDishType):
			res.Unknown++
			l.log.Debug("line %d: skipping record: %v", line, err)
		case l.skipMalformed:
			res.Malformed++
			l.log.Warn("line %d: skipping record: %v", line, err)
		default:
			return Result{}, fmt.Errorf("line %d: %w", line, err)
		}
	}

	for _, d := range dishes {
		if sink.Add(d) {
			res.Added++
		} else {
			res.Duplicates++
		}
	}

	l.log.Info("loaded %d of %d records (%d rejected, %d unknown type, %d malformed)",
		res.Added, res.Records, res.Duplicates, res.Unknown, res.Malformed)
	return res, nil
}
