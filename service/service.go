package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/rail-ticket-query/kyfw"
	"github.com/theoremus-urban-solutions/rail-ticket-query/record"
	"github.com/theoremus-urban-solutions/rail-ticket-query/station"
	"github.com/theoremus-urban-solutions/rail-ticket-query/utils"
)

// Upstream is the part of kyfw.Client the operations use.
type Upstream interface {
	FetchCookies(ctx context.Context) ([]*http.Cookie, error)
	QueryLeftTickets(ctx context.Context, cookies []*http.Cookie, date, from, to string) (*kyfw.LeftTicketData, error)
	QueryInterlinePage(ctx context.Context, cookies []*http.Cookie, path string, q kyfw.InterlineQuery, resultIndex string) (*kyfw.InterlineResponse, error)
	SearchTrain(ctx context.Context, trainCode, date string) ([]kyfw.TrainSearchHit, error)
	QueryTrainRoute(ctx context.Context, cookies []*http.Cookie, trainNo, date string) ([]map[string]any, error)
	FetchLCQueryPath(ctx context.Context) (string, error)
	FetchStationScript(ctx context.Context) (string, error)
}

// Options tune a Service. Zero values take the defaults.
type Options struct {
	TimeZone              string
	MaxPages              int
	DefaultInterlineLimit int
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

const (
	defaultTimeZone       = "Asia/Shanghai"
	defaultMaxPages       = 10
	defaultInterlineLimit = 10
)

// Service runs the query operations. It is safe for concurrent use once built.
type Service struct {
	upstream  Upstream
	catalog   *station.Catalog
	lcPath    string
	loc       *time.Location
	maxPages  int
	defLimit  int
	now       func() time.Time
	validator *validator.Validate
}

// Bootstrap builds the station catalog and resolves the interline query path.
// It is called once at process start; any failure is a startup error.
func Bootstrap(ctx context.Context, up Upstream, opts Options) (*Service, error) {
	script, err := up.FetchStationScript(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch station script: %w", err)
	}
	raw, err := station.ParseStationNames(script)
	if err != nil {
		return nil, fmt.Errorf("parse station script: %w", err)
	}
	warnings := record.NewWarningAggregator()
	catalog := station.NewCatalog(station.ParseStationsData(raw, warnings))
	warnings.LogAll("station catalog")
	log.Printf("station catalog loaded: %d stations", catalog.Len())

	lcPath, err := up.FetchLCQueryPath(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch interline query path: %w", err)
	}
	log.Printf("interline query path: %s", lcPath)

	return New(up, catalog, lcPath, opts)
}

// New builds a Service from an already loaded catalog.
func New(up Upstream, catalog *station.Catalog, lcPath string, opts Options) (*Service, error) {
	if opts.TimeZone == "" {
		opts.TimeZone = defaultTimeZone
	}
	loc, err := utils.LoadZone(opts.TimeZone)
	if err != nil {
		return nil, err
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}
	if opts.DefaultInterlineLimit <= 0 {
		opts.DefaultInterlineLimit = defaultInterlineLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		upstream:  up,
		catalog:   catalog,
		lcPath:    lcPath,
		loc:       loc,
		maxPages:  opts.MaxPages,
		defLimit:  opts.DefaultInterlineLimit,
		now:       opts.Now,
		validator: newValidator(),
	}, nil
}

// Catalog exposes the read-only station catalog.
func (s *Service) Catalog() *station.Catalog { return s.catalog }

// DefaultInterlineLimit is the limitedNum used when the caller omits it.
func (s *Service) DefaultInterlineLimit() int { return s.defLimit }

// CurrentDate returns today in the service time zone as yyyy-MM-dd.
func (s *Service) CurrentDate() string {
	return utils.Today(s.now(), s.loc)
}

// checkTravel validates the date and both stations of a ticket query.
func (s *Service) checkTravel(date, from, to string) error {
	ok, err := utils.NotBeforeToday(date, s.now(), s.loc)
	if err != nil {
		return &QueryError{Msg: err.Error()}
	}
	if !ok {
		return ErrDateInPast
	}
	if !s.catalog.Has(from) || !s.catalog.Has(to) {
		return fmt.Errorf("%w: %s or %s", ErrStationNotFound, from, to)
	}
	return nil
}

func (s *Service) cookies(ctx context.Context) ([]*http.Cookie, error) {
	cookies, err := s.upstream.FetchCookies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamAuthFailed, err)
	}
	return cookies, nil
}

// result logs a failed operation and converts it into its string result.
func result(op, out string, err error) string {
	if err == nil {
		return out
	}
	log.Printf("%s: %v", op, err)
	return errorResult(op, err)
}
