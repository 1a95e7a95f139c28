package flyover

import (
	"context"
	"log/slog"

	"github.com/ahhreggi/iss-spotter/internal/config"
	"github.com/ahhreggi/iss-spotter/internal/providers/fetch"
	"github.com/ahhreggi/iss-spotter/internal/providers/freegeoip"
	"github.com/ahhreggi/iss-spotter/internal/providers/ipify"
	"github.com/ahhreggi/iss-spotter/internal/providers/opennotify"
	"github.com/ahhreggi/iss-spotter/internal/types"
)

// IPResolver looks up the caller's public IP address
type IPResolver interface {
	GetIP(ctx context.Context) (string, error)
}

// CoordinatesResolver geolocates an IP address
type CoordinatesResolver interface {
	GetCoordinates(ctx context.Context, ip string) (types.Coords, error)
}

// PassPredictor predicts ISS passes over a location
type PassPredictor interface {
	GetPassTimes(ctx context.Context, coords types.Coords) (types.PassList, error)
}

// Service finds the upcoming ISS passes for the caller's location
type Service interface {
	// NextPasses resolves IP, then coordinates, then passes. The first
	// failing step's error is returned unchanged and later steps never run.
	NextPasses(ctx context.Context) (*Result, error)
}

// Result is the outcome of a successful lookup
type Result struct {
	IP          string
	Coordinates types.Coords
	Passes      types.PassList // exactly as returned by the PassPredictor
}

// Observer is notified of every state transition
type Observer func(from, to State)

type ServiceOption func(*flyoverService)

func WithObserver(observer Observer) ServiceOption {
	return func(s *flyoverService) {
		s.observer = observer
	}
}

type flyoverService struct {
	ipResolver     IPResolver
	coordsResolver CoordinatesResolver
	passPredictor  PassPredictor
	observer       Observer
	logger         *slog.Logger
}

// NewService creates a flyover service with real provider clients
func NewService(cfg *config.Config, logger *slog.Logger, opts ...ServiceOption) Service {
	fetcher := fetch.NewClient(cfg.HTTP.Timeout, logger)
	return NewServiceWithProviders(
		ipify.NewClient(fetcher, ipify.BaseURLOption(cfg.Endpoints.IP)),
		freegeoip.NewClient(fetcher, freegeoip.BaseURLOption(cfg.Endpoints.Geo)),
		opennotify.NewClient(fetcher, opennotify.BaseURLOption(cfg.Endpoints.Flyover)),
		logger,
		opts...,
	)
}

// NewServiceWithProviders creates a flyover service over the given resolvers
func NewServiceWithProviders(
	ipResolver IPResolver,
	coordsResolver CoordinatesResolver,
	passPredictor PassPredictor,
	logger *slog.Logger,
	opts ...ServiceOption,
) Service {
	s := &flyoverService{
		ipResolver:     ipResolver,
		coordsResolver: coordsResolver,
		passPredictor:  passPredictor,
		logger:         logger.With("component", "flyover-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *flyoverService) NextPasses(ctx context.Context) (*Result, error) {
	run := &pipeline{state: StateNotStarted, service: s}

	run.advance(StateResolvingIP)
	ip, err := s.ipResolver.GetIP(ctx)
	if err != nil {
		return nil, run.fail(err)
	}
	s.logger.Debug("resolved IP", "ip", ip)

	run.advance(StateResolvingCoords)
	coords, err := s.coordsResolver.GetCoordinates(ctx, ip)
	if err != nil {
		return nil, run.fail(err)
	}
	s.logger.Debug("resolved coordinates",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	run.advance(StateResolvingPasses)
	passes, err := s.passPredictor.GetPassTimes(ctx, coords)
	if err != nil {
		return nil, run.fail(err)
	}

	run.advance(StateDone)
	s.logger.Debug("resolved passes", "count", len(passes))

	return &Result{
		IP:          ip,
		Coordinates: coords,
		Passes:      passes,
	}, nil
}

// pipeline tracks the state of a single NextPasses call
type pipeline struct {
	state   State
	service *flyoverService
}

func (p *pipeline) advance(to State) {
	from := p.state
	p.state = to
	p.service.logger.Debug("state transition", "from", from, "to", to)
	if p.service.observer != nil {
		p.service.observer(from, to)
	}
}

// fail moves to StateFailed and hands err back untouched
func (p *pipeline) fail(err error) error {
	failedIn := p.state
	p.advance(StateFailed)
	p.service.logger.Debug("flyover lookup failed", "state", failedIn, "error", err)
	return err
}
