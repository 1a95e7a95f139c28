package timezone

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ringsaturn/tzf"

	"github.com/ahhreggi/iss-spotter/internal/types"
)

// Service maps locations to IANA timezone names
type Service interface {
	// GetTimezone returns the zone containing coords, e.g. "America/Vancouver"
	GetTimezone(coords types.Coords) (string, error)
	// Names lists every zone name the service can return, sorted
	Names() []string
}

// finderService answers lookups from tzf's bundled boundary data
type finderService struct {
	finder tzf.F
	names  []string
}

var (
	shared     *finderService
	sharedOnce sync.Once
	sharedErr  error
)

// NewService returns the process-wide tzf backed service.
// The boundary data is large, so it is loaded once on first use.
func NewService() (Service, error) {
	sharedOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			sharedErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		names := append([]string(nil), finder.TimezoneNames()...)
		sort.Strings(names)
		shared = &finderService{finder: finder, names: names}
	})
	if sharedErr != nil {
		return nil, sharedErr
	}
	return shared, nil
}

func (s *finderService) GetTimezone(coords types.Coords) (string, error) {
	// tzf takes longitude first
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("no timezone at lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	return name, nil
}

func (s *finderService) Names() []string {
	return s.names
}
