package app

import (
	"context"
	"sync"

	"wedding_site/internal/adapters/observability"
	"wedding_site/internal/domain"
)

// AccommodationService owns the merged-accommodation view: written
// incrementally by one pipeline run, read by the map and list handlers.
// The input catalog is static, so the pipeline runs once per process;
// re-resolution would be pure cache hits anyway.
type AccommodationService struct {
	pipeline *ResolutionPipeline
	accoms   []domain.Accommodation

	mu      sync.RWMutex
	merged  []domain.Accommodation
	state   domain.ResolutionState
	center  *domain.Coords
	started bool
}

func NewAccommodationService(r domain.AddressResolver, accoms []domain.Accommodation, opts ...PipelineOption) *AccommodationService {
	s := &AccommodationService{accoms: accoms}
	s.pipeline = NewResolutionPipeline(r, append(opts, WithObserver(s.apply))...)
	s.merged = make([]domain.Accommodation, len(accoms))
	copy(s.merged, accoms)
	s.state = domain.ResolutionState{IsLoading: true, Total: len(accoms)}
	s.center = VenueCenter(accoms)
	return s
}

// Start launches the resolution run in the background. Subsequent calls
// are no-ops. Readers observe gradual progress through Snapshot.
func (s *AccommodationService) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		res := s.pipeline.Run(ctx, s.accoms)
		if ctx.Err() != nil {
			return // torn down, keep the last published snapshot
		}
		s.mu.Lock()
		s.merged = res.Accommodations
		s.state = res.State
		s.center = res.VenueCenter
		s.mu.Unlock()
	}()
}

func (s *AccommodationService) apply(st domain.ResolutionState, merged []domain.Accommodation) {
	observability.ObserveResolution(st.Progress, st.Total, st.FailedCount)
	s.mu.Lock()
	s.state = st
	s.merged = merged
	s.center = VenueCenter(merged)
	s.mu.Unlock()
}

// Snapshot returns the current merged list, resolution state, and venue
// center.
func (s *AccommodationService) Snapshot() ([]domain.Accommodation, domain.ResolutionState, *domain.Coords) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Accommodation, len(s.merged))
	copy(out, s.merged)
	return out, s.state, s.center
}
