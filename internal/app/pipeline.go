package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wedding_site/internal/domain"
)

// interRequestDelay spaces sequential remote lookups to respect the
// geocoding service's rate limits. Deliberate backpressure, not an
// oversight.
const interRequestDelay = 150 * time.Millisecond

// Observer receives a state snapshot and the merged list after every
// completed lookup, so consumers see gradual progress. No calls happen
// after the run's context is torn down.
type Observer func(st domain.ResolutionState, merged []domain.Accommodation)

// Result is the outcome of one pipeline run.
type Result struct {
	Accommodations []domain.Accommodation
	State          domain.ResolutionState
	VenueCenter    *domain.Coords
}

// ResolutionPipeline resolves a full accommodation list: a synchronous
// cache pre-pass, then sequential remote lookups for the misses.
type ResolutionPipeline struct {
	resolver domain.AddressResolver
	delay    time.Duration
	observer Observer
}

type PipelineOption func(*ResolutionPipeline)

func WithDelay(d time.Duration) PipelineOption {
	return func(p *ResolutionPipeline) { p.delay = d }
}

func WithObserver(o Observer) PipelineOption {
	return func(p *ResolutionPipeline) { p.observer = o }
}

func NewResolutionPipeline(r domain.AddressResolver, opts ...PipelineOption) *ResolutionPipeline {
	p := &ResolutionPipeline{resolver: r, delay: interRequestDelay}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run resolves every accommodation's address and merges coordinates
// into a copy of the input. Per-item failures keep that record at its
// fallback coordinate and are aggregated into an advisory error; they
// never abort the run. Re-running after a full resolution performs zero
// remote calls because every address hits the cache.
func (p *ResolutionPipeline) Run(ctx context.Context, accoms []domain.Accommodation) Result {
	merged := make([]domain.Accommodation, len(accoms))
	copy(merged, accoms)

	st := domain.ResolutionState{IsLoading: true, Total: len(accoms)}

	notify := func() {
		if p.observer == nil || ctx.Err() != nil {
			return
		}
		snap := make([]domain.Accommodation, len(merged))
		copy(snap, merged)
		p.observer(st, snap)
	}

	// Pass 1: cache hits only, no network.
	var needs []int
	for i := range merged {
		if loc, ok := p.resolver.Cached(merged[i].Address); ok {
			merged[i].Lat, merged[i].Lng = loc.Lat, loc.Lng
			st.Progress++
		} else {
			needs = append(needs, i)
		}
	}
	notify()

	if len(needs) == 0 {
		st.IsLoading = false
		notify()
		return p.result(merged, st)
	}

	// No credential: geocoding is disabled, not failing. Every record
	// completes at its fallback coordinate.
	if !p.resolver.Configured() {
		st.Progress = st.Total
		st.IsLoading = false
		notify()
		return p.result(merged, st)
	}

	// Pass 2: sequential remote lookups with a fixed inter-request
	// delay.
	for n, i := range needs {
		if ctx.Err() != nil {
			return p.result(merged, st)
		}
		loc, err := p.resolver.Resolve(ctx, merged[i].Address)
		if ctx.Err() != nil {
			// Torn down mid-lookup: discard the result, no further
			// updates.
			return p.result(merged, st)
		}
		switch {
		case err != nil:
			st.FailedCount++
			log.Warn().Err(err).Str("id", merged[i].ID).Str("address", merged[i].Address).
				Msg("geocoding failed")
		case loc == nil:
			st.FailedCount++
			log.Warn().Str("id", merged[i].ID).Str("address", merged[i].Address).
				Msg("geocoding returned no result")
		default:
			merged[i].Lat, merged[i].Lng = loc.Lat, loc.Lng
		}
		st.Progress++
		notify()

		if n < len(needs)-1 && !sleepCtx(ctx, p.delay) {
			return p.result(merged, st)
		}
	}

	st.IsLoading = false
	if st.FailedCount > 0 {
		st.Error = advisoryError(st.FailedCount)
	}
	notify()
	return p.result(merged, st)
}

func (p *ResolutionPipeline) result(merged []domain.Accommodation, st domain.ResolutionState) Result {
	return Result{Accommodations: merged, State: st, VenueCenter: VenueCenter(merged)}
}

// VenueCenter is the coordinate of the single isVenue record, absent
// when the list carries none; the caller applies a static fallback.
func VenueCenter(accoms []domain.Accommodation) *domain.Coords {
	for _, a := range accoms {
		if a.IsVenue {
			return &domain.Coords{Lat: a.Lat, Lng: a.Lng}
		}
	}
	return nil
}

func advisoryError(failed int) string {
	return fmt.Sprintf("Geocoding falhou para %d endereço(s). Verifique se a Geocoding API está habilitada.", failed)
}

// sleepCtx waits for d or returns false if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
