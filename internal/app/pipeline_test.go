package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wedding_site/internal/app"
	"wedding_site/internal/catalog"
	"wedding_site/internal/domain"
)

func accom(id, address string, lat, lng float64, venue bool) domain.Accommodation {
	return domain.Accommodation{ID: id, Name: id, Address: address, Lat: lat, Lng: lng, IsVenue: venue}
}

func TestPipeline_MixedHitsAndMisses(t *testing.T) {
	cache := newCache()
	cache.Put(context.Background(), "cached address", fixedLoc(-27.1, -48.1))

	cl := &fakeClient{configured: true,
		locs: map[string]domain.Location{"remote address": fixedLoc(-27.2, -48.2)},
		errs: map[string]error{"failing address": errors.New("network down")},
	}
	r := app.NewResolver(cl, cache)

	var snapshots []domain.ResolutionState
	p := app.NewResolutionPipeline(r,
		app.WithDelay(0),
		app.WithObserver(func(st domain.ResolutionState, _ []domain.Accommodation) {
			snapshots = append(snapshots, st)
		}))

	accoms := []domain.Accommodation{
		accom("a", "cached address", 0, 0, true),
		accom("b", "remote address", 1, 1, false),
		accom("c", "failing address", 2, 2, false),
		accom("d", "unmappable address", 3, 3, false),
	}
	res := p.Run(context.Background(), accoms)

	if res.State.IsLoading {
		t.Fatalf("expected terminal state")
	}
	if res.State.Progress != 4 || res.State.Total != 4 {
		t.Fatalf("progress %d/%d", res.State.Progress, res.State.Total)
	}
	if res.State.FailedCount != 2 {
		t.Fatalf("failedCount = %d, want 2", res.State.FailedCount)
	}
	if !strings.Contains(res.State.Error, "2") {
		t.Fatalf("advisory error should carry the count: %q", res.State.Error)
	}

	got := res.Accommodations
	if got[0].Lat != -27.1 || got[0].Lng != -48.1 {
		t.Fatalf("cache hit not merged: %+v", got[0])
	}
	if got[1].Lat != -27.2 || got[1].Lng != -48.2 {
		t.Fatalf("remote result not merged: %+v", got[1])
	}
	// Failures keep their static fallback coordinates.
	if got[2].Lat != 2 || got[3].Lat != 3 {
		t.Fatalf("fallback coords lost: %+v %+v", got[2], got[3])
	}

	if res.VenueCenter == nil || res.VenueCenter.Lat != -27.1 {
		t.Fatalf("venue center should follow the merged venue record: %+v", res.VenueCenter)
	}

	// Observers saw gradual progress, not one terminal update.
	if len(snapshots) < 4 {
		t.Fatalf("expected incremental snapshots, got %d", len(snapshots))
	}
	if cl.callCount() != 3 {
		t.Fatalf("expected 3 remote calls, got %d", cl.callCount())
	}
}

func TestPipeline_AllCacheHits_NoNetwork(t *testing.T) {
	cache := newCache()
	cache.Put(context.Background(), "a1", fixedLoc(1, 1))
	cache.Put(context.Background(), "a2", fixedLoc(2, 2))
	cl := &fakeClient{configured: true}
	p := app.NewResolutionPipeline(app.NewResolver(cl, cache), app.WithDelay(0))

	res := p.Run(context.Background(), []domain.Accommodation{
		accom("x", "a1", 0, 0, false),
		accom("y", "a2", 0, 0, false),
	})

	if res.State.IsLoading || res.State.Progress != 2 || res.State.FailedCount != 0 {
		t.Fatalf("unexpected state: %+v", res.State)
	}
	if res.State.Error != "" {
		t.Fatalf("no failures, error must be empty: %q", res.State.Error)
	}
	if cl.callCount() != 0 {
		t.Fatalf("all-hit run must make zero network calls, got %d", cl.callCount())
	}
}

// Re-running after a full resolution performs zero network calls.
func TestPipeline_Idempotent(t *testing.T) {
	cache := newCache()
	cl := &fakeClient{configured: true, locs: map[string]domain.Location{
		"first": fixedLoc(1, 1), "second": fixedLoc(2, 2),
	}}
	p := app.NewResolutionPipeline(app.NewResolver(cl, cache), app.WithDelay(0))

	accoms := []domain.Accommodation{accom("x", "first", 0, 0, false), accom("y", "second", 0, 0, false)}
	first := p.Run(context.Background(), accoms)
	calls := cl.callCount()
	second := p.Run(context.Background(), accoms)

	if cl.callCount() != calls {
		t.Fatalf("second run made network calls: %d -> %d", calls, cl.callCount())
	}
	for i := range first.Accommodations {
		if first.Accommodations[i].Lat != second.Accommodations[i].Lat {
			t.Fatalf("runs diverged at %d", i)
		}
	}
}

// Nine records, one venue, empty cache, no credential: every record
// completes at its fallback coordinate and nothing counts as failed.
func TestPipeline_NoCredential_DisabledNotFailed(t *testing.T) {
	accoms := catalog.Accommodations()
	if len(accoms) != 9 {
		t.Fatalf("catalog fixture changed: %d records", len(accoms))
	}
	venues := 0
	for _, a := range accoms {
		if a.IsVenue {
			venues++
		}
	}
	if venues != 1 {
		t.Fatalf("expected exactly one venue, got %d", venues)
	}

	cl := &fakeClient{configured: false}
	p := app.NewResolutionPipeline(app.NewResolver(cl, newCache()), app.WithDelay(0))
	res := p.Run(context.Background(), accoms)

	if res.State.IsLoading {
		t.Fatalf("expected terminal state")
	}
	if res.State.Progress != res.State.Total {
		t.Fatalf("progress %d != total %d", res.State.Progress, res.State.Total)
	}
	if res.State.FailedCount != 0 || res.State.Error != "" {
		t.Fatalf("disabled geocoding must not count as failure: %+v", res.State)
	}
	for i := range accoms {
		if res.Accommodations[i].Lat != accoms[i].Lat || res.Accommodations[i].Lng != accoms[i].Lng {
			t.Fatalf("coords must stay at static fallbacks: %+v", res.Accommodations[i])
		}
	}
	if cl.callCount() != 0 {
		t.Fatalf("expected zero network calls, got %d", cl.callCount())
	}
}

func TestPipeline_CancelSuppressesUpdates(t *testing.T) {
	cl := &fakeClient{configured: true, locs: map[string]domain.Location{
		"one": fixedLoc(1, 1), "two": fixedLoc(2, 2), "three": fixedLoc(3, 3),
	}}
	ctx, cancel := context.WithCancel(context.Background())

	var updatesAfterCancel int
	var seen int
	p := app.NewResolutionPipeline(app.NewResolver(cl, newCache()),
		app.WithDelay(0),
		app.WithObserver(func(st domain.ResolutionState, _ []domain.Accommodation) {
			if ctx.Err() != nil {
				updatesAfterCancel++
			}
			seen++
			if seen == 2 {
				cancel()
			}
		}))

	p.Run(ctx, []domain.Accommodation{
		accom("a", "one", 0, 0, false),
		accom("b", "two", 0, 0, false),
		accom("c", "three", 0, 0, false),
	})

	if updatesAfterCancel != 0 {
		t.Fatalf("observer called %d times after teardown", updatesAfterCancel)
	}
}

func TestVenueCenter_AbsentWithoutVenue(t *testing.T) {
	if c := app.VenueCenter([]domain.Accommodation{accom("a", "x", 1, 2, false)}); c != nil {
		t.Fatalf("expected absent center, got %+v", c)
	}
}
