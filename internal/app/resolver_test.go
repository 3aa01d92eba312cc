package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"wedding_site/internal/app"
	"wedding_site/internal/domain"
	"wedding_site/internal/storage/geocache"
)

// ---- fakes ----

type memStore struct{ blob []byte }

func (m *memStore) Load(context.Context) ([]byte, error)   { return m.blob, nil }
func (m *memStore) Save(_ context.Context, b []byte) error { m.blob = b; return nil }
func (m *memStore) Delete(context.Context) error           { m.blob = nil; return nil }

// fakeClient maps addresses to canned results and counts remote calls.
type fakeClient struct {
	configured bool
	calls      int32
	locs       map[string]domain.Location
	errs       map[string]error
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) Geocode(_ context.Context, address string) (*domain.Location, error) {
	atomic.AddInt32(&f.calls, 1)
	if err, ok := f.errs[address]; ok {
		return nil, err
	}
	if loc, ok := f.locs[address]; ok {
		return &loc, nil
	}
	return nil, nil // no result
}

func (f *fakeClient) callCount() int { return int(atomic.LoadInt32(&f.calls)) }

func newCache() *geocache.Cache { return geocache.New(&memStore{}) }

func fixedLoc(lat, lng float64) domain.Location {
	return domain.Location{Lat: lat, Lng: lng, ResolvedAt: time.Unix(1700000000, 0).UTC()}
}

// ---- tests ----

func TestResolve_ColdThenWarm(t *testing.T) {
	const addr = "Rua Osni Ortiga, 120 - Lagoa da Conceição, Florianópolis - SC"
	cl := &fakeClient{configured: true, locs: map[string]domain.Location{addr: fixedLoc(-27.599, -48.4555)}}
	r := app.NewResolver(cl, newCache())

	first, err := r.Resolve(context.Background(), addr)
	if err != nil || first == nil {
		t.Fatalf("cold resolve: loc=%v err=%v", first, err)
	}
	if cl.callCount() != 1 {
		t.Fatalf("expected 1 remote call, got %d", cl.callCount())
	}

	second, err := r.Resolve(context.Background(), addr)
	if err != nil || second == nil {
		t.Fatalf("warm resolve: loc=%v err=%v", second, err)
	}
	// Warm cache: zero additional network requests, identical coordinate.
	if cl.callCount() != 1 {
		t.Fatalf("warm resolve must not hit the network, calls=%d", cl.callCount())
	}
	if second.Lat != first.Lat || second.Lng != first.Lng {
		t.Fatalf("coordinates differ: %+v vs %+v", first, second)
	}
}

func TestResolve_NoCredential_FastFail(t *testing.T) {
	cl := &fakeClient{configured: false}
	r := app.NewResolver(cl, newCache())

	loc, err := r.Resolve(context.Background(), "anywhere")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc != nil {
		t.Fatalf("expected nil location")
	}
	if cl.callCount() != 0 {
		t.Fatalf("fast fail must not attempt network, calls=%d", cl.callCount())
	}
}

func TestResolve_FailureNotCached(t *testing.T) {
	const addr = "Rua Inexistente, 1"
	cl := &fakeClient{configured: true, errs: map[string]error{addr: errors.New("boom")}}
	r := app.NewResolver(cl, newCache())

	if _, err := r.Resolve(context.Background(), addr); err == nil {
		t.Fatalf("expected error")
	}
	// A second attempt reaches the network again: failures are never
	// written through.
	delete(cl.errs, addr)
	cl.locs = map[string]domain.Location{addr: fixedLoc(1, 2)}
	loc, err := r.Resolve(context.Background(), addr)
	if err != nil || loc == nil {
		t.Fatalf("retry resolve: loc=%v err=%v", loc, err)
	}
	if cl.callCount() != 2 {
		t.Fatalf("expected 2 remote calls, got %d", cl.callCount())
	}
}

func TestResolve_NoResultNotCached(t *testing.T) {
	cl := &fakeClient{configured: true}
	r := app.NewResolver(cl, newCache())

	loc, err := r.Resolve(context.Background(), "unmappable")
	if err != nil || loc != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", loc, err)
	}
	if _, ok := r.Cached("unmappable"); ok {
		t.Fatalf("no-result lookups must not populate the cache")
	}
}
