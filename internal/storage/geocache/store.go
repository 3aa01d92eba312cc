package geocache

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"wedding_site/internal/adapters/observability"
	"wedding_site/internal/domain"
)

// Version tags the persisted blob. Bump it to invalidate every stored
// entry wholesale; there is no partial migration.
const Version = "v1"

type payload struct {
	Version string                     `json:"version"`
	Entries map[string]domain.Location `json:"entries"`
}

var (
	spaceRe = regexp.MustCompile(`\s+`)
	commaRe = regexp.MustCompile(`,\s*`)
)

// NormalizeAddress builds the cache lookup key: lower-cased, trimmed,
// whitespace collapsed, comma spacing normalized to ", ".
func NormalizeAddress(address string) string {
	s := strings.ToLower(strings.TrimSpace(address))
	s = spaceRe.ReplaceAllString(s, " ")
	s = commaRe.ReplaceAllString(s, ", ")
	return s
}

// Cache is the persisted address→location store. It loads lazily from
// its blob store, discards the whole blob on version mismatch or
// undecodable content, and persists after every insert. Persistence is
// best-effort: failures are logged and the in-memory map stays usable.
type Cache struct {
	store domain.BlobStore

	mu      sync.Mutex
	loaded  bool
	entries map[string]domain.Location
}

func New(store domain.BlobStore) *Cache {
	return &Cache{store: store}
}

func (c *Cache) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.entries = map[string]domain.Location{}

	b, err := c.store.Load(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("geocache: load failed, starting fresh")
		return
	}
	if len(b) == 0 {
		return
	}
	var p payload
	if err := json.Unmarshal(b, &p); err != nil {
		// Invalid blob is "no cache", never an error.
		log.Warn().Err(err).Msg("geocache: undecodable blob, starting fresh")
		return
	}
	if p.Version != Version {
		log.Info().Str("stored", p.Version).Str("expected", Version).
			Msg("geocache: version mismatch, discarding")
		return
	}
	if p.Entries != nil {
		c.entries = p.Entries
	}
}

// Get looks up by normalized key. Pure read; never triggers network or
// persistence activity beyond the one lazy blob load.
func (c *Cache) Get(address string) (domain.Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	loc, ok := c.entries[NormalizeAddress(address)]
	if ok {
		observability.ObserveCache("geocache", "hit")
	} else {
		observability.ObserveCache("geocache", "miss")
	}
	return loc, ok
}

// Put inserts under the normalized key and persists the whole store.
func (c *Cache) Put(ctx context.Context, address string, loc domain.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	c.entries[NormalizeAddress(address)] = loc
	observability.ObserveCache("geocache", "set")
	c.persist(ctx)
}

// Clear resets the store to empty and persists.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.entries = map[string]domain.Location{}
	observability.ObserveCache("geocache", "del")
	return c.store.Delete(ctx)
}

// Stats reports the entry count and the stored keys.
func (c *Cache) Stats() (int, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return len(keys), keys
}

// persist is called with c.mu held.
func (c *Cache) persist(ctx context.Context) {
	b, err := json.Marshal(payload{Version: Version, Entries: c.entries})
	if err != nil {
		log.Error().Err(err).Msg("geocache: marshal failed")
		return
	}
	if err := c.store.Save(ctx, b); err != nil {
		// Best-effort durability: the session keeps its in-memory
		// entries, future sessions lose them.
		log.Warn().Err(err).Msg("geocache: persist failed")
	}
}
