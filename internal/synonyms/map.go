package synonyms

import (
	"log"
	"sort"
	"strings"
	"sync"
)

// Map is the process-wide synonym table: the built-in base table merged with
// the user-editable table, user entries winning on key collision. It is
// read-mostly; Normalize/Expand take a read lock, Learn and Reload take the
// write lock. A reader that started before a reload finishes safely on the
// pre-reload snapshot.
type Map struct {
	mu      sync.RWMutex
	forward map[string]string   // variant -> canonical
	reverse map[string][]string // canonical -> sorted variants
	extra   map[string]string   // configuration-provided entries, never persisted
	user    map[string]string
	store   *FileStore // nil when running without persistence
}

// NewMap builds a Map from the base table merged with the given user table.
// Pass nil for an empty user table.
func NewMap(user map[string]string) *Map {
	m := &Map{}
	m.rebuild(user)
	return m
}

// Load builds a Map whose user table is read from, and written through to,
// the given store. extra holds configuration-provided entries that sit
// between the base and user tables in override order; pass nil when none.
// An unreadable user table is logged and replaced by an empty one, so bad
// user data never blocks an analysis; Reload still surfaces the error for
// callers that asked for a re-read explicitly.
func Load(store *FileStore, extra map[string]string) *Map {
	user, err := store.Load()
	if err != nil {
		log.Printf("synonyms: %v; starting with an empty user table", err)
		user = map[string]string{}
	}
	m := &Map{extra: extra, store: store}
	m.rebuild(user)
	return m
}

// rebuild recomputes the merged forward and reverse indexes. Caller must hold
// the write lock (or own the Map exclusively, as in NewMap).
func (m *Map) rebuild(user map[string]string) {
	if user == nil {
		user = map[string]string{}
	}

	merged := make(map[string]string, len(baseSynonyms)+len(m.extra)+len(user))
	for variant, canonical := range baseSynonyms {
		merged[canonicalKey(variant)] = canonicalKey(canonical)
	}
	for variant, canonical := range m.extra {
		merged[canonicalKey(variant)] = canonicalKey(canonical)
	}
	for variant, canonical := range user {
		merged[canonicalKey(variant)] = canonicalKey(canonical)
	}

	// Resolve chains (a -> b, b -> c) so a single lookup is idempotent.
	// Cycles (a -> b, b -> a) collapse onto their lexicographically smallest
	// member so resolution stays deterministic.
	forward := make(map[string]string, len(merged))
	for variant, canonical := range merged {
		visited := map[string]bool{variant: true}
		for {
			next, ok := merged[canonical]
			if !ok || next == canonical {
				break
			}
			if visited[canonical] {
				canonical = smallestInCycle(merged, canonical)
				break
			}
			visited[canonical] = true
			canonical = next
		}
		if variant == canonical {
			continue // self-mapping adds nothing
		}
		forward[variant] = canonical
	}

	reverse := make(map[string][]string)
	for variant, canonical := range forward {
		reverse[canonical] = append(reverse[canonical], variant)
	}
	for canonical := range reverse {
		sort.Strings(reverse[canonical])
	}

	m.forward = forward
	m.reverse = reverse
	m.user = user
}

// smallestInCycle walks the cycle containing start and returns its
// lexicographically smallest member.
func smallestInCycle(merged map[string]string, start string) string {
	smallest := start
	for cur := merged[start]; cur != start; cur = merged[cur] {
		if cur < smallest {
			smallest = cur
		}
	}
	return smallest
}

// canonicalKey lower-cases, trims, and collapses internal whitespace.
func canonicalKey(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

// Normalize returns the canonical form of a term: lower-cased, trimmed, and
// mapped through the merged table when an entry exists, else unchanged.
// Deterministic, side-effect-free, and idempotent.
func (m *Map) Normalize(term string) string {
	key := canonicalKey(term)
	if key == "" {
		return ""
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if canonical, ok := m.forward[key]; ok {
		return canonical
	}
	return key
}

// Expand returns the canonical form of the term plus every variant mapping to
// it and a naive plural/singular toggle, each re-normalized. The result is
// sorted and contains no duplicates or empty strings.
func (m *Map) Expand(term string) []string {
	canonical := m.Normalize(term)
	if canonical == "" {
		return nil
	}

	seen := map[string]struct{}{}
	add := func(s string) {
		s = m.Normalize(s)
		if s == "" {
			return
		}
		seen[s] = struct{}{}
	}

	add(canonical)

	m.mu.RLock()
	variants := m.reverse[canonical]
	m.mu.RUnlock()
	for _, v := range variants {
		add(v)
	}

	if strings.HasSuffix(canonical, "s") {
		add(strings.TrimSuffix(canonical, "s"))
	} else {
		add(canonical + "s")
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Learn records that missing should be treated as a variant of present,
// resolved to its canonical form so the merged table stays acyclic. The
// mapping is visible to Normalize/Expand immediately; persistence is
// write-through when a store is configured, and a store failure does not
// undo the in-memory change. Last writer wins on concurrent calls.
func (m *Map) Learn(missing, present string) error {
	variant := canonicalKey(missing)
	// Resolve present through the current table so learning the reverse of
	// an existing mapping collapses to a no-op instead of forming a cycle.
	canonical := m.Normalize(present)
	if variant == "" || canonical == "" || variant == canonical {
		return nil
	}

	m.mu.Lock()
	user := make(map[string]string, len(m.user)+1)
	for k, v := range m.user {
		user[k] = v
	}
	user[variant] = canonical
	m.rebuild(user)
	store := m.store
	m.mu.Unlock()

	if store == nil {
		return nil
	}
	if err := store.Save(user); err != nil {
		log.Printf("synonyms: learned %q -> %q in memory but persistence failed: %v", variant, canonical, err)
		return err
	}
	return nil
}

// Reload re-reads the user table from the store and rebuilds the merged map,
// picking up out-of-band edits to the backing file. No-op without a store.
func (m *Map) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	user, err := m.store.Load()
	if err != nil {
		return err
	}
	m.rebuild(user)
	return nil
}

// Len returns the number of variant entries in the merged table.
func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.forward)
}
