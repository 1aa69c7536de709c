package timetable

import (
	"sort"
	"strings"
	"time"

	"horaires.srtgn.tn/internal/translate"
)

// Role distinguishes which side of a journey a station name is being
// resolved for. Resolution consults the matching timetable column.
type Role int

const (
	RoleOrigin Role = iota
	RoleDestination
)

func (r Role) String() string {
	if r == RoleDestination {
		return "destination"
	}
	return "origin"
}

type pairKey struct {
	origin      string
	destination string
}

// aliasEntry is one resolvable spelling of a station, kept in deterministic
// order for the substring fallback scan.
type aliasEntry struct {
	norm      string
	canonical string
}

// columnIndex holds the resolution structures for one timetable column.
type columnIndex struct {
	canonicals map[string]string // normalized canonical id -> canonical id
	displays   map[string]string // normalized display name -> canonical id
	entries    []aliasEntry      // all aliases, shortest-first then lexicographic
}

// Snapshot is one immutable, fully indexed view of the Schedule Table.
// A Snapshot is built once and never mutated; the Manager swaps whole
// snapshots on reload so concurrent searches always observe a consistent
// table.
type Snapshot struct {
	trips []Trip

	byPair               map[pairKey][]*Trip
	destinationsByOrigin map[string][]string
	originsByDestination map[string][]string

	origins      columnIndex
	destinations columnIndex

	displayNames map[string]string // canonical id -> display name
	stations     []string          // sorted distinct display names
	seasons      []string          // distinct season names present in the data

	loadedAt time.Time
}

// NewSnapshot indexes the given trips. The translator supplies display
// names for the alias index; trips are copied so the caller's slice can be
// reused.
func NewSnapshot(trips []Trip, translator *translate.Translator) *Snapshot {
	s := &Snapshot{
		trips:                make([]Trip, len(trips)),
		byPair:               make(map[pairKey][]*Trip),
		destinationsByOrigin: make(map[string][]string),
		originsByDestination: make(map[string][]string),
		origins:              newColumnIndex(),
		destinations:         newColumnIndex(),
		displayNames:         make(map[string]string),
		loadedAt:             time.Now(),
	}
	copy(s.trips, trips)

	destinationSets := make(map[string]map[string]bool)
	originSets := make(map[string]map[string]bool)
	seasonSet := make(map[Season]bool)

	for i := range s.trips {
		t := &s.trips[i]
		key := pairKey{t.Origin, t.Destination}
		s.byPair[key] = append(s.byPair[key], t)

		if destinationSets[t.Origin] == nil {
			destinationSets[t.Origin] = make(map[string]bool)
		}
		destinationSets[t.Origin][t.Destination] = true

		if originSets[t.Destination] == nil {
			originSets[t.Destination] = make(map[string]bool)
		}
		originSets[t.Destination][t.Origin] = true

		s.indexStation(t.Origin, RoleOrigin, translator)
		s.indexStation(t.Destination, RoleDestination, translator)

		if t.Season != SeasonUnknown {
			seasonSet[t.Season] = true
		}
	}

	for origin, set := range destinationSets {
		s.destinationsByOrigin[origin] = sortedKeys(set)
	}
	for destination, set := range originSets {
		s.originsByDestination[destination] = sortedKeys(set)
	}

	stationSet := make(map[string]bool, len(s.displayNames))
	for _, display := range s.displayNames {
		stationSet[display] = true
	}
	s.stations = sortedKeys(stationSet)

	for _, season := range []Season{SeasonSummer, SeasonWinter, SeasonRamadan} {
		if seasonSet[season] {
			s.seasons = append(s.seasons, season.String())
		}
	}

	s.origins.finish()
	s.destinations.finish()

	return s
}

func newColumnIndex() columnIndex {
	return columnIndex{
		canonicals: make(map[string]string),
		displays:   make(map[string]string),
	}
}

func (s *Snapshot) indexStation(canonical string, role Role, translator *translate.Translator) {
	display := translator.StationToDisplay(canonical)
	s.displayNames[canonical] = display

	index := &s.origins
	if role == RoleDestination {
		index = &s.destinations
	}

	normCanonical := translate.Normalize(canonical)
	if _, seen := index.canonicals[normCanonical]; seen {
		return
	}
	index.canonicals[normCanonical] = canonical
	index.entries = append(index.entries, aliasEntry{normCanonical, canonical})

	normDisplay := translate.Normalize(display)
	if _, taken := index.displays[normDisplay]; !taken {
		index.displays[normDisplay] = canonical
		if normDisplay != normCanonical {
			index.entries = append(index.entries, aliasEntry{normDisplay, canonical})
		}
	}
}

// finish orders the alias entries shortest-first, then lexicographically,
// so the substring fallback always picks the same station regardless of
// table iteration order.
func (c *columnIndex) finish() {
	sort.Slice(c.entries, func(i, j int) bool {
		a, b := c.entries[i], c.entries[j]
		if len(a.norm) != len(b.norm) {
			return len(a.norm) < len(b.norm)
		}
		return a.norm < b.norm
	})
}

func (s *Snapshot) column(role Role) *columnIndex {
	if role == RoleDestination {
		return &s.destinations
	}
	return &s.origins
}

// LookupCanonical reports whether the normalized name is a canonical id
// in the column for the role.
func (s *Snapshot) LookupCanonical(norm string, role Role) (string, bool) {
	canonical, ok := s.column(role).canonicals[norm]
	return canonical, ok
}

// LookupDisplay reports whether the normalized name is a display name in
// the column for the role.
func (s *Snapshot) LookupDisplay(norm string, role Role) (string, bool) {
	canonical, ok := s.column(role).displays[norm]
	return canonical, ok
}

// LookupSubstring finds the first station in deterministic order whose
// normalized alias contains the given name, or is contained by it.
func (s *Snapshot) LookupSubstring(norm string, role Role) (string, bool) {
	if norm == "" {
		return "", false
	}
	for _, entry := range s.column(role).entries {
		if strings.Contains(entry.norm, norm) || strings.Contains(norm, entry.norm) {
			return entry.canonical, true
		}
	}
	return "", false
}

// TripsBetween returns every trip from origin to destination, in table
// order. The returned slice must not be modified.
func (s *Snapshot) TripsBetween(origin, destination string) []*Trip {
	return s.byPair[pairKey{origin, destination}]
}

// DestinationsFrom returns the sorted set of stations directly reachable
// from the given origin.
func (s *Snapshot) DestinationsFrom(origin string) []string {
	return s.destinationsByOrigin[origin]
}

// OriginsTo returns the sorted set of stations with direct trips to the
// given destination.
func (s *Snapshot) OriginsTo(destination string) []string {
	return s.originsByDestination[destination]
}

// DisplayName returns the display name for a canonical station id.
func (s *Snapshot) DisplayName(canonical string) string {
	if display, ok := s.displayNames[canonical]; ok {
		return display
	}
	return canonical
}

// Stations returns the sorted distinct display names of every station in
// the table.
func (s *Snapshot) Stations() []string {
	return s.stations
}

// Seasons returns the display names of the seasons present in the table.
func (s *Snapshot) Seasons() []string {
	return s.seasons
}

// TripCount returns the number of trips in the snapshot.
func (s *Snapshot) TripCount() int {
	return len(s.trips)
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
