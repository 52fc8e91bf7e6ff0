package backdrop

import (
	"sort"
	"time"
)

// Store defaults.
const (
	// DefaultStorageKey is the key the serialized state persists under.
	DefaultStorageKey = "backdrop.background.v1"
	// DefaultHistoryLimit bounds the undo buffer.
	DefaultHistoryLimit = 50
	// DefaultThrottleWindow is how long after a commit a throttled
	// mutation collapses into the current history slot instead of
	// appending a new one. Tuned to swallow a drag gesture.
	DefaultThrottleWindow = 300 * time.Millisecond
)

// Store is the single owner of a BackgroundState: every mutation goes
// through its actions, each of which applies the change, commits an undo
// snapshot (subject to throttling), persists, and notifies subscribers —
// all synchronously within the triggering event.
//
// Store is not safe for concurrent use. The editor is single-threaded and
// event-driven; one event's mutation always completes before the next
// begins.
type Store struct {
	storage    Storage
	storageKey string
	limit      int
	window     time.Duration
	now        func() time.Time

	current    BackgroundState
	history    []BackgroundState
	index      int
	lastCommit time.Time

	subs   map[int]func(BackgroundState)
	nextID int
}

// Option configures a Store during creation.
type Option func(*Store)

// WithStorage sets the persistence backend. Defaults to an in-memory map.
func WithStorage(st Storage) Option {
	return func(s *Store) { s.storage = st }
}

// WithStorageKey overrides the key the state persists under.
func WithStorageKey(key string) Option {
	return func(s *Store) { s.storageKey = key }
}

// WithHistoryLimit overrides the undo buffer capacity.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithThrottleWindow overrides the drag-collapse window.
func WithThrottleWindow(d time.Duration) Option {
	return func(s *Store) { s.window = d }
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store, loading the persisted state if one exists and
// validates, falling back to DefaultState otherwise. The loaded state
// becomes the first history entry.
func New(opts ...Option) *Store {
	s := &Store{
		storageKey: DefaultStorageKey,
		limit:      DefaultHistoryLimit,
		window:     DefaultThrottleWindow,
		now:        time.Now,
		subs:       make(map[int]func(BackgroundState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.storage == nil {
		s.storage = MemoryStorage{}
	}

	s.current = s.load()
	s.current.Palettes = loadPalettes(s.storage)
	// lastCommit stays zero: the first throttled gesture after load must
	// append its own entry, not collapse into the initial snapshot.
	s.history = []BackgroundState{s.current.Clone()}
	s.index = 0
	s.persist()

	return s
}

// load reads and validates the persisted state. Any failure — missing
// key, parse error, shape violation — silently falls back to defaults.
func (s *Store) load() BackgroundState {
	raw, ok := s.storage.Get(s.storageKey)
	if !ok {
		return DefaultState()
	}
	state, err := decodeState(raw)
	if err != nil {
		Logger().Info("discarding unparsable persisted background", "key", s.storageKey, "err", err)
		return DefaultState()
	}
	if !Validate(state) {
		Logger().Info("discarding invalid persisted background", "key", s.storageKey)
		return DefaultState()
	}
	return state
}

// Current returns a copy of the current state. Callers never receive a
// reference into store-owned memory.
func (s *Store) Current() BackgroundState {
	return s.current.Clone()
}

// Subscribe registers fn to run after every committed mutation, with a
// copy of the new state. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(BackgroundState)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn(s.current.Clone())
	}
}

// commit snapshots the current state into history. A throttled commit
// inside the window overwrites the current slot, collapsing a drag
// gesture into one undo step; otherwise the redo branch is pruned, the
// snapshot appends, and the oldest entry is evicted once the buffer is
// full. Eviction decrements the index with the buffer so the two can
// never drift apart.
func (s *Store) commit(throttle bool) {
	now := s.now()

	if throttle && now.Sub(s.lastCommit) < s.window {
		s.history[s.index] = s.current.Clone()
		return
	}

	s.history = append(s.history[:s.index+1], s.current.Clone())
	s.index++
	if len(s.history) > s.limit {
		s.history = s.history[1:]
		s.index--
	}
	s.lastCommit = now
}

// persist serializes the current state into storage. Failures are logged
// and swallowed: the in-memory state stays authoritative and the user is
// never blocked on storage.
func (s *Store) persist() {
	raw, err := encodeState(s.current)
	if err != nil {
		Logger().Warn("background state not serializable", "err", err)
		return
	}
	if err := s.storage.Set(s.storageKey, raw); err != nil {
		Logger().Warn("background state not persisted", "key", s.storageKey, "err", err)
	}
}

// finish runs the shared tail of every mutating action.
func (s *Store) finish(throttle bool) {
	s.commit(throttle)
	s.persist()
	s.notify()
}

// SetType switches the active fill variant. Unknown types and switches to
// upload before any upload exists are no-ops; all variant configurations
// stay resident, so switching back restores previous settings.
func (s *Store) SetType(t BackgroundType) {
	switch t {
	case TypeSolid, TypeGradient, TypePattern:
	case TypeUpload:
		if s.current.Upload == nil {
			return
		}
	default:
		return
	}
	if s.current.Type == t {
		return
	}
	s.current.Type = t
	s.finish(false)
}

// SetSolidColor sets the solid fill color.
func (s *Store) SetSolidColor(color string) {
	if color == "" {
		return
	}
	s.current.Solid.Color = color
	s.finish(false)
}

// SetGradient replaces the gradient configuration. Configurations whose
// stop list violates the structural bounds are rejected silently.
func (s *Store) SetGradient(g GradientConfig) {
	if !validStops(g.Stops) {
		return
	}
	g.Stops = append([]GradientStop(nil), g.Stops...)
	s.current.Gradient = g
	s.finish(false)
}

// AddGradientStop inserts a stop, keeping the list sorted by position.
// A gradient already at the ceiling of 10 stops is left untouched.
func (s *Store) AddGradientStop(stop GradientStop) {
	stops := s.current.Gradient.Stops
	if len(stops) >= MaxGradientStops {
		return
	}
	stops = append(stops, stop)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Pos < stops[j].Pos
	})
	s.current.Gradient.Stops = stops
	s.finish(false)
}

// RemoveGradientStop deletes the stop at i. A gradient at the floor of 2
// stops, or an out-of-range index, is left untouched.
func (s *Store) RemoveGradientStop(i int) {
	stops := s.current.Gradient.Stops
	if len(stops) <= MinGradientStops || i < 0 || i >= len(stops) {
		return
	}
	s.current.Gradient.Stops = append(stops[:i], stops[i+1:]...)
	s.finish(false)
}

// UpdateGradientStop replaces the stop at i. throttle is true for
// drag-frequency updates (a stop handle being dragged), collapsing the
// gesture into a single undo entry.
func (s *Store) UpdateGradientStop(i int, stop GradientStop, throttle bool) {
	stops := s.current.Gradient.Stops
	if i < 0 || i >= len(stops) {
		return
	}
	stops[i] = stop
	s.finish(throttle)
}

// Randomize activates a seeded random gradient. The seed is recorded in
// the configuration, so the exact gradient can be regenerated later.
func (s *Store) Randomize(seed int64) {
	s.current.Gradient = GenerateGradient(seed)
	s.current.Type = TypeGradient
	s.finish(false)
}

// SetPattern replaces the pattern configuration. A config with an unknown
// pattern name or non-positive scale is rejected silently.
func (s *Store) SetPattern(p PatternConfig) {
	switch p.Name {
	case PatternDots, PatternStripes, PatternGrid, PatternNoise:
	default:
		return
	}
	if !(p.Scale > 0) {
		return
	}
	s.current.Pattern = p
	s.finish(false)
}

// SetUpload records an uploaded image and makes it the active fill.
func (s *Store) SetUpload(u UploadConfig) {
	if u.DataURL == "" {
		return
	}
	s.current.Upload = &u
	s.current.Type = TypeUpload
	s.finish(false)
}

// SyncPalettes refreshes the cached palette snapshot from storage. The
// snapshot is derived state: it does not create an undo entry.
func (s *Store) SyncPalettes() {
	s.current.Palettes = loadPalettes(s.storage)
	s.persist()
	s.notify()
}

// CanUndo reports whether an undo step exists.
func (s *Store) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether a redo step exists.
func (s *Store) CanRedo() bool { return s.index < len(s.history)-1 }

// Undo steps back one history entry. At the start of history it is a
// silent no-op.
func (s *Store) Undo() {
	if !s.CanUndo() {
		return
	}
	s.index--
	s.current = s.history[s.index].Clone()
	s.persist()
	s.notify()
}

// Redo steps forward one history entry. At the end of history it is a
// silent no-op.
func (s *Store) Redo() {
	if !s.CanRedo() {
		return
	}
	s.index++
	s.current = s.history[s.index].Clone()
	s.persist()
	s.notify()
}
