package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

// DefaultNamespace prefixes every preference key in the backing store.
const DefaultNamespace = "dailyMotivationApp"

// PreferenceStoreConfig contains the dependencies of a PreferenceStore.
type PreferenceStoreConfig struct {
	Store     ports.KeyValueStore
	Namespace string
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

// PreferenceStore persists one PreferenceRecord per profile as a single
// JSON document.
//
// The store never fails its callers. Storage errors are logged, counted and
// swallowed; unreadable documents read as defaults. Writes to one profile
// are serialized so each read-merge-write of its record is applied as one
// replace; different profiles do not wait on each other.
type PreferenceStore struct {
	kv        ports.KeyValueStore
	namespace string
	logger    *slog.Logger
	metrics   *metrics.Metrics

	locks sync.Map // profile -> *sync.Mutex
}

// NewPreferenceStore creates a preference store. Store is required.
func NewPreferenceStore(cfg PreferenceStoreConfig) *PreferenceStore {
	if cfg.Store == nil {
		panic("app: PreferenceStore requires a KeyValueStore")
	}

	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewUnregistered()
	}

	return &PreferenceStore{
		kv:        cfg.Store,
		namespace: cfg.Namespace,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}
}

// Capability reports whether preferences survive beyond a single call.
func (s *PreferenceStore) Capability() ports.Capability {
	return s.kv.Capability()
}

// Key returns the storage key of profile.
func (s *PreferenceStore) Key(profile string) string {
	return s.namespace + ":" + profile
}

// lock acquires the profile's write lock and returns its release.
func (s *PreferenceStore) lock(profile string) func() {
	v, _ := s.locks.LoadOrStore(profile, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

// Read returns the stored record merged over the defaults.
func (s *PreferenceStore) Read(ctx context.Context, profile string) domain.PreferenceRecord {
	if s.kv.Capability() == ports.Unavailable {
		return domain.DefaultPreferences()
	}

	raw, ok, err := s.kv.Get(ctx, s.Key(profile))
	if err != nil {
		s.fail(ctx, "read", profile, err)
		return domain.DefaultPreferences()
	}

	if !ok {
		return domain.DefaultPreferences()
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		s.fail(ctx, "decode", profile, err)
		return domain.DefaultPreferences()
	}

	return rec
}

// Write shallow-merges patch over the current record and stores the result.
// It returns the merged record; on failure, or when the patch is invalid,
// the current record is returned unchanged.
func (s *PreferenceStore) Write(ctx context.Context, profile string, patch domain.PreferencesPatch) domain.PreferenceRecord {
	defer s.lock(profile)()

	return s.write(ctx, profile, patch)
}

func (s *PreferenceStore) write(ctx context.Context, profile string, patch domain.PreferencesPatch) domain.PreferenceRecord {
	current := s.Read(ctx, profile)

	if err := patch.Validate(); err != nil {
		s.fail(ctx, "validate", profile, err)
		return current
	}

	if s.kv.Capability() == ports.Unavailable {
		return current
	}

	next := patch.Apply(current)

	raw, err := encodeRecord(next)
	if err != nil {
		s.fail(ctx, "encode", profile, err)
		return current
	}

	if err := s.kv.Set(ctx, s.Key(profile), raw); err != nil {
		s.fail(ctx, "write", profile, err)
		return current
	}

	return next
}

// Clear removes the profile's record; subsequent reads return defaults.
func (s *PreferenceStore) Clear(ctx context.Context, profile string) {
	defer s.lock(profile)()

	if s.kv.Capability() == ports.Unavailable {
		return
	}

	if err := s.kv.Delete(ctx, s.Key(profile)); err != nil {
		s.fail(ctx, "clear", profile, err)
	}
}

// AddFavorite appends q unless a favorite with the same ID exists.
// Invalid quotes are ignored. Returns the resulting favorites.
func (s *PreferenceStore) AddFavorite(ctx context.Context, profile string, q domain.Quote) []domain.Quote {
	defer s.lock(profile)()

	current := s.Read(ctx, profile)

	if !q.Valid() {
		s.fail(ctx, "add_favorite", profile, domain.NewValidationError("quote", "content and author are required"))
		return current.Favorites
	}

	if current.HasFavorite(q.ID) {
		return current.Favorites
	}

	favorites := append(append(make([]domain.Quote, 0, len(current.Favorites)+1), current.Favorites...), q.Clone())

	return s.write(ctx, profile, domain.PreferencesPatch{Favorites: &favorites}).Favorites
}

// RemoveFavorite drops every favorite with the given ID, keeping the order
// of the rest. Returns the resulting favorites.
func (s *PreferenceStore) RemoveFavorite(ctx context.Context, profile, id string) []domain.Quote {
	defer s.lock(profile)()

	current := s.Read(ctx, profile)
	if !current.HasFavorite(id) {
		return current.Favorites
	}

	favorites := make([]domain.Quote, 0, len(current.Favorites))
	for _, f := range current.Favorites {
		if f.ID != id {
			favorites = append(favorites, f)
		}
	}

	return s.write(ctx, profile, domain.PreferencesPatch{Favorites: &favorites}).Favorites
}

// IsFavorite reports whether a favorite with the given ID exists.
func (s *PreferenceStore) IsFavorite(ctx context.Context, profile, id string) bool {
	rec := s.Read(ctx, profile)
	return rec.HasFavorite(id)
}

func (s *PreferenceStore) fail(ctx context.Context, op, profile string, err error) {
	s.metrics.StoreFailures.WithLabelValues(op).Inc()

	level := slog.LevelWarn
	if errors.Is(err, domain.ErrQuotaExceeded) {
		level = slog.LevelError
	}

	s.logger.Log(ctx, level, "preference store operation failed",
		slog.String("op", op),
		slog.String("profile", profile),
		slog.Any("error", err),
	)
}

// storedQuote and storedRecord are the persisted JSON layout.
type storedQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags,omitempty"`
}

type storedRecord struct {
	Favorites            []storedQuote `json:"favorites"`
	Theme                string        `json:"theme"`
	FontSize             string        `json:"fontSize"`
	AccentColor          string        `json:"accentColor"`
	NotificationsEnabled bool          `json:"notificationsEnabled"`
	NotificationTime     string        `json:"notificationTime"`
	LastQuoteDate        string        `json:"lastQuoteDate"`
	LastQuote            *storedQuote  `json:"lastQuote"`
}

func toStoredQuote(q domain.Quote) storedQuote {
	return storedQuote{ID: q.ID, Content: q.Content, Author: q.Author, Tags: q.Tags}
}

func (q storedQuote) toDomain() domain.Quote {
	return domain.Quote{ID: q.ID, Content: q.Content, Author: q.Author, Tags: q.Tags}
}

func encodeRecord(r domain.PreferenceRecord) (string, error) {
	doc := storedRecord{
		Favorites:            make([]storedQuote, 0, len(r.Favorites)),
		Theme:                string(r.Theme),
		FontSize:             string(r.FontSize),
		AccentColor:          r.AccentColor,
		NotificationsEnabled: r.NotificationsEnabled,
		NotificationTime:     r.NotificationTime,
		LastQuoteDate:        r.LastQuoteDate,
	}

	for _, f := range r.Favorites {
		doc.Favorites = append(doc.Favorites, toStoredQuote(f))
	}

	if r.LastQuote != nil {
		q := toStoredQuote(*r.LastQuote)
		doc.LastQuote = &q
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// decodeRecord unmarshals a stored document over the defaults. Fields with
// values outside their domain fall back to the default, and invalid or
// duplicate favorites are dropped, so a decoded record is always usable.
func decodeRecord(raw string) (domain.PreferenceRecord, error) {
	def := domain.DefaultPreferences()

	doc := storedRecord{
		Theme:            string(def.Theme),
		FontSize:         string(def.FontSize),
		AccentColor:      def.AccentColor,
		NotificationTime: def.NotificationTime,
	}

	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return def, err
	}

	rec := def
	rec.NotificationsEnabled = doc.NotificationsEnabled
	rec.LastQuoteDate = doc.LastQuoteDate

	if t := domain.Theme(doc.Theme); t.Valid() {
		rec.Theme = t
	}

	if f := domain.FontSize(doc.FontSize); f.Valid() {
		rec.FontSize = f
	}

	if domain.ValidAccentColor(doc.AccentColor) {
		rec.AccentColor = doc.AccentColor
	}

	if domain.ValidClockTime(doc.NotificationTime) {
		rec.NotificationTime = doc.NotificationTime
	}

	for _, f := range doc.Favorites {
		q := f.toDomain()
		if q.Valid() && !rec.HasFavorite(q.ID) {
			rec.Favorites = append(rec.Favorites, q)
		}
	}

	if doc.LastQuote != nil {
		if q := doc.LastQuote.toDomain(); q.Valid() {
			rec.LastQuote = &q
		}
	}

	return rec, nil
}
