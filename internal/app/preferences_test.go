package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/mocks"
	"github.com/jsamuelsen/daily-motivation/internal/platform/metrics"
	"github.com/jsamuelsen/daily-motivation/internal/ports"
)

func newTestStore(kv ports.KeyValueStore, m *metrics.Metrics) *PreferenceStore {
	return NewPreferenceStore(PreferenceStoreConfig{Store: kv, Logger: discardLogger(), Metrics: m})
}

func ptr[T any](v T) *T { return &v }

func TestPreferenceStore_ReadDefaults(t *testing.T) {
	s := newTestStore(newMemKV(), nil)

	got := s.Read(context.Background(), "alice")

	if diff := cmp.Diff(domain.DefaultPreferences(), got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestPreferenceStore_WriteMergesAndPersists(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(kv, nil)
	ctx := context.Background()

	s.Write(ctx, "alice", domain.PreferencesPatch{Theme: ptr(domain.ThemeDark)})
	got := s.Write(ctx, "alice", domain.PreferencesPatch{NotificationTime: ptr("07:45")})

	want := domain.DefaultPreferences()
	want.Theme = domain.ThemeDark
	want.NotificationTime = "07:45"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, newTestStore(kv, nil).Read(ctx, "alice")); diff != "" {
		t.Errorf("re-read mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, domain.DefaultPreferences(), s.Read(ctx, "bob"), "profiles are isolated")
}

func TestPreferenceStore_InvalidPatchIsDropped(t *testing.T) {
	m := metrics.NewUnregistered()
	s := newTestStore(newMemKV(), m)

	got := s.Write(context.Background(), "alice", domain.PreferencesPatch{
		Theme:       ptr(domain.ThemeDark),
		AccentColor: ptr("purple"),
	})

	assert.Equal(t, domain.DefaultPreferences(), got)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreFailures.WithLabelValues("validate")), 0)
}

func TestPreferenceStore_Clear(t *testing.T) {
	s := newTestStore(newMemKV(), nil)
	ctx := context.Background()

	s.AddFavorite(ctx, "alice", *quote("q1"))
	s.Clear(ctx, "alice")

	assert.Equal(t, domain.DefaultPreferences(), s.Read(ctx, "alice"))
}

func TestPreferenceStore_Favorites(t *testing.T) {
	s := newTestStore(newMemKV(), nil)
	ctx := context.Background()

	s.AddFavorite(ctx, "alice", *quote("q1"))
	s.AddFavorite(ctx, "alice", *quote("q2"))
	s.AddFavorite(ctx, "alice", *quote("q3"))
	got := s.AddFavorite(ctx, "alice", domain.Quote{ID: "q2", Content: "other text", Author: "other"})

	require.Len(t, got, 3, "duplicate id is ignored")
	assert.Equal(t, "content of q2", got[1].Content)

	got = s.AddFavorite(ctx, "alice", domain.Quote{ID: "bad", Content: "no author"})
	assert.Len(t, got, 3, "invalid quote is ignored")

	assert.True(t, s.IsFavorite(ctx, "alice", "q2"))

	got = s.RemoveFavorite(ctx, "alice", "q2")
	assert.Equal(t, []domain.Quote{*quote("q1"), *quote("q3")}, got)
	assert.False(t, s.IsFavorite(ctx, "alice", "q2"))

	got = s.RemoveFavorite(ctx, "alice", "missing")
	assert.Len(t, got, 2)
}

func TestPreferenceStore_ConcurrentFavoritesAreSerialized(t *testing.T) {
	s := newTestStore(newMemKV(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() { s.AddFavorite(ctx, "alice", *quote(fmt.Sprintf("q%02d", i))) })
	}
	wg.Wait()

	assert.Len(t, s.Read(ctx, "alice").Favorites, 20)
}

// gatedKV holds Set for one key until release is closed.
type gatedKV struct {
	*memKV

	key     string
	entered chan struct{}
	release chan struct{}
}

func (g *gatedKV) Set(ctx context.Context, key, value string) error {
	if key == g.key {
		close(g.entered)
		<-g.release
	}

	return g.memKV.Set(ctx, key, value)
}

func TestPreferenceStore_ProfilesLockIndependently(t *testing.T) {
	kv := &gatedKV{
		memKV:   newMemKV(),
		key:     DefaultNamespace + ":alice",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := newTestStore(kv, nil)
	ctx := context.Background()

	aliceDone := make(chan struct{})
	go func() {
		defer close(aliceDone)
		s.Write(ctx, "alice", domain.PreferencesPatch{Theme: ptr(domain.ThemeDark)})
	}()

	<-kv.entered

	bobDone := make(chan struct{})
	go func() {
		defer close(bobDone)
		s.Write(ctx, "bob", domain.PreferencesPatch{Theme: ptr(domain.ThemeDark)})
	}()

	select {
	case <-bobDone:
	case <-time.After(2 * time.Second):
		t.Fatal("write for bob waited on alice's lock")
	}

	close(kv.release)
	<-aliceDone

	assert.Equal(t, domain.ThemeDark, s.Read(ctx, "alice").Theme)
	assert.Equal(t, domain.ThemeDark, s.Read(ctx, "bob").Theme)
}

func TestPreferenceStore_DecodesStoredDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want func(*domain.PreferenceRecord)
	}{
		{
			name: "partial document merges over defaults",
			raw:  `{"theme":"dark","favorites":[{"_id":"q1","content":"c","author":"a","tags":["x"]}]}`,
			want: func(r *domain.PreferenceRecord) {
				r.Theme = domain.ThemeDark
				r.Favorites = []domain.Quote{{ID: "q1", Content: "c", Author: "a", Tags: []string{"x"}}}
			},
		},
		{
			name: "null favorites become empty",
			raw:  `{"favorites":null,"lastQuote":null}`,
			want: func(*domain.PreferenceRecord) {},
		},
		{
			name: "out of range values fall back",
			raw:  `{"theme":"blue","fontSize":"xl","accentColor":"red","notificationTime":"9am","notificationsEnabled":true}`,
			want: func(r *domain.PreferenceRecord) { r.NotificationsEnabled = true },
		},
		{
			name: "invalid and duplicate favorites are dropped",
			raw:  `{"favorites":[{"_id":"a","content":"x","author":"y"},{"_id":"b","content":""},{"_id":"a","content":"z","author":"w"}]}`,
			want: func(r *domain.PreferenceRecord) {
				r.Favorites = []domain.Quote{{ID: "a", Content: "x", Author: "y"}}
			},
		},
		{
			name: "cached quote of the day",
			raw:  `{"lastQuoteDate":"2026-10-18","lastQuote":{"_id":"fallback-3","content":"c","author":"a"}}`,
			want: func(r *domain.PreferenceRecord) {
				r.LastQuoteDate = "2026-10-18"
				r.LastQuote = &domain.Quote{ID: "fallback-3", Content: "c", Author: "a"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			require.NoError(t, kv.Set(context.Background(), "dailyMotivationApp:alice", tt.raw))

			want := domain.DefaultPreferences()
			tt.want(&want)

			got := newTestStore(kv, nil).Read(context.Background(), "alice")
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreferenceStore_MalformedDocumentReadsAsDefaults(t *testing.T) {
	kv := newMemKV()
	require.NoError(t, kv.Set(context.Background(), "dailyMotivationApp:alice", "{not json"))

	m := metrics.NewUnregistered()
	s := newTestStore(kv, m)

	assert.Equal(t, domain.DefaultPreferences(), s.Read(context.Background(), "alice"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreFailures.WithLabelValues("decode")), 0)

	got := s.Write(context.Background(), "alice", domain.PreferencesPatch{FontSize: ptr(domain.FontSizeSmall)})
	assert.Equal(t, domain.FontSizeSmall, got.FontSize, "a write replaces the malformed document")
}

func TestPreferenceStore_BackendFailuresAreSwallowed(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Capability().Return(ports.Available)
	kv.EXPECT().Get(mock.Anything, "dailyMotivationApp:alice").Return("", false, errors.New("disk I/O error"))
	kv.EXPECT().Set(mock.Anything, "dailyMotivationApp:alice", mock.Anything).
		Return(fmt.Errorf("value too large: %w", domain.ErrQuotaExceeded))
	kv.EXPECT().Delete(mock.Anything, "dailyMotivationApp:alice").Return(errors.New("readonly database"))

	m := metrics.NewUnregistered()
	s := newTestStore(kv, m)
	ctx := context.Background()

	assert.Equal(t, domain.DefaultPreferences(), s.Read(ctx, "alice"))

	got := s.Write(ctx, "alice", domain.PreferencesPatch{Theme: ptr(domain.ThemeDark)})
	assert.Equal(t, domain.ThemeLight, got.Theme, "failed write reports the unchanged record")

	s.Clear(ctx, "alice")

	assert.InDelta(t, 2, testutil.ToFloat64(m.StoreFailures.WithLabelValues("read")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreFailures.WithLabelValues("write")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreFailures.WithLabelValues("clear")), 0)
}

func TestPreferenceStore_UnavailableBackendIsNoOp(t *testing.T) {
	kv := mocks.NewMockKeyValueStore(t)
	kv.EXPECT().Capability().Return(ports.Unavailable)

	s := newTestStore(kv, nil)
	ctx := context.Background()

	got := s.Write(ctx, "alice", domain.PreferencesPatch{Theme: ptr(domain.ThemeDark)})
	s.AddFavorite(ctx, "alice", *quote("q1"))
	s.Clear(ctx, "alice")

	assert.Equal(t, domain.DefaultPreferences(), got)
	assert.False(t, s.IsFavorite(ctx, "alice", "q1"))
	assert.Equal(t, ports.Unavailable, s.Capability())
}

func TestPreferenceStore_Key(t *testing.T) {
	assert.Equal(t, "dailyMotivationApp:alice", newTestStore(newMemKV(), nil).Key("alice"))

	custom := NewPreferenceStore(PreferenceStoreConfig{Store: newMemKV(), Namespace: "tenant"})
	assert.Equal(t, "tenant:default", custom.Key("default"))

	assert.Panics(t, func() { NewPreferenceStore(PreferenceStoreConfig{}) })
}

func TestEncodeRecord_UsesStoredLayout(t *testing.T) {
	rec := domain.DefaultPreferences()
	rec.Favorites = []domain.Quote{{ID: "q1", Content: "c", Author: "a"}}

	raw, err := encodeRecord(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"favorites":[{"_id":"q1","content":"c","author":"a"}],
		"theme":"light","fontSize":"medium","accentColor":"#6C5CE7",
		"notificationsEnabled":false,"notificationTime":"09:00",
		"lastQuoteDate":"","lastQuote":null
	}`, raw)
}
