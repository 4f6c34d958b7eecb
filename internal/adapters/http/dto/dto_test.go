package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[string]int{
		ErrorCodeNotFound:      http.StatusNotFound,
		ErrorCodeValidation:    http.StatusBadRequest,
		ErrorCodeBadRequest:    http.StatusBadRequest,
		ErrorCodeForbidden:     http.StatusForbidden,
		ErrorCodeUnauthorized:  http.StatusUnauthorized,
		ErrorCodeUnavailable:   http.StatusServiceUnavailable,
		ErrorCodeQuotaExceeded: http.StatusInsufficientStorage,
		ErrorCodeTimeout:       http.StatusGatewayTimeout,
		ErrorCodeInternal:      http.StatusInternalServerError,
		"SOMETHING_ELSE":       http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, HTTPStatusFromCode(code))
		})
	}
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{name: "none", setup: func(*gin.Context) {}, want: ""},
		{name: "context value", setup: func(c *gin.Context) { c.Set("trace_id", "ctx-1") }, want: "ctx-1"},
		{name: "request id header", setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "hdr-1") }, want: "hdr-1"},
		{
			name: "context value wins over header",
			setup: func(c *gin.Context) {
				c.Set("trace_id", "ctx-1")
				c.Request.Header.Set("X-Request-ID", "hdr-1")
			},
			want: "ctx-1",
		},
		{name: "wrong type", setup: func(c *gin.Context) { c.Set("trace_id", 42) }, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t, http.MethodGet, "/", "")
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError("athlete", "usain-bolt"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "athlete",
		},
		{
			name:        "domain validation carries field",
			err:         domain.NewValidationError("theme", "must be one of: light dark"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "theme",
			wantDetails: map[string]string{"theme": "must be one of: light dark"},
		},
		{
			name:        "forbidden",
			err:         domain.NewForbiddenError("schedule", "notifications are disabled"),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: "disabled",
		},
		{
			name:        "unavailable hides reason",
			err:         fmt.Errorf("notify: %w", domain.NewUnavailableError("notifier", "dial tcp refused")),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "notifier is temporarily unavailable",
		},
		{
			name:        "quota",
			err:         fmt.Errorf("set: %w", domain.ErrQuotaExceeded),
			wantStatus:  http.StatusInsufficientStorage,
			wantCode:    ErrorCodeQuotaExceeded,
			wantMessage: "quota",
		},
		{
			name:        "binding",
			err:         fmt.Errorf("%w: unexpected EOF", ErrBinding),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeBadRequest,
			wantMessage: "malformed",
		},
		{
			name:        "unknown is generic",
			err:         errors.New("sql: database is locked"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(t, http.MethodGet, "/", "")
			c.Set("trace_id", "trace-1")

			HandleError(c, tt.err)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestMapDomainError_Nil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestAbortWithCode(t *testing.T) {
	c, w := newContext(t, http.MethodGet, "/", "")

	AbortWithCode(c, ErrorCodeUnauthorized, "authentication required")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	id := func(s string) string { return s }

	first, err := Paginate(items, PaginationRequest{Limit: 2}, DefaultLimit, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first.Items)
	assert.True(t, first.HasMore)
	assert.Equal(t, 5, first.Total)

	second, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: first.NextCursor}, DefaultLimit, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, second.Items)

	last, err := Paginate(items, PaginationRequest{Limit: 2, Cursor: second.NextCursor}, DefaultLimit, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, last.Items)
	assert.False(t, last.HasMore)
	assert.Empty(t, last.NextCursor)

	t.Run("default limit", func(t *testing.T) {
		page, err := Paginate(items, PaginationRequest{}, 3, id)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
	})

	t.Run("empty list", func(t *testing.T) {
		page, err := Paginate([]string{}, PaginationRequest{}, 3, id)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.False(t, page.HasMore)
	})

	t.Run("cursor from changed list", func(t *testing.T) {
		_, err := Paginate([]string{"x", "y", "z"}, PaginationRequest{Cursor: first.NextCursor}, 2, id)
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		_, err := Paginate(items, PaginationRequest{Cursor: "%%%"}, 2, id)
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})

	t.Run("cursor past end", func(t *testing.T) {
		cur := EncodeCursor(NewCursor("offset", "9", "e"))
		_, err := Paginate(items, PaginationRequest{Cursor: cur}, 2, id)
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})
}

func TestGetLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultLimit},
		{-1, DefaultLimit},
		{50, 50},
		{150, MaxLimit},
	}

	for _, tt := range tests {
		p := PaginationRequest{Limit: tt.limit}
		assert.Equal(t, tt.want, p.GetLimit(), "limit %d", tt.limit)
	}
}

func TestDecodeCursor(t *testing.T) {
	_, err := DecodeCursor("")
	require.ErrorIs(t, err, ErrNoCursor)

	got, err := DecodeCursor(EncodeCursor(NewCursor("offset", "12", "art-3-x")))
	require.NoError(t, err)
	assert.Equal(t, &CursorData{Field: "offset", Value: "12", ID: "art-3-x"}, got)

	assert.Empty(t, EncodeCursor(nil))
}

func TestBindAndValidate_PreferencesPatch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    error
		wantFields []string
	}{
		{
			name: "valid partial patch",
			body: `{"theme":"dark","notificationTime":"07:30"}`,
		},
		{
			name: "valid favorites",
			body: `{"favorites":[{"id":"q1","content":"Keep going.","author":"Anon"}]}`,
		},
		{
			name:       "bad enums and formats",
			body:       `{"theme":"blue","fontSize":"huge","accentColor":"purple","notificationTime":"25:00"}`,
			wantErr:    ErrValidation,
			wantFields: []string{"theme", "fontSize", "accentColor", "notificationTime"},
		},
		{
			name:       "favorite without author",
			body:       `{"favorites":[{"id":"q1","content":"Keep going.","author":"  "}]}`,
			wantErr:    ErrValidation,
			wantFields: []string{"author"},
		},
		{
			name:    "duplicate favorite ids",
			body:    `{"favorites":[{"id":"q1","content":"a","author":"b"},{"id":"q1","content":"c","author":"d"}]}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "malformed json",
			body:    `{"theme":`,
			wantErr: ErrBinding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(t, http.MethodPatch, "/api/v1/preferences", tt.body)

			var req PreferencesPatchRequest

			err := BindAndValidate(c, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)

			fields := ValidationErrors(err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestPreferencesPatchRequest_ToDomain(t *testing.T) {
	theme, size, enabled := "dark", "large", true
	req := PreferencesPatchRequest{
		Theme:                &theme,
		FontSize:             &size,
		NotificationsEnabled: &enabled,
		Favorites:            &[]QuoteBody{{ID: "q1", Content: "c", Author: "a"}},
	}

	got := req.ToDomain().Apply(domain.DefaultPreferences())

	assert.Equal(t, domain.ThemeDark, got.Theme)
	assert.Equal(t, domain.FontSizeLarge, got.FontSize)
	assert.True(t, got.NotificationsEnabled)
	assert.Equal(t, []domain.Quote{{ID: "q1", Content: "c", Author: "a"}}, got.Favorites)
	assert.Equal(t, domain.DefaultAccentColor, got.AccentColor)
}

func TestPreferencesPatchRequest_ClearLastQuote(t *testing.T) {
	c, _ := newContext(t, http.MethodPatch, "/api/v1/preferences", `{"clearLastQuote":true}`)

	var req PreferencesPatchRequest
	require.NoError(t, BindAndValidate(c, &req))

	base := domain.DefaultPreferences()
	base.LastQuoteDate = "2026-10-18"
	base.LastQuote = &domain.Quote{ID: "q1", Content: "c", Author: "a"}

	got := req.ToDomain().Apply(base)

	assert.Nil(t, got.LastQuote)
	assert.Equal(t, "2026-10-18", got.LastQuoteDate)
}

func TestBindQueryAndValidate_CatalogSearch(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/api/v1/catalog/quotes?q=Dream&category=sports&sort=za&limit=5", "")

	var req CatalogSearchRequest
	require.NoError(t, BindQueryAndValidate(c, &req))

	assert.Equal(t, domain.CatalogQuery{Text: "Dream", Category: "sports", Sort: domain.SortAuthorDesc}, req.ToDomain())
	assert.Equal(t, 5, req.Limit)

	c, _ = newContext(t, http.MethodGet, "/api/v1/catalog/quotes?sort=up", "")
	err := BindQueryAndValidate(c, &CatalogSearchRequest{})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "must be one of: az za", ValidationErrors(err)["sort"])
}

func TestValidationMessages(t *testing.T) {
	type sample struct {
		Name  string `json:"name"  validate:"min=3"`
		Count int    `json:"count" validate:"max=2"`
		Odd   string `json:"odd"   validate:"alpha"`
	}

	fields := ValidationErrors(Validate(&sample{Name: "ab", Count: 5, Odd: "1"}))

	assert.Equal(t, "must be at least 3 characters", fields["name"])
	assert.Equal(t, "must be at most 2", fields["count"])
	assert.Equal(t, "failed validation: alpha", fields["odd"])
	assert.Empty(t, ValidationErrors(errors.New("plain")))
}

func TestShareRequest_Validation(t *testing.T) {
	valid := ShareRequest{Quote: QuoteBody{ID: "q", Content: "c", Author: "a"}, Platform: "twitter"}
	require.NoError(t, Validate(&valid))

	invalid := ShareRequest{Quote: QuoteBody{ID: "q", Content: "c", Author: "a"}, Platform: "myspace"}
	err := Validate(&invalid)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "must be one of: twitter facebook instagram copy native", ValidationErrors(err)["platform"])
}
