package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

func TestShareHandler_Share(t *testing.T) {
	quote := map[string]any{"id": "q-7", "content": "Keep going", "author": "Ann"}

	tests := []struct {
		name           string
		body           any
		expectedStatus int
		check          func(*testing.T, dto.ShareResponse)
	}{
		{
			name:           "twitter",
			body:           map[string]any{"quote": quote, "platform": "twitter"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, r dto.ShareResponse) {
				t.Helper()
				assert.Equal(t, "“Keep going” — Ann", r.Text)
				assert.Equal(t, "https://motivation.example/athletes#q-7", r.URL)
				assert.Contains(t, r.Target, "https://twitter.com/intent/tweet?text=")
			},
		},
		{
			name:           "copy targets the permalink",
			body:           map[string]any{"quote": quote, "platform": "copy"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, r dto.ShareResponse) {
				t.Helper()
				assert.Equal(t, r.URL, r.Target)
			},
		},
		{
			name:           "instagram falls back to copy",
			body:           map[string]any{"quote": quote, "platform": "instagram"},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, r dto.ShareResponse) {
				t.Helper()
				assert.Empty(t, r.Target)
				assert.Equal(t, domain.InstagramFallbackMessage, r.Message)
			},
		},
		{
			name:           "unknown platform",
			body:           map[string]any{"quote": quote, "platform": "myspace"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "incomplete quote",
			body:           map[string]any{"quote": map[string]any{"id": "q-7", "content": "Keep going"}, "platform": "copy"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)

			w := f.do(t, http.MethodPost, "/api/v1/share", "", tt.body)
			assertStatus(t, tt.expectedStatus, w)

			if tt.check == nil {
				assert.Equal(t, dto.ErrorCodeValidation, decode[dto.ErrorResponse](t, w).Error.Code)
				return
			}

			tt.check(t, decode[dto.ShareResponse](t, w))
		})
	}
}
