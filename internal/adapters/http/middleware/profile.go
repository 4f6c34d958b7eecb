package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
	"github.com/jsamuelsen/daily-motivation/internal/platform/config"
	"github.com/jsamuelsen/daily-motivation/internal/platform/logging"
)

const (
	// ContextKeyProfile is the gin context key of the resolved preference profile.
	ContextKeyProfile = "profile"

	defaultSubjectHeader = "X-User-ID"
)

// SubjectHeader returns the header naming the profile. The gateway in front
// of the service is responsible for authenticating it.
func SubjectHeader(cfg *config.AuthConfig) string {
	if cfg != nil && cfg.SubjectHeader != "" {
		return cfg.SubjectHeader
	}

	return defaultSubjectHeader
}

// Profile resolves which PreferenceRecord a request operates on.
//
// The subject header names the profile. When auth is enabled the header is
// mandatory; otherwise requests without it share domain.DefaultProfile.
func Profile(cfg *config.AuthConfig) gin.HandlerFunc {
	required := cfg != nil && cfg.Enabled

	return func(c *gin.Context) {
		profile := strings.TrimSpace(c.GetHeader(SubjectHeader(cfg)))
		if profile == "" {
			if required {
				dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "authentication required")
				return
			}

			profile = domain.DefaultProfile
		}

		if err := domain.ValidateProfile(profile); err != nil {
			dto.AbortWithError(c, err)
			return
		}

		c.Set(ContextKeyProfile, profile)

		ctx := ContextWithProfile(c.Request.Context(), profile)
		c.Request = c.Request.WithContext(logging.WithProfile(ctx, profile))

		c.Next()
	}
}

// GetProfile returns the profile resolved by Profile, defaulting to
// domain.DefaultProfile when the middleware was not installed.
func GetProfile(c *gin.Context) string {
	if p := c.GetString(ContextKeyProfile); p != "" {
		return p
	}

	return domain.DefaultProfile
}
