package middleware

import (
	"slices"

	"gin-storefront/internal/pkg/config"
	"gin-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	ctxLocaleKey = "locale"
	localeParam  = "locale"
)

// LocaleResolver decides the active locale of a page request.
type LocaleResolver struct {
	defaultLocale string
	// supported locales, default first so the matcher falls back to it
	supported []string
	matcher   language.Matcher
}

func NewLocaleResolver(cfg config.LocaleConfig) *LocaleResolver {
	supported := make([]string, 0, len(cfg.Supported))
	supported = append(supported, cfg.Default)
	for _, l := range cfg.Supported {
		if l != cfg.Default {
			supported = append(supported, l)
		}
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tags = append(tags, language.Make(l))
	}

	return &LocaleResolver{
		defaultLocale: cfg.Default,
		supported:     supported,
		matcher:       language.NewMatcher(tags),
	}
}

func (r *LocaleResolver) Default() string {
	return r.defaultLocale
}

func (r *LocaleResolver) IsSupported(locale string) bool {
	return slices.Contains(r.supported, locale)
}

// Match picks the supported locale closest to an Accept-Language header,
// or the default locale when nothing is close enough.
func (r *LocaleResolver) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return r.defaultLocale
	}
	_, idx, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.defaultLocale
	}
	return r.supported[idx]
}

// Middleware takes the locale from the :locale path segment. Routes without the
// segment get the default locale; an unsupported segment ends the request as 404.
func (r *LocaleResolver) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param(localeParam)
		if locale == "" {
			locale = r.defaultLocale
		} else if !r.IsSupported(locale) {
			_ = c.Error(errs.Mark(errs.Newf("locale %q", locale), errs.ErrUnsupportedLocale))
			c.Abort()
			return
		}

		c.Set(ctxLocaleKey, locale)
		c.Header("Content-Language", locale)
	}
}

// GetLocale returns the locale set by LocaleResolver.Middleware, or "" before it ran.
func GetLocale(c *gin.Context) string {
	return c.GetString(ctxLocaleKey)
}
