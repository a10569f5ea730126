// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hazaldoster/beautybot/internal/i18n"
)

// I18nMiddleware resolves the response language from the Accept-Language
// header, defaulting to the catalog's own language.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DefaultLocale

		// Handle cases like "tr-TR,tr;q=0.9,en;q=0.8"
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			switch {
			case strings.HasPrefix(first, "tr"):
				lang = "tr"
			case strings.HasPrefix(first, "en"):
				lang = "en"
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
