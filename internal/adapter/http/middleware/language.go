package middleware

import (
	"taskstats/pkg/translator"

	"github.com/gin-gonic/gin"
)

// LanguageMiddleware resolves the response language from Accept-Language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", translator.MatchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
