package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks catalog listings as cacheable for the given
// number of seconds so browsers and CDNs can reuse them.
func CacheControlMiddleware(maxAgeSeconds string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+maxAgeSeconds)
		c.Next()
	}
}
