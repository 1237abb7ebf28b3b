package middleware

import (
	"github.com/gin-gonic/gin"
)

// Canonical injects the canonical URL for every localized page as a
// Link header. The value is plain concatenation of the site base URL
// and the request path; the current path is trusted as already
// canonical.
func Canonical(siteURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Link", `<`+siteURL+c.Request.URL.Path+`>; rel="canonical"`)
		c.Next()
	}
}
