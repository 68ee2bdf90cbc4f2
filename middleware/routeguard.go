package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/auth"
)

const (
	adminPrefix = "/admin"
	loginPath   = "/admin/login"
	signupPath  = "/admin/signup"
	dashPath    = "/admin"
)

// Decision is the route guard's verdict for one request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide is the guard predicate: admin paths need the session cookie
// (login and signup stay open), and an authenticated visit to the login
// page bounces to the dashboard.
func Decide(cookiePresent bool, path string) Decision {
	isAdminRoute := strings.HasPrefix(path, adminPrefix)
	isLoginPage := path == loginPath
	isSignupPage := path == signupPath

	if isAdminRoute && !cookiePresent && !isLoginPage && !isSignupPage {
		return Decision{RedirectTo: loginPath}
	}
	if isLoginPage && cookiePresent {
		return Decision{RedirectTo: dashPath}
	}
	return Decision{Allow: true}
}

// AdminRouteGuard applies Decide to incoming requests using the auth
// cookie.
func AdminRouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := c.Cookie(auth.AuthCookieName)
		decision := Decide(err == nil, c.Request.URL.Path)
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
