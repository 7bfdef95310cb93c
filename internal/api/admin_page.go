package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwellpress/publisher-backend/internal/auth"
	"github.com/inkwellpress/publisher-backend/internal/guard"
)

const (
	signInPath = "/signin"
	deniedPath = "/denied"
)

// redirectNavigator adapts gin's redirect to the guard's Navigator.
type redirectNavigator struct {
	c *gin.Context
}

func (n *redirectNavigator) Navigate(path string) {
	n.c.Redirect(http.StatusFound, path)
}

// AdminPage gates the back-office entry view. Anonymous visitors are
// redirected to sign-in, authenticated non-admins to the access-denied
// view; admins get the dashboard payload. Must be mounted behind
// auth.AuthOptional so the principal resolves without aborting.
func AdminPage(classifier *auth.AdminClassifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		g := guard.NewRouteGuard(classifier, &redirectNavigator{c: c}, signInPath, deniedPath)

		sess := guard.Session{Loaded: true}
		if email := auth.GetUserEmail(c); email != "" {
			sess.Principal = &guard.Principal{
				ID:     auth.GetUserID(c),
				Emails: []string{email},
			}
		}

		if g.Observe(sess) == guard.StateAuthorized {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
}
