package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/models"
)

const credentialsNotProvided = "Authentication credentials were not provided."

// authRequired verifies the bearer token on every request; there is no
// server-side session. On success the principal and the raw key are put
// into the request context so responses can echo the token back.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": credentialsNotProvided,
				"token":  nil,
			})
			return
		}

		user, key, err := s.gate.Authenticate(c.Request.Context(), header)
		if err != nil {
			if !auth.IsAuthFailure(err) {
				s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("principal lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"errors": "Internal server error.",
					"token":  nil,
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": err.Error(),
				"token":  nil,
			})
			return
		}

		c.Set("currentUser", user)
		c.Set("token", key)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
