package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/service"
)

// Every response carries the data (or errors) under its namespace plus
// the token: the one presented with the request, or a fresh one for
// signup/signin. Clients chain requests without signing in again.

func (s *Server) respond(c *gin.Context, status int, namespace string, data any) {
	c.JSON(status, gin.H{namespace: data, "token": currentToken(c)})
}

func (s *Server) respondErrors(c *gin.Context, status int, errs any) {
	c.JSON(status, gin.H{"errors": errs, "token": currentToken(c)})
}

// respondFailure maps a service error onto the wire: accumulated
// validation maps are 400, the fatal classes carry their single message.
func (s *Server) respondFailure(c *gin.Context, err error) {
	var verr *service.ValidationError
	var nferr *service.NotFoundError
	var fberr *service.ForbiddenError

	switch {
	case errors.As(err, &verr):
		s.respondErrors(c, http.StatusBadRequest, verr.Errors)
	case errors.As(err, &nferr):
		s.respondErrors(c, http.StatusNotFound, err.Error())
	case errors.As(err, &fberr):
		s.respondErrors(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrCredentialsMismatch):
		s.respondErrors(c, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		s.respondErrors(c, http.StatusInternalServerError, "Internal server error.")
	}
}

func currentToken(c *gin.Context) any {
	if v, ok := c.Get("token"); ok {
		return v
	}
	return nil
}
