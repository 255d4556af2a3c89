package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/models"
)

const resourceNotFound = "Not found."

// paramID parses the :id path parameter; a malformed id reads as a
// resource that does not exist.
func (s *Server) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		s.respondErrors(c, http.StatusNotFound, resourceNotFound)
		return 0, false
	}
	return uint(id), true
}

func (s *Server) signup(c *gin.Context) {
	entity, ok := s.bindEnvelope(c, "user")
	if !ok {
		return
	}

	user, err := s.users.Signup(c.Request.Context(), userInput(entity))
	if err != nil {
		s.respondFailure(c, err)
		return
	}

	if !s.issueToken(c, user) {
		return
	}
	s.respond(c, http.StatusCreated, "user", userJSON(user))
}

func (s *Server) signin(c *gin.Context) {
	entity, ok := s.bindEnvelope(c, "user")
	if !ok {
		return
	}

	username, password := "", ""
	if v := optString(entity, "username"); v != nil {
		username = *v
	}
	if v := optString(entity, "password"); v != nil {
		password = *v
	}

	user, err := s.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		s.respondFailure(c, err)
		return
	}

	if !s.issueToken(c, user) {
		return
	}
	s.respond(c, http.StatusOK, "user", userJSON(user))
}

func (s *Server) issueToken(c *gin.Context, user *models.User) bool {
	key, err := s.codec.Issue(user.ID)
	if err != nil {
		s.respondFailure(c, err)
		return false
	}
	c.Set("token", key)
	return true
}

func (s *Server) listUsers(c *gin.Context) {
	principal := currentUser(c)
	if !principal.IsStaff {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return
	}

	users, err := s.users.List(c.Request.Context())
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "users", usersJSON(users))
}

func (s *Server) getCurrentUser(c *gin.Context) {
	s.respond(c, http.StatusOK, "user", userJSON(currentUser(c)))
}

func (s *Server) updateCurrentUser(c *gin.Context) {
	principal := currentUser(c)

	entity, ok := s.bindEnvelope(c, "user")
	if !ok {
		return
	}

	user, err := s.users.Update(c.Request.Context(), principal, userInput(entity), principal)
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "user", userJSON(user))
}

// deleteCurrentUser requires the credentials again in the request body;
// a valid token alone is not enough to destroy the account.
func (s *Server) deleteCurrentUser(c *gin.Context) {
	principal := currentUser(c)

	entity, ok := s.bindEnvelope(c, "user")
	if !ok {
		return
	}
	s.deleteWithCredentials(c, principal, entity)
}

func (s *Server) getUser(c *gin.Context) {
	principal := currentUser(c)

	id, ok := s.paramID(c)
	if !ok {
		return
	}
	user, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	if !auth.CanAccess(principal, user.ID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return
	}

	s.respond(c, http.StatusOK, "user", userJSON(user))
}

func (s *Server) updateUser(c *gin.Context) {
	principal := currentUser(c)

	id, ok := s.paramID(c)
	if !ok {
		return
	}
	user, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	if !auth.CanAccess(principal, user.ID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return
	}

	entity, ok := s.bindEnvelope(c, "user")
	if !ok {
		return
	}

	updated, err := s.users.Update(c.Request.Context(), user, userInput(entity), principal)
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "user", userJSON(updated))
}

func (s *Server) deleteUser(c *gin.Context) {
	principal := currentUser(c)

	id, ok := s.paramID(c)
	if !ok {
		return
	}
	user, err := s.users.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	if !auth.CanAccess(principal, user.ID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return
	}

	// Deleting oneself always re-authenticates; an admin removing
	// another account does not hold its credentials.
	if user.ID == principal.ID {
		entity, ok := s.bindEnvelope(c, "user")
		if !ok {
			return
		}
		s.deleteWithCredentials(c, user, entity)
		return
	}

	if err := s.users.Delete(c.Request.Context(), user); err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "user", gin.H{})
}

func (s *Server) deleteWithCredentials(c *gin.Context, user *models.User, entity map[string]any) {
	username, password := "", ""
	if v := optString(entity, "username"); v != nil {
		username = *v
	}
	if v := optString(entity, "password"); v != nil {
		password = *v
	}

	if err := s.users.DeleteSelf(c.Request.Context(), user, username, password); err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "user", gin.H{})
}
