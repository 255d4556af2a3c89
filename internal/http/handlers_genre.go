package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

func (s *Server) fetchGenre(c *gin.Context) (*models.Genre, bool) {
	id, ok := s.paramID(c)
	if !ok {
		return nil, false
	}
	genre, err := s.genres.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return nil, false
	}
	if !auth.CanAccess(currentUser(c), genre.UserID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return nil, false
	}
	return genre, true
}

func (s *Server) createGenre(c *gin.Context) {
	entity, ok := s.bindEnvelope(c, "genre")
	if !ok {
		return
	}

	genre, err := s.genres.Create(c.Request.Context(), genreInput(entity), currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusCreated, "genre", genreJSON(genre))
}

func (s *Server) listGenres(c *gin.Context) {
	crit := filter.ParseGenres(c.QueryArray("filters"))

	genres, err := s.genres.List(c.Request.Context(), crit, currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "genres", genresJSON(genres))
}

func (s *Server) getGenre(c *gin.Context) {
	genre, ok := s.fetchGenre(c)
	if !ok {
		return
	}
	s.respond(c, http.StatusOK, "genre", genreJSON(genre))
}

func (s *Server) updateGenre(c *gin.Context) {
	genre, ok := s.fetchGenre(c)
	if !ok {
		return
	}

	entity, ok := s.bindEnvelope(c, "genre")
	if !ok {
		return
	}

	updated, err := s.genres.Update(c.Request.Context(), genre, genreInput(entity), currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "genre", genreJSON(updated))
}

func (s *Server) deleteGenre(c *gin.Context) {
	genre, ok := s.fetchGenre(c)
	if !ok {
		return
	}

	if err := s.genres.Delete(c.Request.Context(), genre); err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "genre", gin.H{})
}
