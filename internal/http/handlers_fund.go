package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

// fetchFund loads the fund behind :id and enforces the object-level
// permission for the request method.
func (s *Server) fetchFund(c *gin.Context) (*models.Fund, bool) {
	id, ok := s.paramID(c)
	if !ok {
		return nil, false
	}
	fund, err := s.funds.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return nil, false
	}
	if !auth.CanAccess(currentUser(c), fund.UserID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return nil, false
	}
	return fund, true
}

func (s *Server) createFund(c *gin.Context) {
	entity, ok := s.bindEnvelope(c, "fund")
	if !ok {
		return
	}

	fund, err := s.funds.Create(c.Request.Context(), fundInput(entity), currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusCreated, "fund", fundJSON(fund))
}

func (s *Server) listFunds(c *gin.Context) {
	crit := filter.ParseFunds(c.QueryArray("filters"))

	funds, err := s.funds.List(c.Request.Context(), crit, currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "funds", fundsJSON(funds))
}

func (s *Server) getFund(c *gin.Context) {
	fund, ok := s.fetchFund(c)
	if !ok {
		return
	}
	s.respond(c, http.StatusOK, "fund", fundJSON(fund))
}

func (s *Server) updateFund(c *gin.Context) {
	fund, ok := s.fetchFund(c)
	if !ok {
		return
	}

	entity, ok := s.bindEnvelope(c, "fund")
	if !ok {
		return
	}

	updated, err := s.funds.Update(c.Request.Context(), fund, fundInput(entity), currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "fund", fundJSON(updated))
}

func (s *Server) deleteFund(c *gin.Context) {
	fund, ok := s.fetchFund(c)
	if !ok {
		return
	}

	if err := s.funds.Delete(c.Request.Context(), fund); err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "fund", gin.H{})
}
