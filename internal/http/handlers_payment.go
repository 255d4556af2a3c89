package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/auth"
	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
)

func (s *Server) fetchPayment(c *gin.Context) (*models.Payment, bool) {
	id, ok := s.paramID(c)
	if !ok {
		return nil, false
	}
	payment, err := s.payments.Get(c.Request.Context(), id)
	if err != nil {
		s.respondFailure(c, err)
		return nil, false
	}
	if !auth.CanAccess(currentUser(c), payment.UserID, c.Request.Method) {
		s.respondErrors(c, http.StatusForbidden, auth.PermissionDenied)
		return nil, false
	}
	return payment, true
}

func (s *Server) createPayment(c *gin.Context) {
	entity, ok := s.bindEnvelope(c, "payment")
	if !ok {
		return
	}
	in, errs := paymentInput(entity)
	if errs.Any() {
		s.respondErrors(c, http.StatusBadRequest, errs)
		return
	}

	payment, err := s.payments.Create(c.Request.Context(), in, currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusCreated, "payment", paymentJSON(payment))
}

func (s *Server) listPayments(c *gin.Context) {
	crit := filter.ParsePayments(c.QueryArray("filters"))

	payments, err := s.payments.List(c.Request.Context(), crit, currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "payments", paymentsJSON(payments))
}

func (s *Server) getPayment(c *gin.Context) {
	payment, ok := s.fetchPayment(c)
	if !ok {
		return
	}
	s.respond(c, http.StatusOK, "payment", paymentJSON(payment))
}

func (s *Server) updatePayment(c *gin.Context) {
	payment, ok := s.fetchPayment(c)
	if !ok {
		return
	}

	entity, ok := s.bindEnvelope(c, "payment")
	if !ok {
		return
	}
	in, errs := paymentInput(entity)
	if errs.Any() {
		s.respondErrors(c, http.StatusBadRequest, errs)
		return
	}

	updated, err := s.payments.Update(c.Request.Context(), payment, in, currentUser(c))
	if err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "payment", paymentJSON(updated))
}

func (s *Server) deletePayment(c *gin.Context) {
	payment, ok := s.fetchPayment(c)
	if !ok {
		return
	}

	if err := s.payments.Delete(c.Request.Context(), payment); err != nil {
		s.respondFailure(c, err)
		return
	}
	s.respond(c, http.StatusOK, "payment", gin.H{})
}
