package http

import (
	"github.com/gin-gonic/gin"

	"github.com/GiannisClipper/payments/internal/models"
)

const dateLayout = "2006-01-02"

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"is_admin":  u.IsStaff,
		"is_active": u.IsActive,
	}
}

func fundJSON(f *models.Fund) gin.H {
	return gin.H{
		"id":   f.ID,
		"user": gin.H{"id": f.UserID, "username": f.User.Username},
		"code": f.Code,
		"name": f.Name,
	}
}

func genreJSON(g *models.Genre) gin.H {
	h := gin.H{
		"id":          g.ID,
		"user":        gin.H{"id": g.UserID, "username": g.User.Username},
		"code":        g.Code,
		"name":        g.Name,
		"is_incoming": g.IsIncoming,
		"fund":        nil,
	}
	if g.Fund != nil {
		h["fund"] = gin.H{"id": g.Fund.ID, "name": g.Fund.Name}
	}
	return h
}

func paymentJSON(p *models.Payment) gin.H {
	return gin.H{
		"id":       p.ID,
		"user":     gin.H{"id": p.UserID, "username": p.User.Username},
		"date":     p.Date.Format(dateLayout),
		"genre":    gin.H{"id": p.GenreID, "name": p.Genre.Name},
		"incoming": p.Incoming,
		"outgoing": p.Outgoing,
		"fund":     gin.H{"id": p.FundID, "name": p.Fund.Name},
		"remarks":  p.Remarks,
	}
}

func usersJSON(users []models.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	return out
}

func fundsJSON(funds []models.Fund) []gin.H {
	out := make([]gin.H, 0, len(funds))
	for i := range funds {
		out = append(out, fundJSON(&funds[i]))
	}
	return out
}

func genresJSON(genres []models.Genre) []gin.H {
	out := make([]gin.H, 0, len(genres))
	for i := range genres {
		out = append(out, genreJSON(&genres[i]))
	}
	return out
}

func paymentsJSON(payments []models.Payment) []gin.H {
	out := make([]gin.H, 0, len(payments))
	for i := range payments {
		out = append(out, paymentJSON(&payments[i]))
	}
	return out
}
