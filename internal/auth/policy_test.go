package auth

import (
	"net/http"
	"testing"

	"github.com/GiannisClipper/payments/internal/models"
)

func TestCanAccess(t *testing.T) {
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	admin := &models.User{ID: 3, IsStaff: true}

	cases := []struct {
		name      string
		principal *models.User
		ownerID   uint
		method    string
		want      bool
	}{
		{"owner reads own", owner, 1, http.MethodGet, true},
		{"owner updates own", owner, 1, http.MethodPatch, true},
		{"other denied", other, 1, http.MethodGet, false},
		{"admin reads any", admin, 1, http.MethodGet, true},
		{"admin deletes any", admin, 1, http.MethodDelete, true},
		{"post always denied", admin, 3, http.MethodPost, false},
		{"nil principal denied", nil, 1, http.MethodGet, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccess(tc.principal, tc.ownerID, tc.method); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
