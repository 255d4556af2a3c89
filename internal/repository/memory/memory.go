// Package memory implements the service store contracts with plain maps.
// It mirrors the relational cascade rules so lifecycle behavior can be
// exercised without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GiannisClipper/payments/internal/filter"
	"github.com/GiannisClipper/payments/internal/models"
	"github.com/GiannisClipper/payments/internal/repository"
)

type Store struct {
	mu sync.Mutex

	users    map[uint]models.User
	funds    map[uint]models.Fund
	genres   map[uint]models.Genre
	payments map[uint]models.Payment

	nextUser    uint
	nextFund    uint
	nextGenre   uint
	nextPayment uint

	// SaveErr, when set, is returned by every Save; tests use it to force
	// the duplicate-insert race path.
	SaveErr error
}

func NewStore() *Store {
	return &Store{
		users:    map[uint]models.User{},
		funds:    map[uint]models.Fund{},
		genres:   map[uint]models.Genre{},
		payments: map[uint]models.Payment{},
	}
}

func (s *Store) Users() *UserStore       { return &UserStore{s} }
func (s *Store) Funds() *FundStore       { return &FundStore{s} }
func (s *Store) Genres() *GenreStore     { return &GenreStore{s} }
func (s *Store) Payments() *PaymentStore { return &PaymentStore{s} }

type UserStore struct{ s *Store }

func (r *UserStore) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserStore) Exists(_ context.Context, match map[string]any, excludeID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == excludeID {
			continue
		}
		ok := true
		for field, value := range match {
			switch field {
			case "username":
				ok = ok && u.Username == value.(string)
			case "email":
				ok = ok && u.Email == value.(string)
			default:
				ok = false
			}
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserStore) Save(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.SaveErr != nil {
		return r.s.SaveErr
	}
	if user.ID == 0 {
		r.s.nextUser++
		user.ID = r.s.nextUser
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserStore) Delete(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, user.ID)
	// Cascade the way the relational constraints do.
	for id, f := range r.s.funds {
		if f.UserID == user.ID {
			delete(r.s.funds, id)
		}
	}
	for id, g := range r.s.genres {
		if g.UserID == user.ID {
			delete(r.s.genres, id)
		}
	}
	for id, p := range r.s.payments {
		if p.UserID == user.ID {
			delete(r.s.payments, id)
		}
	}
	return nil
}

func (r *UserStore) List(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

type FundStore struct{ s *Store }

func (r *FundStore) FindByID(_ context.Context, id uint) (*models.Fund, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.funds[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	f.User = r.s.users[f.UserID]
	return &f, nil
}

func (r *FundStore) Exists(_ context.Context, match map[string]any, excludeID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.funds {
		if f.ID == excludeID {
			continue
		}
		ok := true
		for field, value := range match {
			switch field {
			case "user":
				ok = ok && f.UserID == value.(uint)
			case "code":
				ok = ok && f.Code == value.(string)
			case "name":
				ok = ok && f.Name == value.(string)
			default:
				ok = false
			}
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *FundStore) Save(_ context.Context, fund *models.Fund) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.SaveErr != nil {
		return r.s.SaveErr
	}
	if fund.ID == 0 {
		r.s.nextFund++
		fund.ID = r.s.nextFund
	}
	r.s.funds[fund.ID] = *fund
	return nil
}

func (r *FundStore) Delete(_ context.Context, fund *models.Fund) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.funds, fund.ID)
	for id, g := range r.s.genres {
		if g.FundID != nil && *g.FundID == fund.ID {
			g.FundID = nil
			r.s.genres[id] = g
		}
	}
	return nil
}

func (r *FundStore) List(_ context.Context, crit filter.FundCriteria) ([]models.Fund, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var funds []models.Fund
	for _, f := range r.s.funds {
		if crit.UserID != nil && f.UserID != *crit.UserID {
			continue
		}
		if !matchStringRange(f.Code, crit.Code) {
			continue
		}
		if crit.Name != "" && !strings.Contains(f.Name, crit.Name) {
			continue
		}
		f.User = r.s.users[f.UserID]
		funds = append(funds, f)
	}
	sort.Slice(funds, func(i, j int) bool { return funds[i].ID < funds[j].ID })
	return funds, nil
}

type GenreStore struct{ s *Store }

func (r *GenreStore) FindByID(_ context.Context, id uint) (*models.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.genres[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	g.User = r.s.users[g.UserID]
	if g.FundID != nil {
		if f, ok := r.s.funds[*g.FundID]; ok {
			g.Fund = &f
		}
	}
	return &g, nil
}

func (r *GenreStore) Exists(_ context.Context, match map[string]any, excludeID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.genres {
		if g.ID == excludeID {
			continue
		}
		ok := true
		for field, value := range match {
			switch field {
			case "user":
				ok = ok && g.UserID == value.(uint)
			case "code":
				ok = ok && g.Code == value.(string)
			case "name":
				ok = ok && g.Name == value.(string)
			default:
				ok = false
			}
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *GenreStore) Save(_ context.Context, genre *models.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.SaveErr != nil {
		return r.s.SaveErr
	}
	if genre.ID == 0 {
		r.s.nextGenre++
		genre.ID = r.s.nextGenre
	}
	stored := *genre
	stored.Fund = nil
	r.s.genres[genre.ID] = stored
	return nil
}

func (r *GenreStore) Delete(_ context.Context, genre *models.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.genres, genre.ID)
	for id, p := range r.s.payments {
		if p.GenreID == genre.ID {
			delete(r.s.payments, id)
		}
	}
	return nil
}

func (r *GenreStore) List(_ context.Context, crit filter.GenreCriteria) ([]models.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var genres []models.Genre
	for _, g := range r.s.genres {
		if crit.UserID != nil && g.UserID != *crit.UserID {
			continue
		}
		if !matchStringRange(g.Code, crit.Code) {
			continue
		}
		if crit.Name != "" && !strings.Contains(g.Name, crit.Name) {
			continue
		}
		g.User = r.s.users[g.UserID]
		genres = append(genres, g)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

type PaymentStore struct{ s *Store }

func (r *PaymentStore) FindByID(_ context.Context, id uint) (*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.User = r.s.users[p.UserID]
	p.Genre = r.s.genres[p.GenreID]
	p.Fund = r.s.funds[p.FundID]
	return &p, nil
}

func (r *PaymentStore) Exists(_ context.Context, match map[string]any, excludeID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.ID == excludeID {
			continue
		}
		ok := true
		for field, value := range match {
			switch field {
			case "user":
				ok = ok && p.UserID == value.(uint)
			case "date":
				ok = ok && p.Date.Equal(value.(time.Time))
			case "genre":
				ok = ok && p.GenreID == value.(uint)
			case "fund":
				ok = ok && p.FundID == value.(uint)
			case "incoming":
				ok = ok && p.Incoming == value.(float64)
			case "outgoing":
				ok = ok && p.Outgoing == value.(float64)
			case "remarks":
				ok = ok && p.Remarks == value.(string)
			default:
				ok = false
			}
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *PaymentStore) Save(_ context.Context, payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.SaveErr != nil {
		return r.s.SaveErr
	}
	if payment.ID == 0 {
		r.s.nextPayment++
		payment.ID = r.s.nextPayment
	}
	stored := *payment
	stored.User = models.User{}
	stored.Genre = models.Genre{}
	stored.Fund = models.Fund{}
	r.s.payments[payment.ID] = stored
	return nil
}

func (r *PaymentStore) Delete(_ context.Context, payment *models.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.payments, payment.ID)
	return nil
}

func (r *PaymentStore) List(_ context.Context, crit filter.PaymentCriteria) ([]models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var payments []models.Payment
	for _, p := range r.s.payments {
		if crit.UserID != nil && p.UserID != *crit.UserID {
			continue
		}
		if crit.GenreID != nil && p.GenreID != *crit.GenreID {
			continue
		}
		if crit.FundID != nil && p.FundID != *crit.FundID {
			continue
		}
		if crit.Date.Set {
			if crit.Date.Low != nil && p.Date.Before(*crit.Date.Low) {
				continue
			}
			if crit.Date.High != nil && p.Date.After(*crit.Date.High) {
				continue
			}
		}
		if !matchNumberRange(p.Incoming, crit.Incoming) {
			continue
		}
		if !matchNumberRange(p.Outgoing, crit.Outgoing) {
			continue
		}
		if crit.Remarks != "" && !strings.Contains(p.Remarks, crit.Remarks) {
			continue
		}
		p.User = r.s.users[p.UserID]
		p.Genre = r.s.genres[p.GenreID]
		p.Fund = r.s.funds[p.FundID]
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].Date.Equal(payments[j].Date) {
			return payments[i].Date.Before(payments[j].Date)
		}
		return payments[i].ID < payments[j].ID
	})
	return payments, nil
}

func matchStringRange(v string, r filter.StringRange) bool {
	if !r.Set {
		return true
	}
	if !r.Ranged {
		return v == r.Low
	}
	if r.Low != "" && v < r.Low {
		return false
	}
	if r.High != "" && v > r.High {
		return false
	}
	return true
}

func matchNumberRange(v float64, r filter.NumberRange) bool {
	if !r.Set {
		return true
	}
	if r.Low != nil && v < *r.Low {
		return false
	}
	if r.High != nil && v > *r.High {
		return false
	}
	return true
}
