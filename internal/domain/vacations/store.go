package vacations

import (
	"sync"
	"time"
)

// ValidateRange rejects empty and inverted date ranges: a request must end
// strictly after it starts.
func ValidateRange(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// Store owns the vacation request collection and the balance ledger. The
// ledger is read-only here: approval never reconciles balances.
type Store struct {
	mu       sync.Mutex
	nextID   int
	requests []Request
	balances []Balance
}

func NewStore(seedRequests []Request, seedBalances []Balance) *Store {
	s := &Store{
		nextID:   1,
		requests: make([]Request, len(seedRequests)),
		balances: make([]Balance, len(seedBalances)),
	}
	copy(s.requests, seedRequests)
	copy(s.balances, seedBalances)
	for _, request := range seedRequests {
		if request.ID >= s.nextID {
			s.nextID = request.ID + 1
		}
	}
	return s
}

func (s *Store) List(f Filter) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, 0, len(s.requests))
	for _, request := range s.requests {
		if f.EmployeeID != "" && request.EmployeeID != f.EmployeeID {
			continue
		}
		if f.Status != "" && request.Status != f.Status {
			continue
		}
		if f.Type != "" && request.Type != f.Type {
			continue
		}
		out = append(out, request)
	}
	return out
}

func (s *Store) Get(id int) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, request := range s.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return Request{}, ErrNotFound
}

func (s *Store) Create(request Request) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	request.ID = s.nextID
	s.nextID++
	s.requests = append(s.requests, request)
	return request
}

// Approve sets status and approver. The transition is unguarded: approving
// an already-decided request overwrites the previous decision, and the
// balance ledger is left untouched.
func (s *Store) Approve(id int, approver string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		s.requests[i].Status = StatusApproved
		s.requests[i].ApprovedBy = &approver
		return s.requests[i], nil
	}
	return Request{}, ErrNotFound
}

// Reject sets status, rejector and reason. Unguarded like Approve.
func (s *Store) Reject(id int, rejector, reason string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		s.requests[i].Status = StatusRejected
		s.requests[i].RejectedBy = rejector
		s.requests[i].RejectionReason = reason
		return s.requests[i], nil
	}
	return Request{}, ErrNotFound
}

func (s *Store) GetBalance(employeeID string) (Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, balance := range s.balances {
		if balance.EmployeeID == employeeID {
			return balance, nil
		}
	}
	return Balance{}, ErrBalanceNotFound
}
