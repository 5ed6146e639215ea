package employees

import (
	"strings"
	"sync"
)

// Store owns the employee collection. All read-then-write sequences run
// under one mutex so the uniqueness and single-writer invariants hold with
// concurrent requests in flight.
type Store struct {
	mu        sync.Mutex
	nextID    int
	employees []Employee
}

// NewStore seeds the collection and positions the id counter past the
// highest seeded id. An empty seed starts the counter at 1.
func NewStore(seed []Employee) *Store {
	s := &Store{
		nextID:    1,
		employees: make([]Employee, len(seed)),
	}
	copy(s.employees, seed)
	for _, emp := range seed {
		if emp.ID >= s.nextID {
			s.nextID = emp.ID + 1
		}
	}
	return s
}

// List returns employees matching every set filter, in insertion order.
func (s *Store) List(f Filter) []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		if f.Department != "" && !containsFold(emp.Department, f.Department) {
			continue
		}
		if f.Status != "" && emp.Status != f.Status {
			continue
		}
		if f.Location != "" && !containsFold(emp.Location, f.Location) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

func (s *Store) Get(id int) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, ErrNotFound
}

// Create assigns the next id and appends. The business-key uniqueness check
// and the append are one critical section.
func (s *Store) Create(emp Employee) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.EmployeeID == emp.EmployeeID {
			return Employee{}, ErrDuplicateEmployeeID
		}
	}

	emp.ID = s.nextID
	s.nextID++
	s.employees = append(s.employees, emp)
	return emp, nil
}

// Update applies a shallow field-whitelist merge and returns the updated
// record.
func (s *Store) Update(id int, u Update) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if u.EmployeeID != nil {
			emp.EmployeeID = *u.EmployeeID
		}
		if u.FirstName != nil {
			emp.FirstName = *u.FirstName
		}
		if u.LastName != nil {
			emp.LastName = *u.LastName
		}
		if u.Email != nil {
			emp.Email = *u.Email
		}
		if u.Department != nil {
			emp.Department = *u.Department
		}
		if u.Position != nil {
			emp.Position = *u.Position
		}
		if u.Manager != nil {
			emp.Manager = u.Manager
		}
		if u.HireDate != nil {
			emp.HireDate = *u.HireDate
		}
		if u.Salary != nil {
			emp.Salary = *u.Salary
		}
		if u.Status != nil {
			emp.Status = *u.Status
		}
		if u.Location != nil {
			emp.Location = *u.Location
		}
		return *emp, nil
	}
	return Employee{}, ErrNotFound
}

func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count reports the collection size; used by reports and tests.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.employees)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
