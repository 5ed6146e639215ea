package employees

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

// Statuses lists the valid employment statuses in wire order.
var Statuses = []string{StatusActive, StatusInactive, StatusTerminated}

type Employee struct {
	ID         int     `json:"id"`
	EmployeeID string  `json:"employeeId"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Manager    *string `json:"manager"`
	HireDate   string  `json:"hireDate,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
	Status     string  `json:"status"`
	Location   string  `json:"location,omitempty"`
}

// Filter holds the optional list criteria. Department and Location match as
// case-insensitive substrings; Status matches exactly.
type Filter struct {
	Department string
	Status     string
	Location   string
}

// Update carries the fields a PUT may change. Nil means "leave unchanged";
// a present field fully replaces the stored value (shallow merge).
type Update struct {
	EmployeeID *string  `json:"employeeId"`
	FirstName  *string  `json:"firstName"`
	LastName   *string  `json:"lastName"`
	Email      *string  `json:"email"`
	Department *string  `json:"department"`
	Position   *string  `json:"position"`
	Manager    *string  `json:"manager"`
	HireDate   *string  `json:"hireDate"`
	Salary     *float64 `json:"salary"`
	Status     *string  `json:"status"`
	Location   *string  `json:"location"`
}
