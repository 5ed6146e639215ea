package vacations

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

var (
	Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCancelled}
	Types    = []string{"annual", "sick", "personal", "maternity", "paternity"}
)

type Request struct {
	ID              int     `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	Type            string  `json:"type"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Days            int     `json:"days"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approvedBy"`
	RequestDate     string  `json:"requestDate"`
	Reason          string  `json:"reason,omitempty"`
	RejectedBy      string  `json:"rejectedBy,omitempty"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
}

// Balance is the per-employee leave ledger. It is seeded independently and
// never touched by the request approval flow.
type Balance struct {
	EmployeeID        string `json:"employeeId"`
	AnnualDays        int    `json:"annualDays"`
	UsedAnnual        int    `json:"usedAnnual"`
	RemainingAnnual   int    `json:"remainingAnnual"`
	SickDays          int    `json:"sickDays"`
	UsedSick          int    `json:"usedSick"`
	RemainingSick     int    `json:"remainingSick"`
	PersonalDays      int    `json:"personalDays"`
	UsedPersonal      int    `json:"usedPersonal"`
	RemainingPersonal int    `json:"remainingPersonal"`
}

// Filter criteria all match exactly.
type Filter struct {
	EmployeeID string
	Status     string
	Type       string
}
