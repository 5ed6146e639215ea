package jobs

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
	StatusOnHold = "on_hold"
)

var (
	Statuses = []string{StatusOpen, StatusClosed, StatusOnHold}
	Types    = []string{"full-time", "part-time", "contract", "internship"}
	Levels   = []string{"entry", "junior", "mid", "senior", "executive"}
)

const (
	ApplicationStatusNew         = "new"
	ApplicationStatusUnderReview = "under_review"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

var ApplicationStatuses = []string{
	ApplicationStatusNew,
	ApplicationStatusUnderReview,
	ApplicationStatusInterviewed,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Job struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Department    string       `json:"department"`
	Location      string       `json:"location"`
	Type          string       `json:"type"`
	Level         string       `json:"level"`
	Salary        *SalaryRange `json:"salary,omitempty"`
	Description   string       `json:"description"`
	Requirements  []string     `json:"requirements,omitempty"`
	Benefits      []string     `json:"benefits,omitempty"`
	PostedDate    string       `json:"postedDate"`
	ClosingDate   string       `json:"closingDate,omitempty"`
	Status        string       `json:"status"`
	HiringManager string       `json:"hiringManager,omitempty"`
	// ApplicantCount is a derived counter maintained by SubmitApplication,
	// never recomputed from the applications collection.
	ApplicantCount int `json:"applicantCount"`
}

type Application struct {
	ID              int    `json:"id"`
	JobID           int    `json:"jobId"`
	ApplicantName   string `json:"applicantName"`
	ApplicantEmail  string `json:"applicantEmail"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	CoverLetter     string `json:"coverLetter,omitempty"`
	ApplicationDate string `json:"applicationDate"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
}

// Filter holds the optional job list criteria. Department and Location match
// as case-insensitive substrings; the rest match exactly.
type Filter struct {
	Department string
	Location   string
	Type       string
	Level      string
	Status     string
}

// Update carries the fields a job PUT may change. Salary, Requirements and
// Benefits are replaced wholesale when present.
type Update struct {
	Title         *string      `json:"title"`
	Department    *string      `json:"department"`
	Location      *string      `json:"location"`
	Type          *string      `json:"type"`
	Level         *string      `json:"level"`
	Salary        *SalaryRange `json:"salary"`
	Description   *string      `json:"description"`
	Requirements  []string     `json:"requirements"`
	Benefits      []string     `json:"benefits"`
	ClosingDate   *string      `json:"closingDate"`
	Status        *string      `json:"status"`
	HiringManager *string      `json:"hiringManager"`
}
