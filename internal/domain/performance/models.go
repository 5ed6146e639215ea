package performance

const (
	ReviewStatusDraft      = "draft"
	ReviewStatusInProgress = "in-progress"
	ReviewStatusCompleted  = "completed"
	ReviewStatusApproved   = "approved"
)

const GoalStatusAchieved = "achieved"

var (
	ReviewStatuses = []string{ReviewStatusDraft, ReviewStatusInProgress, ReviewStatusCompleted, ReviewStatusApproved}
	ReviewTypes    = []string{"annual", "semi-annual", "quarterly", "probationary"}
	PlanStatuses   = []string{"draft", "active", "completed", "cancelled"}
)

type Ratings struct {
	Technical     float64 `json:"technical,omitempty"`
	Communication float64 `json:"communication,omitempty"`
	Teamwork      float64 `json:"teamwork,omitempty"`
	Leadership    float64 `json:"leadership,omitempty"`
	Initiative    float64 `json:"initiative,omitempty"`
}

type Goal struct {
	ID             int    `json:"id"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	TargetDate     string `json:"targetDate,omitempty"`
	CompletionDate string `json:"completionDate,omitempty"`
}

type Feedback struct {
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	Comments     string   `json:"comments,omitempty"`
}

type Review struct {
	ID           int    `json:"id"`
	EmployeeID   string `json:"employeeId"`
	ReviewPeriod string `json:"reviewPeriod"`
	ReviewType   string `json:"reviewType"`
	ReviewDate   string `json:"reviewDate,omitempty"`
	Reviewer     string `json:"reviewer"`
	Status       string `json:"status"`
	// OverallRating is 1-5; zero means not yet rated.
	OverallRating  float64   `json:"overallRating,omitempty"`
	Ratings        *Ratings  `json:"ratings,omitempty"`
	Goals          []Goal    `json:"goals,omitempty"`
	Feedback       *Feedback `json:"feedback,omitempty"`
	NextReviewDate string    `json:"nextReviewDate,omitempty"`
}

type Objective struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	TargetDate  string   `json:"targetDate,omitempty"`
	Status      string   `json:"status"`
	Actions     []string `json:"actions,omitempty"`
}

type DevelopmentPlan struct {
	ID          int         `json:"id"`
	EmployeeID  string      `json:"employeeId"`
	PlanYear    int         `json:"planYear"`
	CreatedDate string      `json:"createdDate"`
	Status      string      `json:"status"`
	Objectives  []Objective `json:"objectives,omitempty"`
}

// ReviewFilter criteria all match exactly.
type ReviewFilter struct {
	EmployeeID   string
	ReviewPeriod string
	Status       string
}

type PlanFilter struct {
	EmployeeID string
	PlanYear   int
	Status     string
}

// ReviewUpdate carries the fields a review PUT may change. Ratings,
// Goals and Feedback are replaced wholesale when present: a partial
// ratings object overwrites the entire stored ratings block.
type ReviewUpdate struct {
	EmployeeID     *string   `json:"employeeId"`
	ReviewPeriod   *string   `json:"reviewPeriod"`
	ReviewType     *string   `json:"reviewType"`
	ReviewDate     *string   `json:"reviewDate"`
	Reviewer       *string   `json:"reviewer"`
	Status         *string   `json:"status"`
	OverallRating  *float64  `json:"overallRating"`
	Ratings        *Ratings  `json:"ratings"`
	Goals          []Goal    `json:"goals"`
	Feedback       *Feedback `json:"feedback"`
	NextReviewDate *string   `json:"nextReviewDate"`
}
