package performance

import "sync"

// Store owns the review and development plan collections.
type Store struct {
	mu         sync.Mutex
	nextReview int
	nextPlan   int
	reviews    []Review
	plans      []DevelopmentPlan
}

func NewStore(seedReviews []Review, seedPlans []DevelopmentPlan) *Store {
	s := &Store{
		nextReview: 1,
		nextPlan:   1,
		reviews:    make([]Review, len(seedReviews)),
		plans:      make([]DevelopmentPlan, len(seedPlans)),
	}
	copy(s.reviews, seedReviews)
	copy(s.plans, seedPlans)
	for _, review := range seedReviews {
		if review.ID >= s.nextReview {
			s.nextReview = review.ID + 1
		}
	}
	for _, plan := range seedPlans {
		if plan.ID >= s.nextPlan {
			s.nextPlan = plan.ID + 1
		}
	}
	return s
}

func (s *Store) ListReviews(f ReviewFilter) []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if f.EmployeeID != "" && review.EmployeeID != f.EmployeeID {
			continue
		}
		if f.ReviewPeriod != "" && review.ReviewPeriod != f.ReviewPeriod {
			continue
		}
		if f.Status != "" && review.Status != f.Status {
			continue
		}
		out = append(out, cloneReview(review))
	}
	return out
}

func (s *Store) GetReview(id int) (Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, review := range s.reviews {
		if review.ID == id {
			return cloneReview(review), nil
		}
	}
	return Review{}, ErrReviewNotFound
}

func (s *Store) CreateReview(review Review) Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.nextReview
	s.nextReview++
	s.reviews = append(s.reviews, review)
	return cloneReview(review)
}

// UpdateReview applies a shallow merge: nested ratings, goals and feedback
// are replaced as whole values when the update carries them.
func (s *Store) UpdateReview(id int, u ReviewUpdate) (Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID != id {
			continue
		}
		review := &s.reviews[i]
		if u.EmployeeID != nil {
			review.EmployeeID = *u.EmployeeID
		}
		if u.ReviewPeriod != nil {
			review.ReviewPeriod = *u.ReviewPeriod
		}
		if u.ReviewType != nil {
			review.ReviewType = *u.ReviewType
		}
		if u.ReviewDate != nil {
			review.ReviewDate = *u.ReviewDate
		}
		if u.Reviewer != nil {
			review.Reviewer = *u.Reviewer
		}
		if u.Status != nil {
			review.Status = *u.Status
		}
		if u.OverallRating != nil {
			review.OverallRating = *u.OverallRating
		}
		if u.Ratings != nil {
			ratings := *u.Ratings
			review.Ratings = &ratings
		}
		if u.Goals != nil {
			review.Goals = append([]Goal(nil), u.Goals...)
		}
		if u.Feedback != nil {
			review.Feedback = cloneFeedback(u.Feedback)
		}
		if u.NextReviewDate != nil {
			review.NextReviewDate = *u.NextReviewDate
		}
		return cloneReview(*review), nil
	}
	return Review{}, ErrReviewNotFound
}

func (s *Store) ListPlans(f PlanFilter) []DevelopmentPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DevelopmentPlan, 0, len(s.plans))
	for _, plan := range s.plans {
		if f.EmployeeID != "" && plan.EmployeeID != f.EmployeeID {
			continue
		}
		if f.PlanYear != 0 && plan.PlanYear != f.PlanYear {
			continue
		}
		if f.Status != "" && plan.Status != f.Status {
			continue
		}
		out = append(out, clonePlan(plan))
	}
	return out
}

func (s *Store) CreatePlan(plan DevelopmentPlan) DevelopmentPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan.ID = s.nextPlan
	s.nextPlan++
	s.plans = append(s.plans, plan)
	return clonePlan(plan)
}

// CompletedReviews returns the reviews the analytics aggregate runs over.
func (s *Store) CompletedReviews() []Review {
	return s.ListReviews(ReviewFilter{Status: ReviewStatusCompleted})
}

func cloneReview(review Review) Review {
	if review.Ratings != nil {
		ratings := *review.Ratings
		review.Ratings = &ratings
	}
	review.Goals = append([]Goal(nil), review.Goals...)
	review.Feedback = cloneFeedback(review.Feedback)
	return review
}

func cloneFeedback(feedback *Feedback) *Feedback {
	if feedback == nil {
		return nil
	}
	out := Feedback{
		Strengths:    append([]string(nil), feedback.Strengths...),
		Improvements: append([]string(nil), feedback.Improvements...),
		Comments:     feedback.Comments,
	}
	return &out
}

func clonePlan(plan DevelopmentPlan) DevelopmentPlan {
	objectives := make([]Objective, len(plan.Objectives))
	for i, objective := range plan.Objectives {
		objective.Actions = append([]string(nil), objective.Actions...)
		objectives[i] = objective
	}
	plan.Objectives = objectives
	return plan
}
