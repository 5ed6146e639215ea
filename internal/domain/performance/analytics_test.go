package performance

import "testing"

func TestComputeAnalyticsSeedData(t *testing.T) {
	s := NewStore(Seed(), SeedPlans())

	analytics := ComputeAnalytics(s.CompletedReviews(), "")

	if analytics.Period != "current" {
		t.Fatalf("expected default period %q, got %q", "current", analytics.Period)
	}
	if analytics.TotalReviews != 3 {
		t.Fatalf("expected 3 completed reviews, got %d", analytics.TotalReviews)
	}
	if analytics.AverageRating != 4.3 {
		t.Fatalf("expected average 4.3, got %v", analytics.AverageRating)
	}
	if analytics.RatingDistribution[4] != 2 || analytics.RatingDistribution[3] != 1 {
		t.Fatalf("unexpected rating distribution: %v", analytics.RatingDistribution)
	}
	if analytics.GoalAchievementRate != 66.67 {
		t.Fatalf("expected goal achievement rate 66.67, got %v", analytics.GoalAchievementRate)
	}
	if len(analytics.TopPerformers) != 1 {
		t.Fatalf("expected 1 top performer, got %d", len(analytics.TopPerformers))
	}
	if analytics.TopPerformers[0].EmployeeID != "EMP002" || analytics.TopPerformers[0].Rating != 4.8 {
		t.Fatalf("unexpected top performer: %+v", analytics.TopPerformers[0])
	}
}

func TestComputeAnalyticsEmpty(t *testing.T) {
	analytics := ComputeAnalytics(nil, "2024")

	if analytics.Period != "2024" {
		t.Fatalf("expected period %q, got %q", "2024", analytics.Period)
	}
	if analytics.TotalReviews != 0 || analytics.AverageRating != 0 || analytics.GoalAchievementRate != 0 {
		t.Fatalf("expected zero metrics, got %+v", analytics)
	}
	if len(analytics.RatingDistribution) != 0 {
		t.Fatalf("expected empty distribution, got %v", analytics.RatingDistribution)
	}
	if len(analytics.TopPerformers) != 0 {
		t.Fatalf("expected no top performers, got %v", analytics.TopPerformers)
	}
}

func TestComputeAnalyticsTopPerformerCap(t *testing.T) {
	reviews := make([]Review, 0, 7)
	for i := 0; i < 7; i++ {
		reviews = append(reviews, Review{
			EmployeeID:    "EMP00" + string(rune('1'+i)),
			Status:        ReviewStatusCompleted,
			OverallRating: 4.9,
		})
	}

	analytics := ComputeAnalytics(reviews, "current")
	if len(analytics.TopPerformers) != 5 {
		t.Fatalf("expected leaderboard capped at 5, got %d", len(analytics.TopPerformers))
	}
	if analytics.TopPerformers[0].EmployeeID != "EMP001" {
		t.Fatalf("expected collection order, got %q first", analytics.TopPerformers[0].EmployeeID)
	}
}

func TestCompletedReviewsExcludeDrafts(t *testing.T) {
	s := NewStore(Seed(), SeedPlans())
	s.CreateReview(Review{EmployeeID: "EMP003", Status: ReviewStatusDraft, OverallRating: 5})

	completed := s.CompletedReviews()
	for _, review := range completed {
		if review.Status != ReviewStatusCompleted {
			t.Fatalf("draft review leaked into completed set: %+v", review)
		}
	}
	if len(completed) != 3 {
		t.Fatalf("expected 3 completed reviews, got %d", len(completed))
	}
}
