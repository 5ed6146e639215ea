package performance

import "math"

// TopPerformer is one entry of the analytics leaderboard.
type TopPerformer struct {
	EmployeeID string  `json:"employeeId"`
	Rating     float64 `json:"rating"`
}

// Analytics is the read-only aggregate computed over completed reviews.
type Analytics struct {
	Period              string         `json:"period"`
	TotalReviews        int            `json:"totalReviews"`
	AverageRating       float64        `json:"averageRating"`
	RatingDistribution  map[int]int    `json:"ratingDistribution"`
	GoalAchievementRate float64        `json:"goalAchievementRate"`
	TopPerformers       []TopPerformer `json:"topPerformers"`
}

const topPerformerThreshold = 4.5

// ComputeAnalytics aggregates completed reviews. With no completed reviews
// or no goals the corresponding metrics are explicitly zero rather than
// undefined.
func ComputeAnalytics(completed []Review, period string) Analytics {
	if period == "" {
		period = "current"
	}

	analytics := Analytics{
		Period:             period,
		TotalReviews:       len(completed),
		RatingDistribution: make(map[int]int),
		TopPerformers:      make([]TopPerformer, 0, 5),
	}

	ratingSum := 0.0
	totalGoals := 0
	achievedGoals := 0
	for _, review := range completed {
		ratingSum += review.OverallRating
		analytics.RatingDistribution[int(math.Floor(review.OverallRating))]++

		for _, goal := range review.Goals {
			totalGoals++
			if goal.Status == GoalStatusAchieved {
				achievedGoals++
			}
		}

		if review.OverallRating >= topPerformerThreshold && len(analytics.TopPerformers) < 5 {
			analytics.TopPerformers = append(analytics.TopPerformers, TopPerformer{
				EmployeeID: review.EmployeeID,
				Rating:     review.OverallRating,
			})
		}
	}

	if len(completed) > 0 {
		analytics.AverageRating = round2(ratingSum / float64(len(completed)))
	}
	if totalGoals > 0 {
		analytics.GoalAchievementRate = round2(float64(achievedGoals) / float64(totalGoals) * 100)
	}
	return analytics
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
