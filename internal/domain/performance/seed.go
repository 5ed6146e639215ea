package performance

// Seed returns the starting performance reviews.
func Seed() []Review {
	return []Review{
		{
			ID:            1,
			EmployeeID:    "EMP001",
			ReviewPeriod:  "2024-H1",
			ReviewType:    "semi-annual",
			ReviewDate:    "2024-07-15",
			Reviewer:      "Jane Smith",
			Status:        ReviewStatusCompleted,
			OverallRating: 4.2,
			Ratings: &Ratings{
				Technical:     4.5,
				Communication: 4.0,
				Teamwork:      4.5,
				Leadership:    3.8,
				Initiative:    4.0,
			},
			Goals: []Goal{
				{ID: 1, Description: "Complete React certification", Status: "achieved", CompletionDate: "2024-05-20"},
				{ID: 2, Description: "Lead frontend architecture redesign", Status: "in-progress", TargetDate: "2024-12-31"},
			},
			Feedback: &Feedback{
				Strengths: []string{
					"Excellent technical skills in React and TypeScript",
					"Strong problem-solving abilities",
					"Good collaboration with team members",
				},
				Improvements: []string{
					"Could take more initiative in cross-team projects",
					"Opportunity to mentor junior developers",
				},
				Comments: "John has shown consistent growth and technical excellence. He would benefit from taking on more leadership responsibilities.",
			},
			NextReviewDate: "2025-01-15",
		},
		{
			ID:            2,
			EmployeeID:    "EMP002",
			ReviewPeriod:  "2024-H1",
			ReviewType:    "semi-annual",
			ReviewDate:    "2024-07-10",
			Reviewer:      "Bob Johnson",
			Status:        ReviewStatusCompleted,
			OverallRating: 4.8,
			Ratings: &Ratings{
				Technical:     4.7,
				Communication: 5.0,
				Teamwork:      4.8,
				Leadership:    4.9,
				Initiative:    4.6,
			},
			Goals: []Goal{
				{ID: 1, Description: "Implement team OKR process", Status: "achieved", CompletionDate: "2024-03-15"},
				{ID: 2, Description: "Reduce deployment time by 50%", Status: "achieved", CompletionDate: "2024-06-01"},
			},
			Feedback: &Feedback{
				Strengths: []string{
					"Outstanding leadership and team management",
					"Excellent communication skills",
					"Strategic thinking and planning abilities",
				},
				Improvements: []string{
					"Continue developing technical depth in emerging technologies",
				},
				Comments: "Jane consistently exceeds expectations and is ready for additional responsibilities.",
			},
			NextReviewDate: "2025-01-10",
		},
		{
			ID:            3,
			EmployeeID:    "EMP004",
			ReviewPeriod:  "2024-H1",
			ReviewType:    "semi-annual",
			ReviewDate:    "2024-07-20",
			Reviewer:      "Carol Brown",
			Status:        ReviewStatusCompleted,
			OverallRating: 3.9,
			Ratings: &Ratings{
				Technical:     4.2,
				Communication: 4.0,
				Teamwork:      4.2,
				Leadership:    3.5,
				Initiative:    3.6,
			},
			Goals: []Goal{
				{ID: 1, Description: "Complete SHRM certification", Status: "in-progress", TargetDate: "2024-12-01"},
				{ID: 2, Description: "Implement new onboarding process", Status: "achieved", CompletionDate: "2024-04-30"},
			},
			Feedback: &Feedback{
				Strengths: []string{
					"Strong attention to detail in HR processes",
					"Good relationship building with employees",
					"Reliable and consistent performance",
				},
				Improvements: []string{
					"Develop strategic HR planning skills",
					"Take more initiative in policy development",
				},
				Comments: "Alice is performing well in her current role and showing potential for growth into more strategic HR work.",
			},
			NextReviewDate: "2025-01-20",
		},
	}
}

// SeedPlans returns the starting development plans.
func SeedPlans() []DevelopmentPlan {
	return []DevelopmentPlan{
		{
			ID:          1,
			EmployeeID:  "EMP001",
			PlanYear:    2024,
			CreatedDate: "2024-01-15",
			Status:      "active",
			Objectives: []Objective{
				{
					ID:          1,
					Title:       "Technical Leadership Development",
					Description: "Develop skills to lead technical initiatives and mentor junior developers",
					Category:    "leadership",
					Priority:    "high",
					TargetDate:  "2024-12-31",
					Status:      "in-progress",
					Actions: []string{
						"Complete leadership training program",
						"Mentor 2 junior developers",
						"Lead one major technical project",
					},
				},
				{
					ID:          2,
					Title:       "Frontend Architecture Expertise",
					Description: "Become expert in modern frontend architecture patterns",
					Category:    "technical",
					Priority:    "medium",
					TargetDate:  "2024-09-30",
					Status:      "in-progress",
					Actions: []string{
						"Complete advanced React course",
						"Study microfrontend architecture",
						"Present architecture proposal to team",
					},
				},
			},
		},
		{
			ID:          2,
			EmployeeID:  "EMP004",
			PlanYear:    2024,
			CreatedDate: "2024-02-01",
			Status:      "active",
			Objectives: []Objective{
				{
					ID:          1,
					Title:       "Strategic HR Development",
					Description: "Develop strategic HR planning and analytics capabilities",
					Category:    "strategic",
					Priority:    "high",
					TargetDate:  "2024-12-31",
					Status:      "in-progress",
					Actions: []string{
						"Complete HR analytics certification",
						"Shadow director on strategic planning",
						"Lead workforce planning project",
					},
				},
			},
		},
	}
}
