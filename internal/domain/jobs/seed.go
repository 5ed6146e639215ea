package jobs

// Seed returns the starting job postings.
func Seed() []Job {
	return []Job{
		{
			ID:         1,
			Title:      "Senior Frontend Developer",
			Department: "Engineering",
			Location:   "New York",
			Type:       "full-time",
			Level:      "senior",
			Salary:     &SalaryRange{Min: 90000, Max: 120000, Currency: "USD"},
			Description: "We are looking for an experienced Frontend Developer to join our engineering team. " +
				"You will be responsible for building user-facing features using React and modern web technologies.",
			Requirements: []string{
				"5+ years of experience with React",
				"Strong knowledge of JavaScript/TypeScript",
				"Experience with CSS frameworks",
				"Knowledge of state management libraries",
				"Bachelor's degree in Computer Science or related field",
			},
			Benefits: []string{
				"Health insurance",
				"Dental and vision coverage",
				"401k matching",
				"Flexible work hours",
				"Remote work options",
			},
			PostedDate:     "2024-01-15",
			ClosingDate:    "2024-02-15",
			Status:         StatusOpen,
			HiringManager:  "Jane Smith",
			ApplicantCount: 25,
		},
		{
			ID:         2,
			Title:      "DevOps Engineer",
			Department: "Engineering",
			Location:   "San Francisco",
			Type:       "full-time",
			Level:      "mid",
			Salary:     &SalaryRange{Min: 100000, Max: 140000, Currency: "USD"},
			Description: "Join our DevOps team to help scale our infrastructure and improve deployment processes. " +
				"You will work with Kubernetes, AWS, and CI/CD pipelines.",
			Requirements: []string{
				"3+ years of DevOps experience",
				"Experience with Kubernetes and Docker",
				"Knowledge of AWS or similar cloud platforms",
				"Familiarity with CI/CD tools",
				"Scripting experience (Python, Bash)",
			},
			Benefits: []string{
				"Health insurance",
				"Stock options",
				"Professional development budget",
				"Flexible PTO",
				"Remote work options",
			},
			PostedDate:     "2024-01-20",
			ClosingDate:    "2024-02-20",
			Status:         StatusOpen,
			HiringManager:  "Bob Johnson",
			ApplicantCount: 18,
		},
		{
			ID:         3,
			Title:      "HR Business Partner",
			Department: "Human Resources",
			Location:   "Chicago",
			Type:       "full-time",
			Level:      "senior",
			Salary:     &SalaryRange{Min: 80000, Max: 100000, Currency: "USD"},
			Description: "We are seeking an experienced HR Business Partner to support our growing organization. " +
				"You will partner with business leaders to develop HR strategies and programs.",
			Requirements: []string{
				"7+ years of HR experience",
				"Experience as an HR Business Partner",
				"Strong knowledge of employment law",
				"Excellent communication skills",
				"SHRM or HRCI certification preferred",
			},
			Benefits: []string{
				"Comprehensive health benefits",
				"Retirement plan with matching",
				"Professional development opportunities",
				"Flexible work arrangements",
				"Generous PTO policy",
			},
			PostedDate:     "2024-01-10",
			ClosingDate:    "2024-02-10",
			Status:         StatusClosed,
			HiringManager:  "Carol Brown",
			ApplicantCount: 42,
		},
		{
			ID:         4,
			Title:      "Data Scientist",
			Department: "Data",
			Location:   "Remote",
			Type:       "full-time",
			Level:      "mid",
			Salary:     &SalaryRange{Min: 95000, Max: 130000, Currency: "USD"},
			Description: "Join our data team to analyze complex datasets and build machine learning models. " +
				"You will work on projects that drive business insights and decision-making.",
			Requirements: []string{
				"Master's degree in Data Science, Statistics, or related field",
				"3+ years of experience in data science",
				"Proficiency in Python and SQL",
				"Experience with machine learning frameworks",
				"Strong statistical analysis skills",
			},
			Benefits: []string{
				"Competitive salary and equity",
				"Health and wellness benefits",
				"Learning and development budget",
				"Fully remote work",
				"Quarterly team retreats",
			},
			PostedDate:     "2024-01-25",
			ClosingDate:    "2024-03-01",
			Status:         StatusOpen,
			HiringManager:  "David Wilson",
			ApplicantCount: 31,
		},
	}
}

// SeedApplications returns the starting job applications.
func SeedApplications() []Application {
	return []Application{
		{
			ID:              1,
			JobID:           1,
			ApplicantName:   "Sarah Johnson",
			ApplicantEmail:  "sarah.johnson@email.com",
			ResumeURL:       "/resumes/sarah_johnson.pdf",
			CoverLetter:     "I am excited to apply for the Senior Frontend Developer position...",
			ApplicationDate: "2024-01-20",
			Status:          ApplicationStatusUnderReview,
			Notes:           "Strong React experience, scheduled for technical interview",
		},
		{
			ID:              2,
			JobID:           1,
			ApplicantName:   "Michael Chen",
			ApplicantEmail:  "michael.chen@email.com",
			ResumeURL:       "/resumes/michael_chen.pdf",
			CoverLetter:     "With over 6 years of frontend development experience...",
			ApplicationDate: "2024-01-22",
			Status:          ApplicationStatusInterviewed,
			Notes:           "Excellent technical skills, proceeding to final round",
		},
		{
			ID:              3,
			JobID:           2,
			ApplicantName:   "Lisa Park",
			ApplicantEmail:  "lisa.park@email.com",
			ResumeURL:       "/resumes/lisa_park.pdf",
			CoverLetter:     "I am passionate about DevOps and infrastructure automation...",
			ApplicationDate: "2024-01-25",
			Status:          ApplicationStatusNew,
			Notes:           "Initial application received",
		},
	}
}
