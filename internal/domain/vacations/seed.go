package vacations

func strptr(s string) *string { return &s }

// Seed returns the starting vacation requests.
func Seed() []Request {
	return []Request{
		{
			ID:          1,
			EmployeeID:  "EMP001",
			Type:        "annual",
			StartDate:   "2024-07-15",
			EndDate:     "2024-07-22",
			Days:        6,
			Status:      StatusApproved,
			ApprovedBy:  strptr("Jane Smith"),
			RequestDate: "2024-06-10",
			Reason:      "Family vacation",
		},
		{
			ID:          2,
			EmployeeID:  "EMP002",
			Type:        "sick",
			StartDate:   "2024-03-18",
			EndDate:     "2024-03-20",
			Days:        3,
			Status:      StatusApproved,
			ApprovedBy:  strptr("Bob Johnson"),
			RequestDate: "2024-03-17",
			Reason:      "Medical procedure",
		},
		{
			ID:          3,
			EmployeeID:  "EMP001",
			Type:        "personal",
			StartDate:   "2024-12-23",
			EndDate:     "2024-12-27",
			Days:        5,
			Status:      StatusPending,
			ApprovedBy:  nil,
			RequestDate: "2024-11-15",
			Reason:      "Holiday break",
		},
		{
			ID:          4,
			EmployeeID:  "EMP004",
			Type:        "annual",
			StartDate:   "2024-08-05",
			EndDate:     "2024-08-16",
			Days:        10,
			Status:      StatusApproved,
			ApprovedBy:  strptr("Carol Brown"),
			RequestDate: "2024-07-01",
			Reason:      "Summer vacation",
		},
	}
}

// SeedBalances returns the starting per-employee leave ledgers.
func SeedBalances() []Balance {
	return []Balance{
		{EmployeeID: "EMP001", AnnualDays: 20, UsedAnnual: 6, RemainingAnnual: 14, SickDays: 10, UsedSick: 0, RemainingSick: 10, PersonalDays: 5, UsedPersonal: 0, RemainingPersonal: 5},
		{EmployeeID: "EMP002", AnnualDays: 25, UsedAnnual: 0, RemainingAnnual: 25, SickDays: 10, UsedSick: 3, RemainingSick: 7, PersonalDays: 5, UsedPersonal: 0, RemainingPersonal: 5},
		{EmployeeID: "EMP003", AnnualDays: 30, UsedAnnual: 0, RemainingAnnual: 30, SickDays: 10, UsedSick: 0, RemainingSick: 10, PersonalDays: 5, UsedPersonal: 0, RemainingPersonal: 5},
		{EmployeeID: "EMP004", AnnualDays: 15, UsedAnnual: 10, RemainingAnnual: 5, SickDays: 10, UsedSick: 0, RemainingSick: 10, PersonalDays: 5, UsedPersonal: 0, RemainingPersonal: 5},
		{EmployeeID: "EMP005", AnnualDays: 25, UsedAnnual: 0, RemainingAnnual: 25, SickDays: 10, UsedSick: 0, RemainingSick: 10, PersonalDays: 5, UsedPersonal: 0, RemainingPersonal: 5},
	}
}
