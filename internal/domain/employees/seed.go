package employees

func strptr(s string) *string { return &s }

// Seed returns the starting employee dataset.
func Seed() []Employee {
	return []Employee{
		{
			ID:         1,
			EmployeeID: "EMP001",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john.doe@company.com",
			Department: "Engineering",
			Position:   "Senior Software Engineer",
			Manager:    strptr("Jane Smith"),
			HireDate:   "2022-01-15",
			Salary:     95000,
			Status:     StatusActive,
			Location:   "New York",
		},
		{
			ID:         2,
			EmployeeID: "EMP002",
			FirstName:  "Jane",
			LastName:   "Smith",
			Email:      "jane.smith@company.com",
			Department: "Engineering",
			Position:   "Engineering Manager",
			Manager:    strptr("Bob Johnson"),
			HireDate:   "2020-06-01",
			Salary:     125000,
			Status:     StatusActive,
			Location:   "New York",
		},
		{
			ID:         3,
			EmployeeID: "EMP003",
			FirstName:  "Bob",
			LastName:   "Johnson",
			Email:      "bob.johnson@company.com",
			Department: "Engineering",
			Position:   "VP of Engineering",
			Manager:    nil,
			HireDate:   "2019-03-10",
			Salary:     180000,
			Status:     StatusActive,
			Location:   "San Francisco",
		},
		{
			ID:         4,
			EmployeeID: "EMP004",
			FirstName:  "Alice",
			LastName:   "Wilson",
			Email:      "alice.wilson@company.com",
			Department: "Human Resources",
			Position:   "HR Specialist",
			Manager:    strptr("Carol Brown"),
			HireDate:   "2021-09-20",
			Salary:     65000,
			Status:     StatusActive,
			Location:   "Chicago",
		},
		{
			ID:         5,
			EmployeeID: "EMP005",
			FirstName:  "Carol",
			LastName:   "Brown",
			Email:      "carol.brown@company.com",
			Department: "Human Resources",
			Position:   "HR Director",
			Manager:    nil,
			HireDate:   "2018-11-05",
			Salary:     105000,
			Status:     StatusActive,
			Location:   "Chicago",
		},
	}
}
