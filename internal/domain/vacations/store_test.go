package vacations

import (
	"testing"
	"time"
)

func TestValidateRange(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateRange(start, start.AddDate(0, 0, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateRange(start, start); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange for zero-length range, got %v", err)
	}
	if err := ValidateRange(start, start.AddDate(0, 0, -1)); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange for inverted range, got %v", err)
	}
}

func testStore() *Store {
	return NewStore(Seed(), SeedBalances())
}

func TestCreateStartsPending(t *testing.T) {
	s := testStore()

	request := s.Create(Request{
		EmployeeID:  "EMP003",
		Type:        "annual",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-05",
		Days:        4,
		Status:      StatusPending,
		RequestDate: "2025-08-29",
	})
	if request.ID != 5 {
		t.Fatalf("expected id 5, got %d", request.ID)
	}
	if request.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", request.Status)
	}
	if request.ApprovedBy != nil {
		t.Fatalf("expected nil approver, got %q", *request.ApprovedBy)
	}
}

func TestApproveSetsApproverAndLeavesBalanceAlone(t *testing.T) {
	s := testStore()
	before, err := s.GetBalance("EMP001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	request, err := s.Approve(3, "Jane Smith")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != StatusApproved {
		t.Fatalf("expected approved status, got %q", request.Status)
	}
	if request.ApprovedBy == nil || *request.ApprovedBy != "Jane Smith" {
		t.Fatalf("expected approver Jane Smith, got %v", request.ApprovedBy)
	}

	after, err := s.GetBalance("EMP001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after != before {
		t.Fatalf("approval changed the balance ledger: %+v -> %+v", before, after)
	}
}

func TestRejectOverwritesPriorDecision(t *testing.T) {
	s := testStore()

	// Request 1 is already approved in the seed data.
	request, err := s.Reject(1, "Carol Brown", "Project deadline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Status != StatusRejected {
		t.Fatalf("expected rejected status, got %q", request.Status)
	}
	if request.RejectedBy != "Carol Brown" || request.RejectionReason != "Project deadline" {
		t.Fatalf("unexpected rejection fields: %+v", request)
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	s := testStore()

	if _, err := s.Approve(999, "Nobody"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	s := testStore()

	list := s.List(Filter{EmployeeID: "EMP001", Status: StatusPending})
	if len(list) != 1 || list[0].ID != 3 {
		t.Fatalf("expected only request 3, got %+v", list)
	}

	list = s.List(Filter{Type: "sick"})
	if len(list) != 1 || list[0].EmployeeID != "EMP002" {
		t.Fatalf("expected only the EMP002 sick request, got %+v", list)
	}
}

func TestGetBalanceUnknownEmployee(t *testing.T) {
	s := testStore()

	if _, err := s.GetBalance("EMP999"); err != ErrBalanceNotFound {
		t.Fatalf("expected ErrBalanceNotFound, got %v", err)
	}
}
