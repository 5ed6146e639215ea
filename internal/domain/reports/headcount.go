package reports

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrapi/internal/domain/employees"
)

// Headcount summarises the employee collection for reporting.
type Headcount struct {
	Total        int            `json:"total"`
	ByDepartment map[string]int `json:"byDepartment"`
	ByStatus     map[string]int `json:"byStatus"`
}

type Service struct {
	employees *employees.Store
}

func NewService(store *employees.Store) *Service {
	return &Service{employees: store}
}

func (s *Service) Headcount() Headcount {
	all := s.employees.List(employees.Filter{})
	hc := Headcount{
		Total:        len(all),
		ByDepartment: make(map[string]int),
		ByStatus:     make(map[string]int),
	}
	for _, emp := range all {
		hc.ByDepartment[emp.Department]++
		hc.ByStatus[emp.Status]++
	}
	return hc
}

// HeadcountPDF renders the headcount summary as a PDF document.
func (s *Service) HeadcountPDF() ([]byte, error) {
	hc := s.Headcount()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Headcount Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total employees: %d", hc.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "By department")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, dept := range sortedKeys(hc.ByDepartment) {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", dept, hc.ByDepartment[dept]))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "By status")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, status := range sortedKeys(hc.ByStatus) {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", status, hc.ByStatus[status]))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
