package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
)

func TestMarkAttendanceRequestValidate(t *testing.T) {
	valid := MarkAttendanceRequest{EmployeeID: "EMP-001", Date: "2024-01-10", Status: "Present"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Status is a free-form string; only dates and employee ids are checked.
	freeForm := MarkAttendanceRequest{EmployeeID: "EMP-001", Date: "2024-01-10", Status: "WFH"}
	if err := freeForm.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for free-form status", err)
	}

	cases := []struct {
		name  string
		req   MarkAttendanceRequest
		field string
	}{
		{"empty employee_id", MarkAttendanceRequest{Date: "2024-01-10", Status: "Present"}, "employee_id"},
		{"empty date", MarkAttendanceRequest{EmployeeID: "E1", Status: "Present"}, "date"},
		{"malformed date", MarkAttendanceRequest{EmployeeID: "E1", Date: "10/01/2024", Status: "Present"}, "date"},
		{"impossible date", MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-13-40", Status: "Present"}, "date"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() returned %T, want ValidationErrors", err)
			}
			if _, ok := errs.ToMap()[c.field]; !ok {
				t.Errorf("expected error on field %q, got %v", c.field, errs.ToMap())
			}
		})
	}
}

func TestMarkAttendanceRequestParsedDate(t *testing.T) {
	req := MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-10", Status: "Present"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	got := req.ParsedDate()
	want := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParsedDate() = %v, want %v", got, want)
	}
}
