package employee

import (
	"errors"
	"testing"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/validator"
)

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := CreateEmployeeRequest{
		EmployeeID: "EMP-001",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	cases := []struct {
		name  string
		req   CreateEmployeeRequest
		field string
	}{
		{
			name:  "empty employee_id",
			req:   CreateEmployeeRequest{FullName: "Jane", Email: "jane@example.com", Department: "Eng"},
			field: "employee_id",
		},
		{
			name:  "whitespace employee_id",
			req:   CreateEmployeeRequest{EmployeeID: "   ", FullName: "Jane", Email: "jane@example.com", Department: "Eng"},
			field: "employee_id",
		},
		{
			name:  "empty full_name",
			req:   CreateEmployeeRequest{EmployeeID: "E1", Email: "jane@example.com", Department: "Eng"},
			field: "full_name",
		},
		{
			name:  "empty email",
			req:   CreateEmployeeRequest{EmployeeID: "E1", FullName: "Jane", Department: "Eng"},
			field: "email",
		},
		{
			name:  "malformed email",
			req:   CreateEmployeeRequest{EmployeeID: "E1", FullName: "Jane", Email: "not-an-email", Department: "Eng"},
			field: "email",
		},
		{
			name:  "empty department",
			req:   CreateEmployeeRequest{EmployeeID: "E1", FullName: "Jane", Email: "jane@example.com"},
			field: "department",
		},
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

func TestCreateEmployeeRequestValidateCollectsAllFields(t *testing.T) {
	req := CreateEmployeeRequest{}
	err := req.Validate()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Validate() returned %T, want ValidationErrors", err)
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(errs), errs)
	}
}
