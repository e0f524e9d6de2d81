package patient

import (
	"regexp"
	"strings"

	"github.com/medisys/hospital-api/internal/model"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// Validate evaluates every patient field rule independently and returns the
// full ordered list of human-readable violations; short-circuiting would hide
// problems from the caller. It is a pure function of the record and the
// current date.
func Validate(p *model.Patient, today model.Date) []string {
	var violations []string

	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "Name cannot be empty.")
	}
	if p.Age <= 0 {
		violations = append(violations, "Age should be a positive number.")
	}
	if !contactPattern.MatchString(p.Contact) {
		violations = append(violations, "Contact number should be exactly 10 digits.")
	}
	if !p.Gender.Valid() {
		violations = append(violations, "Gender should be 'Male', 'Female', or 'Other'.")
	}
	if !p.DateOfBirth.Before(today) {
		violations = append(violations, "Date of Birth should be a past date.")
	}
	if p.DateOfAdmission.Before(p.DateOfBirth) {
		violations = append(violations, "Date of Admission cannot be earlier than Date of Birth.")
	}
	if strings.TrimSpace(p.Address) == "" {
		violations = append(violations, "Address cannot be empty.")
	}

	return violations
}
