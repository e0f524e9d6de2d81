package model

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the three enumerated values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Patient struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	DateOfBirth        Date   `db:"dob" json:"date_of_birth"`
	Age                int    `db:"age" json:"age"`
	Gender             Gender `db:"gender" json:"gender"`
	Contact            string `db:"contact" json:"contact"`
	DateOfAdmission    Date   `db:"date_of_admission" json:"date_of_admission"`
	Address            string `db:"address" json:"address"`
	MedicalHistory     string `db:"medical_history" json:"medical_history,omitempty"`
	Allergies          string `db:"allergies" json:"allergies,omitempty"`
	ChronicConditions  string `db:"chronic_conditions" json:"chronic_conditions,omitempty"`
	PriorSurgeries     string `db:"prior_surgeries" json:"prior_surgeries,omitempty"`
	CurrentMedications string `db:"current_medications" json:"current_medications,omitempty"`
}

type CreatePatientRequest struct {
	Name               string `json:"name" binding:"required"`
	DateOfBirth        Date   `json:"date_of_birth" binding:"required"`
	Age                int    `json:"age"`
	Gender             Gender `json:"gender" binding:"required"`
	Contact            string `json:"contact" binding:"required"`
	DateOfAdmission    Date   `json:"date_of_admission" binding:"required"`
	Address            string `json:"address" binding:"required"`
	MedicalHistory     string `json:"medical_history"`
	Allergies          string `json:"allergies"`
	ChronicConditions  string `json:"chronic_conditions"`
	PriorSurgeries     string `json:"prior_surgeries"`
	CurrentMedications string `json:"current_medications"`
}

// Patient returns the entity a create/update request describes. Updates are
// full-record overwrites, so both flows share this mapping.
func (r *CreatePatientRequest) Patient() *Patient {
	return &Patient{
		Name:               r.Name,
		DateOfBirth:        r.DateOfBirth,
		Age:                r.Age,
		Gender:             r.Gender,
		Contact:            r.Contact,
		DateOfAdmission:    r.DateOfAdmission,
		Address:            r.Address,
		MedicalHistory:     r.MedicalHistory,
		Allergies:          r.Allergies,
		ChronicConditions:  r.ChronicConditions,
		PriorSurgeries:     r.PriorSurgeries,
		CurrentMedications: r.CurrentMedications,
	}
}

// PatientFilters narrows patient listings to an inclusive admission-date
// range. Nil bounds leave the listing unfiltered.
type PatientFilters struct {
	AdmittedFrom *Date
	AdmittedTo   *Date
}
