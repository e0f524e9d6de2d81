package model

type Doctor struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	Contact        string `db:"contact" json:"contact"`
	// Availability is stored denormalized; see model.Availability for the
	// structured form.
	Availability string `db:"availability" json:"availability"`
}

type CreateDoctorRequest struct {
	Name           string       `json:"name" binding:"required"`
	Specialization string       `json:"specialization" binding:"required"`
	Contact        string       `json:"contact" binding:"required"`
	Availability   Availability `json:"availability" binding:"required"`
}

// DoctorDetail is a doctor plus the parsed availability, returned where the
// caller needs the day set and time window for editing.
type DoctorDetail struct {
	Doctor
	AvailabilityDetail Availability `json:"availability_detail"`
}
