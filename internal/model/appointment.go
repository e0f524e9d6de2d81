package model

// Appointment references its doctor by name, not id. PatientName is free
// text and is not a foreign key.
type Appointment struct {
	ID          int64    `db:"id" json:"id"`
	PatientName string   `db:"patient_name" json:"patient_name"`
	DoctorName  string   `db:"doctor_name" json:"doctor_name"`
	StartTime   DateTime `db:"start_time" json:"start_time"`
	Reason      string   `db:"reason" json:"reason"`
}

type CreateAppointmentRequest struct {
	PatientName string   `json:"patient_name" binding:"required"`
	DoctorName  string   `json:"doctor_name" binding:"required"`
	StartTime   DateTime `json:"start_time" binding:"required"`
	Reason      string   `json:"reason" binding:"required"`
}

// AppointmentFilters narrows listings by doctor name and an inclusive date
// range over the start timestamp.
type AppointmentFilters struct {
	DoctorName string
	From       *Date
	To         *Date
}
