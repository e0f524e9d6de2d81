package model

type BillStatus string

const (
	BillStatusPaid    BillStatus = "Paid"
	BillStatusPending BillStatus = "Pending"
)

func (s BillStatus) Valid() bool {
	return s == BillStatusPaid || s == BillStatusPending
}

// Bill stores patient_id as written: the reference is not enforced, so a
// dangling id is permitted and must be tolerated on read.
type Bill struct {
	ID        int64      `db:"id" json:"id"`
	PatientID int64      `db:"patient_id" json:"patient_id"`
	Amount    float64    `db:"amount" json:"amount"`
	Status    BillStatus `db:"status" json:"status"`
	Date      Date       `db:"date" json:"date"`
}

// BillRecord is a bill joined against the patient table to materialize a
// display name. Bills whose patient no longer exists never appear in joined
// listings.
type BillRecord struct {
	Bill
	PatientName string `db:"patient_name" json:"patient_name"`
}

type CreateBillRequest struct {
	PatientID int64      `json:"patient_id" binding:"required"`
	Amount    float64    `json:"amount"`
	Status    BillStatus `json:"status" binding:"required"`
	Date      Date       `json:"date" binding:"required"`
}

// BillFilters narrows bill listings by inclusive date and amount ranges.
// Each bound is optional, but a range with low > high is an invalid filter.
type BillFilters struct {
	From      *Date
	To        *Date
	MinAmount *float64
	MaxAmount *float64
}
