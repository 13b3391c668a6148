package appointment

import "fmt"

// PlatformFee is the fixed surcharge added to every consultation fee at
// booking time.
const PlatformFee = 20

// Status of an appointment record. Completed is reachable only by external
// time-passage logic, never by this service.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment is one booked consultation. Doctor name, specialty and
// hospital name are denormalized at booking time so history survives catalog
// changes; Fee is frozen at booking time for the same reason.
type Appointment struct {
	ID           string `json:"id"`
	DoctorID     string `json:"doctor_id"`
	DoctorName   string `json:"doctor_name"`
	Specialty    string `json:"specialty"`
	HospitalName string `json:"hospital_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Token        string `json:"token"`
	Fee          int    `json:"fee"`
	Status       Status `json:"status"`
	PatientName  string `json:"patient_name,omitempty"`
	PatientAge   *int   `json:"patient_age,omitempty"`
}

// ValidationError reports invalid patient input on a booking request. Field
// identifies which input failed so the caller can display it next to the
// right control.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const (
	minPatientAge = 0
	maxPatientAge = 120
)
