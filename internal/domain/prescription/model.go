package prescription

// Prescription is one past visit's e-prescription. Reference/history data,
// immutable in this scope.
type Prescription struct {
	ID         string     `json:"id"`
	DoctorName string     `json:"doctor_name"`
	Specialty  string     `json:"specialty"`
	Date       string     `json:"date"`
	Diagnosis  string     `json:"diagnosis"`
	Medicines  []Medicine `json:"medicines"`
}

// Medicine is one prescribed line item.
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Timing   string `json:"timing"`
	Duration string `json:"duration"`
}
