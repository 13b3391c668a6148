package catalog

// Hospital is a facility in the reference directory.
type Hospital struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Distance  float64 `json:"distance"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Doctor is a practitioner attached to exactly one hospital. IsAvailable and
// CurrentPatients look live but are fixed snapshot data in this catalog.
type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Education       string  `json:"education"`
	Experience      int     `json:"experience"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	ConsultationFee int     `json:"consultation_fee"`
	IsAvailable     bool    `json:"is_available"`
	CurrentPatients int     `json:"current_patients"`
	HospitalID      string  `json:"hospital_id"`
	Photo           string  `json:"photo"`
}

// Medicine owns its pharmacy entries; pharmacy ids are unique only within
// their medicine.
type Medicine struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Uses        string     `json:"uses"`
	SideEffects string     `json:"side_effects"`
	Pharmacies  []Pharmacy `json:"pharmacies"`
}

// Pharmacy is one stocking location for a medicine.
type Pharmacy struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Distance float64 `json:"distance"`
	Price    int     `json:"price"`
	InStock  bool    `json:"in_stock"`
}
