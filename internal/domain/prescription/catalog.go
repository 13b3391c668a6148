// Package prescription serves the read-only history of past e-prescriptions
// and the "check availability" hand-off into the medicine directory.
package prescription

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a prescription id does not resolve.
var ErrNotFound = errors.New("prescription not found")

// Catalog is the static prescription history, same lifecycle as the
// reference catalog: loaded once, never mutated.
type Catalog struct {
	prescriptions []Prescription
	byID          map[string]int
}

// NewCatalog builds a Catalog from the given history.
func NewCatalog(prescriptions []Prescription) (*Catalog, error) {
	c := &Catalog{
		prescriptions: prescriptions,
		byID:          make(map[string]int, len(prescriptions)),
	}
	for i, p := range prescriptions {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate prescription id %q", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Default returns the built-in sample history.
func Default() *Catalog {
	c, err := NewCatalog(samplePrescriptions())
	if err != nil {
		panic(err)
	}
	return c
}

// List returns all prescriptions in loaded order.
func (c *Catalog) List() []Prescription { return c.prescriptions }

// Prescription resolves a prescription by id.
func (c *Catalog) Prescription(id string) (Prescription, error) {
	i, ok := c.byID[id]
	if !ok {
		return Prescription{}, fmt.Errorf("prescription %q: %w", id, ErrNotFound)
	}
	return c.prescriptions[i], nil
}

func samplePrescriptions() []Prescription {
	return []Prescription{
		{
			ID:         "1",
			DoctorName: "Dr. Priya Sharma",
			Specialty:  "Cardiologist",
			Date:       "2025-10-15",
			Diagnosis:  "Mild hypertension. Regular monitoring required. Lifestyle modifications recommended.",
			Medicines: []Medicine{
				{
					Name:     "Amlodipine 5mg",
					Dosage:   "1 tablet",
					Timing:   "Morning after breakfast",
					Duration: "30 days",
				},
				{
					Name:     "Aspirin 75mg",
					Dosage:   "1 tablet",
					Timing:   "Evening after dinner",
					Duration: "30 days",
				},
			},
		},
		{
			ID:         "2",
			DoctorName: "Dr. Vikram Singh",
			Specialty:  "General Physician",
			Date:       "2025-09-28",
			Diagnosis:  "Viral fever with body ache. Rest and hydration recommended.",
			Medicines: []Medicine{
				{
					Name:     "Paracetamol 500mg",
					Dosage:   "1 tablet",
					Timing:   "Every 6 hours if fever",
					Duration: "5 days",
				},
				{
					Name:     "Vitamin C",
					Dosage:   "1 tablet",
					Timing:   "Once daily after breakfast",
					Duration: "7 days",
				},
			},
		},
	}
}
