package catalog

import (
	"fmt"
	"strings"
)

// DoctorsAtHospital returns the doctors attached to the given hospital,
// preserving catalog order.
func (s *Store) DoctorsAtHospital(hospitalID string) []Doctor {
	var out []Doctor
	for _, d := range s.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

// FilterDoctors keeps doctors whose name or specialty contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterDoctors(doctors []Doctor, query string) []Doctor {
	if query == "" {
		return doctors
	}
	q := strings.ToLower(query)
	var out []Doctor
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialty), q) {
			out = append(out, d)
		}
	}
	return out
}

// FilterMedicines keeps medicines whose name contains the query,
// case-insensitively. An empty query returns all medicines.
func (s *Store) FilterMedicines(query string) []Medicine {
	if query == "" {
		return s.medicines
	}
	q := strings.ToLower(query)
	var out []Medicine
	for _, m := range s.medicines {
		if strings.Contains(strings.ToLower(m.Name), q) {
			out = append(out, m)
		}
	}
	return out
}

// FilterHospitals keeps hospitals whose name or address contains the query,
// case-insensitively. An empty query returns all hospitals.
func (s *Store) FilterHospitals(query string) []Hospital {
	if query == "" {
		return s.hospitals
	}
	q := strings.ToLower(query)
	var out []Hospital
	for _, h := range s.hospitals {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.Address), q) {
			out = append(out, h)
		}
	}
	return out
}

// FindMedicineByFragment is a best-effort index from a free-form medicine
// name (for example a line item on a prescription) to a catalog entry. It
// matches the first whitespace-delimited token of name, lower-cased, as a
// substring of each medicine name and returns the first hit. Names with no
// matching entry legitimately resolve to ErrNotFound.
func (s *Store) FindMedicineByFragment(name string) (Medicine, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return Medicine{}, fmt.Errorf("medicine fragment %q: %w", name, ErrNotFound)
	}
	token := strings.ToLower(fields[0])
	for _, m := range s.medicines {
		if strings.Contains(strings.ToLower(m.Name), token) {
			return m, nil
		}
	}
	return Medicine{}, fmt.Errorf("medicine fragment %q: %w", name, ErrNotFound)
}
