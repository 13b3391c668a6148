// Package catalog holds the immutable reference directory (hospitals,
// doctors, medicines with their pharmacies) and the pure search operations
// over it. The store is loaded once at process start and never mutated.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when an id does not resolve to a catalog entry.
var ErrNotFound = errors.New("not found")

// Store is the read-only reference catalog. Accessors return the sequences
// in loaded order; callers must not modify the returned slices.
type Store struct {
	hospitals []Hospital
	doctors   []Doctor
	medicines []Medicine

	hospitalByID map[string]int
	doctorByID   map[string]int
	medicineByID map[string]int
}

// New builds a Store from the given reference data. Every doctor's hospital
// id must resolve to one of the hospitals.
func New(hospitals []Hospital, doctors []Doctor, medicines []Medicine) (*Store, error) {
	s := &Store{
		hospitals:    hospitals,
		doctors:      doctors,
		medicines:    medicines,
		hospitalByID: make(map[string]int, len(hospitals)),
		doctorByID:   make(map[string]int, len(doctors)),
		medicineByID: make(map[string]int, len(medicines)),
	}
	for i, h := range hospitals {
		if _, dup := s.hospitalByID[h.ID]; dup {
			return nil, fmt.Errorf("duplicate hospital id %q", h.ID)
		}
		s.hospitalByID[h.ID] = i
	}
	for i, d := range doctors {
		if _, dup := s.doctorByID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate doctor id %q", d.ID)
		}
		if _, ok := s.hospitalByID[d.HospitalID]; !ok {
			return nil, fmt.Errorf("doctor %q references unknown hospital %q", d.ID, d.HospitalID)
		}
		s.doctorByID[d.ID] = i
	}
	for i, m := range medicines {
		if _, dup := s.medicineByID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate medicine id %q", m.ID)
		}
		s.medicineByID[m.ID] = i
	}
	return s, nil
}

// Default returns a Store holding the built-in reference snapshot.
func Default() *Store {
	s, err := New(defaultHospitals(), defaultDoctors(), defaultMedicines())
	if err != nil {
		// The built-in data is fixed; a failure here is a programming error.
		panic(err)
	}
	return s
}

// catalogFile is the on-disk shape accepted by Load.
type catalogFile struct {
	Hospitals []Hospital `json:"hospitals"`
	Doctors   []Doctor   `json:"doctors"`
	Medicines []Medicine `json:"medicines"`
}

// Load reads a catalog override from a JSON file.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return New(f.Hospitals, f.Doctors, f.Medicines)
}

// Hospitals returns all hospitals in loaded order.
func (s *Store) Hospitals() []Hospital { return s.hospitals }

// Doctors returns all doctors in loaded order.
func (s *Store) Doctors() []Doctor { return s.doctors }

// Medicines returns all medicines in loaded order.
func (s *Store) Medicines() []Medicine { return s.medicines }

// Hospital resolves a hospital by id.
func (s *Store) Hospital(id string) (Hospital, error) {
	i, ok := s.hospitalByID[id]
	if !ok {
		return Hospital{}, fmt.Errorf("hospital %q: %w", id, ErrNotFound)
	}
	return s.hospitals[i], nil
}

// Doctor resolves a doctor by id.
func (s *Store) Doctor(id string) (Doctor, error) {
	i, ok := s.doctorByID[id]
	if !ok {
		return Doctor{}, fmt.Errorf("doctor %q: %w", id, ErrNotFound)
	}
	return s.doctors[i], nil
}

// Medicine resolves a medicine by id.
func (s *Store) Medicine(id string) (Medicine, error) {
	i, ok := s.medicineByID[id]
	if !ok {
		return Medicine{}, fmt.Errorf("medicine %q: %w", id, ErrNotFound)
	}
	return s.medicines[i], nil
}
