package catalog

// defaultHospitals, defaultDoctors and defaultMedicines are the built-in
// reference snapshot served when no CATALOG_FILE override is configured.

func defaultHospitals() []Hospital {
	return []Hospital{
		{
			ID:        "1",
			Name:      "City General Hospital",
			Address:   "123 Main Street, Medical District",
			Distance:  2.5,
			Latitude:  28.6139,
			Longitude: 77.2090,
		},
		{
			ID:        "2",
			Name:      "Apollo Healthcare Center",
			Address:   "456 Park Avenue, Downtown",
			Distance:  3.8,
			Latitude:  28.6129,
			Longitude: 77.2295,
		},
		{
			ID:        "3",
			Name:      "Medicare Specialty Clinic",
			Address:   "789 Hospital Road, North Zone",
			Distance:  5.2,
			Latitude:  28.7041,
			Longitude: 77.1025,
		},
	}
}

func defaultDoctors() []Doctor {
	return []Doctor{
		{
			ID:              "1",
			Name:            "Dr. Priya Sharma",
			Specialty:       "Cardiologist",
			Education:       "MBBS, MD (Cardiology)",
			Experience:      15,
			Rating:          4.8,
			Reviews:         234,
			ConsultationFee: 800,
			IsAvailable:     true,
			CurrentPatients: 5,
			HospitalID:      "1",
			Photo:           "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400",
		},
		{
			ID:              "2",
			Name:            "Dr. Rajesh Kumar",
			Specialty:       "Orthopedic",
			Education:       "MBBS, MS (Orthopedics)",
			Experience:      12,
			Rating:          4.7,
			Reviews:         189,
			ConsultationFee: 700,
			IsAvailable:     false,
			CurrentPatients: 0,
			HospitalID:      "1",
			Photo:           "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400",
		},
		{
			ID:              "3",
			Name:            "Dr. Anjali Mehta",
			Specialty:       "Pediatrician",
			Education:       "MBBS, MD (Pediatrics)",
			Experience:      10,
			Rating:          4.9,
			Reviews:         312,
			ConsultationFee: 600,
			IsAvailable:     true,
			CurrentPatients: 8,
			HospitalID:      "1",
			Photo:           "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=400",
		},
		{
			ID:              "4",
			Name:            "Dr. Vikram Singh",
			Specialty:       "General Physician",
			Education:       "MBBS, MD (General Medicine)",
			Experience:      18,
			Rating:          4.6,
			Reviews:         267,
			ConsultationFee: 500,
			IsAvailable:     true,
			CurrentPatients: 12,
			HospitalID:      "2",
			Photo:           "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400",
		},
		{
			ID:              "5",
			Name:            "Dr. Neha Patel",
			Specialty:       "Dermatologist",
			Education:       "MBBS, MD (Dermatology)",
			Experience:      8,
			Rating:          4.8,
			Reviews:         178,
			ConsultationFee: 750,
			IsAvailable:     true,
			CurrentPatients: 6,
			HospitalID:      "2",
			Photo:           "https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=400",
		},
	}
}

func defaultMedicines() []Medicine {
	return []Medicine{
		{
			ID:          "1",
			Name:        "Paracetamol 500mg",
			Type:        "Tablet",
			Uses:        "Pain relief and fever reduction",
			SideEffects: "Rare allergic reactions, liver damage with overdose",
			Pharmacies: []Pharmacy{
				{
					ID:       "1",
					Name:     "MedPlus Pharmacy",
					Address:  "Near City Hospital",
					Distance: 1.2,
					Price:    25,
					InStock:  true,
				},
				{
					ID:       "2",
					Name:     "Apollo Pharmacy",
					Address:  "Main Road, Downtown",
					Distance: 2.5,
					Price:    28,
					InStock:  true,
				},
			},
		},
		{
			ID:          "2",
			Name:        "Amoxicillin 250mg",
			Type:        "Capsule",
			Uses:        "Bacterial infections",
			SideEffects: "Nausea, diarrhea, allergic reactions",
			Pharmacies: []Pharmacy{
				{
					ID:       "1",
					Name:     "MedPlus Pharmacy",
					Address:  "Near City Hospital",
					Distance: 1.2,
					Price:    120,
					InStock:  true,
				},
			},
		},
	}
}
