package catalog

import (
	"errors"
	"fmt"
)

// DeliveryFee is the fixed surcharge for home delivery of a pharmacy order.
const DeliveryFee = 30

// ErrOutOfStock is returned when a quote is requested from a pharmacy that
// has no stock of the medicine.
var ErrOutOfStock = errors.New("out of stock")

// Quote is a priced pharmacy order for one medicine.
type Quote struct {
	MedicineID   string `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	PharmacyID   string `json:"pharmacy_id"`
	PharmacyName string `json:"pharmacy_name"`
	Price        int    `json:"price"`
	DeliveryFee  int    `json:"delivery_fee"`
	Total        int    `json:"total"`
	HomeDelivery bool   `json:"home_delivery"`
}

// QuoteOrder prices an order for a medicine at one of its pharmacies. Home
// delivery adds the fixed DeliveryFee on top of the pharmacy price.
func (s *Store) QuoteOrder(medicineID, pharmacyID string, homeDelivery bool) (Quote, error) {
	m, err := s.Medicine(medicineID)
	if err != nil {
		return Quote{}, err
	}
	for _, p := range m.Pharmacies {
		if p.ID != pharmacyID {
			continue
		}
		if !p.InStock {
			return Quote{}, fmt.Errorf("%s at %s: %w", m.Name, p.Name, ErrOutOfStock)
		}
		q := Quote{
			MedicineID:   m.ID,
			MedicineName: m.Name,
			PharmacyID:   p.ID,
			PharmacyName: p.Name,
			Price:        p.Price,
			HomeDelivery: homeDelivery,
			Total:        p.Price,
		}
		if homeDelivery {
			q.DeliveryFee = DeliveryFee
			q.Total += DeliveryFee
		}
		return q, nil
	}
	return Quote{}, fmt.Errorf("pharmacy %q for medicine %q: %w", pharmacyID, medicineID, ErrNotFound)
}
