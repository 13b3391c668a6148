package catalog

import (
	"errors"
	"testing"
)

func TestQuoteOrderPickup(t *testing.T) {
	s := Default()

	q, err := s.QuoteOrder("1", "1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 25 || q.DeliveryFee != 0 || q.Total != 25 {
		t.Errorf("unexpected quote: %+v", q)
	}
	if q.PharmacyName != "MedPlus Pharmacy" {
		t.Errorf("unexpected pharmacy: %q", q.PharmacyName)
	}
}

func TestQuoteOrderHomeDelivery(t *testing.T) {
	s := Default()

	q, err := s.QuoteOrder("1", "2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Price != 28 || q.DeliveryFee != DeliveryFee || q.Total != 28+DeliveryFee {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestQuoteOrderOutOfStock(t *testing.T) {
	medicines := []Medicine{{
		ID:   "m1",
		Name: "Testol 10mg",
		Pharmacies: []Pharmacy{
			{ID: "p1", Name: "Corner Pharmacy", Price: 40, InStock: false},
		},
	}}
	s, err := New(nil, nil, medicines)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.QuoteOrder("m1", "p1", false); !errors.Is(err, ErrOutOfStock) {
		t.Errorf("expected ErrOutOfStock, got %v", err)
	}
}

func TestQuoteOrderNotFound(t *testing.T) {
	s := Default()

	if _, err := s.QuoteOrder("99", "1", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown medicine, got %v", err)
	}
	if _, err := s.QuoteOrder("1", "99", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown pharmacy, got %v", err)
	}
}
