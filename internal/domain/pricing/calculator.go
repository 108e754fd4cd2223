// Package pricing calcula el precio anual de una suscripción por paquetes de licencias.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/workspace-api/internal/domain"
)

// Bucket paquete de licencias con su descuento porcentual.
type Bucket struct {
	Seats           int `json:"seats"`
	DiscountPercent int `json:"discount_percent"`
}

// OpenEndedSeats a partir de este número de licencias aplica el último paquete.
const OpenEndedSeats = 1000

// MaxSeats tope de licencias por suscripción.
const MaxSeats = 1_000_000

var buckets = []Bucket{
	{Seats: 1, DiscountPercent: 0},
	{Seats: 3, DiscountPercent: 10},
	{Seats: 5, DiscountPercent: 15},
	{Seats: 10, DiscountPercent: 20},
	{Seats: 20, DiscountPercent: 25},
	{Seats: 50, DiscountPercent: 30},
	{Seats: 100, DiscountPercent: 40},
	{Seats: OpenEndedSeats, DiscountPercent: 50},
}

// Buckets devuelve la tabla de paquetes (copia).
func Buckets() []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	return out
}

// BucketSeats devuelve solo los tamaños de paquete.
func BucketSeats() []int {
	out := make([]int, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.Seats)
	}
	return out
}

// DiscountFor devuelve el descuento del paquete exacto; 1000 o más usa el paquete 1000+.
func DiscountFor(seats int) (int, error) {
	if seats > MaxSeats {
		return 0, fmt.Errorf("%w: %d supera el máximo de %d", domain.ErrInvalidSeatCount, seats, MaxSeats)
	}
	if seats >= OpenEndedSeats {
		return buckets[len(buckets)-1].DiscountPercent, nil
	}
	for _, b := range buckets {
		if b.Seats == seats {
			return b.DiscountPercent, nil
		}
	}
	return 0, fmt.Errorf("%w: %d (permitidas: %v, o %d+)", domain.ErrInvalidSeatCount, seats, BucketSeats()[:len(buckets)-1], OpenEndedSeats)
}

// Quote desglose del precio en unidades enteras de moneda.
type Quote struct {
	PricePerSeat    int64
	Seats           int
	BasePrice       int64
	DiscountPercent decimal.Decimal
	DiscountAmount  int64
	FinalPrice      int64
	Savings         int64
}

var hundred = decimal.NewFromInt(100)

// Calculate aplica el descuento del paquete:
// final = redondeo half-up(precio × licencias × (100 − %) / 100); ahorro = base − final.
func Calculate(pricePerSeat int64, seats int) (Quote, error) {
	if pricePerSeat < 0 {
		return Quote{}, fmt.Errorf("%w: precio por licencia negativo", domain.ErrInvalidInput)
	}
	pct, err := DiscountFor(seats)
	if err != nil {
		return Quote{}, err
	}
	if pricePerSeat > 0 && int64(seats) > math.MaxInt64/pricePerSeat {
		return Quote{}, fmt.Errorf("%w: el total de %d licencias desborda el importe", domain.ErrInvalidSeatCount, seats)
	}
	base := pricePerSeat * int64(seats)
	percent := decimal.NewFromInt(int64(pct))

	// Round en shopspring redondea la mitad alejándose de cero: para montos positivos es half-up.
	final := decimal.NewFromInt(base).
		Mul(hundred.Sub(percent)).
		Div(hundred).
		Round(0).
		IntPart()

	return Quote{
		PricePerSeat:    pricePerSeat,
		Seats:           seats,
		BasePrice:       base,
		DiscountPercent: percent,
		DiscountAmount:  base - final,
		FinalPrice:      final,
		Savings:         base - final,
	}, nil
}
