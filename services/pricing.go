package services

import (
	"math"

	"stitchworks-api/models"
)

// Pricing constants. Orders above the bulk threshold get the discounted
// unit price; artwork adds a flat fee.
const (
	BulkQuantityThreshold = 30
	BulkUnitPrice         = 1500
	StandardUnitPrice     = 2000
	ArtworkFlatFee        = 5000
)

// ComputePrice derives the full price breakdown for an order. Each field of
// supplied independently overrides the derived value when non-zero; zero
// fields fall back to derivation. Pure, no error conditions; quantity
// validation is the caller's job.
func ComputePrice(quantity int, artwork bool, supplied models.PriceInput) models.PriceDetails {
	var p models.PriceDetails

	p.UnitPrice = supplied.UnitPrice
	if p.UnitPrice == 0 {
		if quantity > BulkQuantityThreshold {
			p.UnitPrice = BulkUnitPrice
		} else {
			p.UnitPrice = StandardUnitPrice
		}
	}

	p.ArtworkFee = supplied.ArtworkFee
	if p.ArtworkFee == 0 && artwork {
		p.ArtworkFee = ArtworkFlatFee
	}

	p.Subtotal = supplied.Subtotal
	if p.Subtotal == 0 {
		p.Subtotal = float64(quantity) * p.UnitPrice
	}

	p.Total = supplied.Total
	if p.Total == 0 {
		p.Total = p.Subtotal + p.ArtworkFee
	}

	p.Advance = supplied.Advance
	if p.Advance == 0 {
		p.Advance = math.Round(p.Total * 0.5)
	}

	p.Balance = supplied.Balance
	if p.Balance == 0 {
		p.Balance = p.Total - p.Advance
	}

	return p
}
