package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/MissVentas-api/internal/domain/entity"
)

// FromProduct convierte la entidad en su representación de salida.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Cost:           p.Cost,
		SuggestedPrice: p.SuggestedPrice,
		Stock:          p.Stock,
		Photo:          p.Photo,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromClient convierte la entidad en su representación de salida.
func FromClient(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Nickname:  c.Nickname,
		WhatsApp:  c.WhatsApp,
		Facebook:  c.Facebook,
		Other:     c.Other,
		TotalDebt: c.TotalDebt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromSale convierte la entidad en su representación de salida.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		ClientID:  s.ClientID,
		SalePrice: s.SalePrice,
		Profit:    s.Profit,
		Date:      s.Date,
		Paid:      s.Paid,
	}
}

// FromPayment convierte el abono; clientDebt es la deuda vigente del cliente.
func FromPayment(p *entity.Payment, clientDebt decimal.Decimal) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		Amount:     p.Amount,
		Date:       p.Date,
		Evidence:   p.Evidence,
		Verified:   p.Verified,
		ClientDebt: clientDebt,
	}
}

// FromCircle convierte la entidad en su representación de salida.
func FromCircle(c *entity.Circle) CircleResponse {
	return CircleResponse{
		ID:               c.ID,
		Name:             c.Name,
		AmountPerSlot:    c.AmountPerSlot,
		Periodicity:      c.Periodicity,
		StartDate:        c.StartDate,
		ParticipantCount: c.ParticipantCount,
	}
}

// FromCirclePayment convierte la entidad en su representación de salida.
func FromCirclePayment(p *entity.CirclePayment) CirclePaymentResponse {
	return CirclePaymentResponse{
		ID:              p.ID,
		CircleID:        p.CircleID,
		PeriodNumber:    p.PeriodNumber,
		ParticipantName: p.ParticipantName,
		Amount:          p.Amount,
		Paid:            p.Paid,
		IsBeneficiary:   p.IsBeneficiary,
		State:           p.State(),
		Evidence:        p.Evidence,
	}
}
