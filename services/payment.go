package services

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
)

// PaymentGateway trừu tượng hóa cổng thanh toán bên ngoài.
// Mọi trạng thái khác thành công đều được coi là thanh toán thất bại.
type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int64, currency, description, token string) error
}

// StripeGateway implement PaymentGateway qua Stripe Charges API
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(ctx context.Context, amountCents int64, currency, description, token string) error {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if token != "" {
		if err := params.SetSource(token); err != nil {
			return err
		}
	}

	ch, err := charge.New(params)
	if err != nil {
		return err
	}
	if ch.Status != stripe.ChargeStatusSucceeded {
		return fmt.Errorf("trạng thái thanh toán: %s", ch.Status)
	}
	return nil
}
