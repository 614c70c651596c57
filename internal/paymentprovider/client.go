// Package paymentprovider оборачивает платёжный провайдер Stripe.
// Сервису нужна одна операция: создать payment intent на сумму в минорных
// единицах валюты и вернуть client secret для завершения оплаты на клиенте.
package paymentprovider

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Client описывает операции платёжного провайдера.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

type client struct {
	secretKey string
}

// NewClient создаёт клиент Stripe с секретным ключом из конфига.
func NewClient(secretKey string) Client {
	stripe.Key = secretKey
	return &client{secretKey: secretKey}
}

// CreatePaymentIntent создаёт payment intent на указанную сумму.
// Сумма задаётся в минорных единицах валюты (центы для usd).
func (c *client) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent, nil
}
