package client

import (
	"context"

	"github.com/dmitrijs2005/learnhub/internal/client/models"
)

type PaymentsAPI struct {
	c *HTTPClient
}

// CreateOrder opens a payment-provider order for a paid course.
func (a *PaymentsAPI) CreateOrder(ctx context.Context, courseID int64) (*models.Order, error) {
	var order models.Order
	if err := a.c.post(ctx, "/payments/create-order", models.CreateOrderRequest{CourseID: courseID}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *PaymentsAPI) Verify(ctx context.Context, v models.PaymentVerification) (*models.Payment, error) {
	var payment models.Payment
	if err := a.c.post(ctx, "/payments/verify", v, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (a *PaymentsAPI) History(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := a.c.get(ctx, "/payments/history", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
