package service

import (
	"context"
	"fmt"
	"time"

	"piramida/pkg/logger"
)

// PaymentRequest describes a listing-plan charge.
type PaymentRequest struct {
	OrderID    string
	Amount     string
	Plan       string
	CardNumber string
	ExpiryDate string
	CVV        string
	CardName   string
}

// PaymentResponse is the gateway's result.
type PaymentResponse struct {
	OrderID string
	Status  string
	Token   string
}

// PaymentGatewayService processes listing-plan payments.
type PaymentGatewayService interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResponse, error)
}

// SimulatedPaymentService stands in for a real gateway. It waits out a fixed
// processing delay but honors context cancellation, so navigating away aborts
// the charge before anything is recorded.
type SimulatedPaymentService struct {
	processingDelay time.Duration
}

func NewSimulatedPaymentService(processingDelay time.Duration) *SimulatedPaymentService {
	return &SimulatedPaymentService{
		processingDelay: processingDelay,
	}
}

func (s *SimulatedPaymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResponse, error) {
	logger.Info("Processing payment for order: %s, plan: %s, amount: %s", req.OrderID, req.Plan, req.Amount)

	select {
	case <-time.After(s.processingDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	response := &PaymentResponse{
		OrderID: req.OrderID,
		Status:  "settlement",
		Token:   fmt.Sprintf("pay-token-%s-%d", req.OrderID, time.Now().Unix()),
	}

	logger.Info("Payment settled for order: %s", req.OrderID)
	return response, nil
}
