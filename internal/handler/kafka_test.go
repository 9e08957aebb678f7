package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_HandlePayment(t *testing.T) {
	const orderID = "7f9c24e5-2b8e-4c4e-9d7a-0f6b1a2c3d4e"

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(m *mocks.MockPaymentMarker)
		wantErr      bool
	}{
		{
			name:  "success",
			value: `{"order_id": "` + orderID + `", "payment_result": {"id": "PAY-1", "status": "COMPLETED"}}`,
			mockBehavior: func(m *mocks.MockPaymentMarker) {
				m.EXPECT().
					MarkPaid(mock.Anything, orderID, paymentsRequester, entities.PaymentResult{ID: "PAY-1", Status: "COMPLETED"}).
					Return(entities.Order{ID: orderID, Status: entities.StatusProcessing}, nil).Once()
			},
		},
		{
			name:    "malformed json",
			value:   `{"order_id":`,
			wantErr: true,
		},
		{
			name:    "missing payment id",
			value:   `{"order_id": "` + orderID + `", "payment_result": {"status": "COMPLETED"}}`,
			wantErr: true,
		},
		{
			name:    "invalid order id",
			value:   `{"order_id": "42", "payment_result": {"id": "PAY-1"}}`,
			wantErr: true,
		},
		{
			name:  "cancelled order",
			value: `{"order_id": "` + orderID + `", "payment_result": {"id": "PAY-1"}}`,
			mockBehavior: func(m *mocks.MockPaymentMarker) {
				m.EXPECT().
					MarkPaid(mock.Anything, orderID, paymentsRequester, mock.Anything).
					Return(entities.Order{}, &entities.InvalidStateError{Status: entities.StatusCancelled, Action: entities.ActionPay}).Once()
			},
			wantErr: true,
		},
		{
			name:  "storage error",
			value: `{"order_id": "` + orderID + `", "payment_result": {"id": "PAY-1"}}`,
			mockBehavior: func(m *mocks.MockPaymentMarker) {
				m.EXPECT().
					MarkPaid(mock.Anything, orderID, paymentsRequester, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			marker := mocks.NewMockPaymentMarker(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(marker)
			}

			h := &kafkaHandler{
				logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
				validate: utils.NewValidator(),
				marker:   marker,
			}

			err := h.handlePayment(context.Background(), kafka.Message{Topic: "payments", Value: []byte(tc.value)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
