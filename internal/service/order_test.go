package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	owner = entities.Requester{UserID: "user-1"}
	admin = entities.Requester{UserID: "admin-1", IsAdmin: true}
	other = entities.Requester{UserID: "user-2"}
)

type deps struct {
	repo   *mocks.MockOrderRepo
	ledger *mocks.MockLedger
	cache  *mocks.MockCache
}

type MockBehavior func(d deps)

func newDeps(t *testing.T) deps {
	return deps{
		repo:   mocks.NewMockOrderRepo(t),
		ledger: mocks.NewMockLedger(t),
		cache:  mocks.NewMockCache(t),
	}
}

func newTxManager(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var phone = entities.Product{ID: "phone", Name: "Phone", Image: "/images/phone.jpg", Price: dec("100.00"), CountInStock: 5}

func orderIn(status entities.Status) entities.Order {
	return entities.Order{
		ID:     "order-1",
		UserID: "user-1",
		Items: []entities.LineItem{
			{ProductID: "phone", Name: "Phone", Image: "/images/phone.jpg", Quantity: 2, Price: dec("100.00")},
		},
		ShippingAddress: entities.ShippingAddress{Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US", Phone: "555-0100"},
		PaymentMethod:   "PayPal",
		TaxPrice:        dec("30.00"),
		ShippingPrice:   dec("0.00"),
		TotalPrice:      dec("230.00"),
		Status:          status,
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	validInput := entities.NewOrder{
		UserID:          "user-1",
		Items:           []entities.StockItem{{ProductID: "phone", Quantity: 2}},
		ShippingAddress: entities.ShippingAddress{Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US", Phone: "555-0100"},
		PaymentMethod:   "PayPal",
		TaxPrice:        dec("30.00"),
		ShippingPrice:   dec("0.00"),
		TotalPrice:      dec("230.00"),
	}

	withTotal := func(total string) entities.NewOrder {
		in := validInput
		in.TotalPrice = dec(total)
		return in
	}

	testCases := []struct {
		name         string
		input        entities.NewOrder
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(map[string]entities.Product{"phone": phone}, nil).Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPending && o.UserID == "user-1" && len(o.Items) == 1
				})).Return(nil).Once()
				d.cache.EXPECT().SetFunc(mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:         "No items",
			input:        entities.NewOrder{UserID: "user-1"},
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name: "Zero quantity",
			input: entities.NewOrder{
				UserID: "user-1",
				Items:  []entities.StockItem{{ProductID: "phone", Quantity: 0}},
			},
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "Negative amount",
			input:        withTotal("-1"),
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:  "Insufficient stock",
			input: validInput,
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(nil, &entities.InsufficientStockError{ProductID: "phone", Available: 1, Requested: 2}).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "Product not found",
			input: validInput,
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(nil, &entities.ProductNotFoundError{ProductID: "phone"}).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "Caller total kept as given",
			input: withTotal("229.99"),
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(map[string]entities.Product{"phone": phone}, nil).Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.TotalPrice.Equal(dec("229.99"))
				})).Return(nil).Once()
				d.cache.EXPECT().SetFunc(mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:  "Amounts rounded to cents before persisting",
			input: withTotal("230.0049"),
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(map[string]entities.Product{"phone": phone}, nil).Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.TotalPrice.Equal(dec("230.00")) && o.TotalPrice.Exponent() >= -2
				})).Return(nil).Once()
				d.cache.EXPECT().SetFunc(mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:  "Persistence fails",
			input: validInput,
			mockBehavior: func(d deps) {
				d.ledger.EXPECT().ReserveAll(mock.Anything, validInput.Items).
					Return(map[string]entities.Product{"phone": phone}, nil).Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			got, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got.ID)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, entities.StatusPending, got.Status)
			assert.False(t, got.IsPaid)
			require.Len(t, got.Items, 1)
			assert.Equal(t, "Phone", got.Items[0].Name)
			assert.Equal(t, "/images/phone.jpg", got.Items[0].Image)
			assert.True(t, got.Items[0].Price.Equal(dec("100.00")))
			assert.True(t, got.TotalPrice.Equal(entities.RoundMoney(tc.input.TotalPrice)))
			assert.True(t, got.TaxPrice.Equal(tc.input.TaxPrice))
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	order := orderIn(entities.StatusPending)
	data, err := order.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		requester    entities.Requester
		mockBehavior MockBehavior
		want         entities.Order
		wantErr      error
	}{
		{
			name:      "Owner from cache",
			requester: owner,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(data, true).Once()
			},
			want: order,
		},
		{
			name:      "Admin from repo, set to cache",
			requester: admin,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			want: order,
		},
		{
			name:      "Other user forbidden",
			requester: other,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(data, true).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "Not found is not retried",
			requester: admin,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "Broken cache entry falls back to repo",
			requester: owner,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return([]byte("broken"), true).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			want: order,
		},
		{
			name:      "Second attempt from repo",
			requester: owner,
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("connection reset")).Once()
				d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			want: order,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			got, err := svc.GetOrder(context.Background(), "order-1", tc.requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, got.ID)
			assert.Equal(t, tc.want.UserID, got.UserID)
			assert.Equal(t, tc.want.Status, got.Status)
			assert.True(t, tc.want.TotalPrice.Equal(got.TotalPrice))
			assert.Len(t, got.Items, len(tc.want.Items))
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		requester    entities.Requester
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "Owner cancels pending order",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.ledger.EXPECT().ReleaseAll(mock.Anything, []entities.StockItem{{ProductID: "phone", Quantity: 2}}).
					Return(nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusCancelled
				})).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
		},
		{
			name:      "Admin cancels someone else's order",
			requester: admin,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.ledger.EXPECT().ReleaseAll(mock.Anything, mock.Anything).Return(nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
		},
		{
			name:      "Other user forbidden",
			requester: other,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "Processing order cannot be cancelled",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusProcessing), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:      "Already cancelled",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusCancelled), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:      "Not found",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "Release fails",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.ledger.EXPECT().ReleaseAll(mock.Anything, mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			got, err := svc.CancelOrder(context.Background(), "order-1", tc.requester)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, got.Status)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	notes := "leave at the door"

	testCases := []struct {
		name         string
		requester    entities.Requester
		update       entities.StatusUpdate
		mockBehavior MockBehavior
		check        func(t *testing.T, o entities.Order)
		wantErr      error
	}{
		{
			name:         "Not admin",
			requester:    owner,
			update:       entities.StatusUpdate{Status: entities.StatusShipped},
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "Nothing to update",
			requester:    admin,
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "Unknown status",
			requester:    admin,
			update:       entities.StatusUpdate{Status: "Lost"},
			mockBehavior: func(d deps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:      "Processing marks paid",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusProcessing},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			check: func(t *testing.T, o entities.Order) {
				assert.Equal(t, entities.StatusProcessing, o.Status)
				assert.True(t, o.IsPaid)
				assert.NotNil(t, o.PaidAt)
			},
		},
		{
			name:      "Shipped sets tracking",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusShipped, Carrier: "UPS", TrackingNumber: "1Z999"},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusProcessing), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			check: func(t *testing.T, o entities.Order) {
				assert.Equal(t, entities.StatusShipped, o.Status)
				assert.Equal(t, "UPS", o.Carrier)
				assert.Equal(t, "1Z999", o.TrackingNumber)
			},
		},
		{
			name:      "Delivered sets delivery fields",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusDelivered},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusShipped), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			check: func(t *testing.T, o entities.Order) {
				assert.Equal(t, entities.StatusDelivered, o.Status)
				assert.True(t, o.IsDelivered)
				assert.NotNil(t, o.DeliveredAt)
			},
		},
		{
			name:      "Notes only",
			requester: admin,
			update:    entities.StatusUpdate{Notes: &notes},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusDelivered), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			check: func(t *testing.T, o entities.Order) {
				assert.Equal(t, entities.StatusDelivered, o.Status)
				assert.Equal(t, notes, o.Notes)
			},
		},
		{
			name:      "Cancelled releases stock",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusCancelled, Notes: &notes},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.ledger.EXPECT().ReleaseAll(mock.Anything, []entities.StockItem{{ProductID: "phone", Quantity: 2}}).
					Return(nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			check: func(t *testing.T, o entities.Order) {
				assert.Equal(t, entities.StatusCancelled, o.Status)
				assert.Equal(t, notes, o.Notes)
			},
		},
		{
			name:      "Cancelled order cannot be delivered",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusDelivered},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusCancelled), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:      "Shipped order cannot be cancelled",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusCancelled},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusShipped), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:      "No way back to pending",
			requester: admin,
			update:    entities.StatusUpdate{Status: entities.StatusPending},
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusProcessing), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			got, err := svc.UpdateStatus(context.Background(), "order-1", tc.requester, tc.update)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestOrderService_MarkPaid(t *testing.T) {
	result := entities.PaymentResult{ID: "PAY-1", Status: "COMPLETED", UpdateTime: "2024-01-02T10:00:00Z", EmailAddress: "buyer@example.com"}

	testCases := []struct {
		name         string
		requester    entities.Requester
		mockBehavior MockBehavior
		wantStatus   entities.Status
		wantErr      error
	}{
		{
			name:      "Owner pays pending order",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			wantStatus: entities.StatusProcessing,
		},
		{
			name:      "Paying a shipped order keeps status",
			requester: admin,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusShipped), nil).Once()
				d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
			},
			wantStatus: entities.StatusShipped,
		},
		{
			name:      "Other user forbidden",
			requester: other,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusPending), nil).Once()
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "Cancelled order",
			requester: owner,
			mockBehavior: func(d deps) {
				d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusCancelled), nil).Once()
			},
			wantErr: entities.ErrInvalidState,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			got, err := svc.MarkPaid(context.Background(), "order-1", tc.requester, result)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.True(t, got.IsPaid)
			assert.NotNil(t, got.PaidAt)
			assert.Equal(t, &result, got.PaymentResult)
		})
	}
}

func TestOrderService_MarkDelivered(t *testing.T) {
	t.Run("Not admin", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		_, err := svc.MarkDelivered(context.Background(), "order-1", owner)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("Admin delivers shipped order", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusShipped), nil).Once()
		d.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Once()
		d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		got, err := svc.MarkDelivered(context.Background(), "order-1", admin)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, got.Status)
		assert.True(t, got.IsDelivered)
		assert.NotNil(t, got.DeliveredAt)
	})

	t.Run("Cancelled order", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(orderIn(entities.StatusCancelled), nil).Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		_, err := svc.MarkDelivered(context.Background(), "order-1", admin)
		assert.ErrorIs(t, err, entities.ErrInvalidState)
	})
}

func TestOrderService_Lists(t *testing.T) {
	orders := []entities.Order{orderIn(entities.StatusPending), orderIn(entities.StatusShipped)}

	t.Run("All orders for admin", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().AllOrders(mock.Anything).Return(orders, nil).Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		got, err := svc.AllOrders(context.Background(), admin)
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("All orders forbidden for users", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		_, err := svc.AllOrders(context.Background(), owner)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("Own orders", func(t *testing.T) {
		d := newDeps(t)
		d.repo.EXPECT().OrdersByUser(mock.Anything, "user-1").Return(orders, nil).Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		got, err := svc.OrdersForUser(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("Own orders without user", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		_, err := svc.OrdersForUser(context.Background(), "")
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d := newDeps(t)
		first := orderIn(entities.StatusPending)
		second := orderIn(entities.StatusShipped)
		second.ID = "order-2"

		d.repo.EXPECT().LatestOrders(mock.Anything, 10).Return([]entities.Order{first, second}, nil).Once()
		d.cache.EXPECT().SetFunc("order-1", mock.Anything).Return().Once()
		d.cache.EXPECT().SetFunc("order-2", mock.Anything).Return().Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		assert.NoError(t, svc.WarmUpCache(context.Background(), 10))
	})

	t.Run("Repo fails", func(t *testing.T) {
		d := newDeps(t)
		dbError := errors.New("db error")
		d.repo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, dbError).Once()
		svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)

		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), dbError)
	})
}

func TestOrderService_CacheKeepsNewerVersion(t *testing.T) {
	stale := orderIn(entities.StatusPending)
	fresh := orderIn(entities.StatusShipped)
	fresh.UpdatedAt = fresh.UpdatedAt.Add(time.Hour)
	freshData, err := fresh.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		current   []byte
		ok        bool
		wantStore bool
	}{
		{name: "Empty cache", wantStore: true},
		{name: "Newer version cached", current: freshData, ok: true, wantStore: false},
		{name: "Broken entry replaced", current: []byte("broken"), ok: true, wantStore: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.cache.EXPECT().Get("order-1").Return(nil, false).Once()
			d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(stale, nil).Once()

			var stored bool
			d.cache.EXPECT().SetFunc("order-1", mock.Anything).
				Run(func(_ string, fn func([]byte, bool) ([]byte, bool)) {
					_, stored = fn(tc.current, tc.ok)
				}).
				Return().Once()

			svc := service.NewOrderService(newLogger(), newTxManager(t), d.repo, d.ledger, d.cache)
			_, err := svc.GetOrder(context.Background(), "order-1", admin)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStore, stored)
		})
	}
}
