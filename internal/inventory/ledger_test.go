package inventory_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/inventory"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/inventory/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func TestLedger_ReserveAll(t *testing.T) {
	type MockBehavior func(repo *mocks.MockStockRepo)

	dbError := errors.New("db error")

	apple := entities.Product{ID: "apple", Name: "Apple", Price: decimal.RequireFromString("1.50"), CountInStock: 10}
	pear := entities.Product{ID: "pear", Name: "Pear", Price: decimal.RequireFromString("2.00"), CountInStock: 4}

	testCases := []struct {
		name         string
		items        []entities.StockItem
		mockBehavior MockBehavior
		want         map[string]entities.Product
		wantErr      error
		wantStockErr *entities.InsufficientStockError
	}{
		{
			name: "OK, duplicates summed and locked in id order",
			items: []entities.StockItem{
				{ProductID: "pear", Quantity: 1},
				{ProductID: "apple", Quantity: 2},
				{ProductID: "pear", Quantity: 3},
			},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, []string{"apple", "pear"}).
					Return([]entities.Product{apple, pear}, nil)
				repo.EXPECT().DecrementStock(mock.Anything, "apple", 2).Once().Return(true, nil)
				repo.EXPECT().DecrementStock(mock.Anything, "pear", 4).Once().Return(true, nil)
			},
			want: map[string]entities.Product{"apple": apple, "pear": pear},
		},
		{
			name: "Duplicates exceed stock together",
			items: []entities.StockItem{
				{ProductID: "pear", Quantity: 3},
				{ProductID: "pear", Quantity: 2},
			},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, []string{"pear"}).
					Return([]entities.Product{pear}, nil)
			},
			wantErr:      entities.ErrInsufficientStock,
			wantStockErr: &entities.InsufficientStockError{ProductID: "pear", Available: 4, Requested: 5},
		},
		{
			name: "Insufficient stock on later item, nothing decremented",
			items: []entities.StockItem{
				{ProductID: "apple", Quantity: 1},
				{ProductID: "pear", Quantity: 5},
			},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, []string{"apple", "pear"}).
					Return([]entities.Product{apple, pear}, nil)
			},
			wantErr:      entities.ErrInsufficientStock,
			wantStockErr: &entities.InsufficientStockError{ProductID: "pear", Available: 4, Requested: 5},
		},
		{
			name:  "Product not found",
			items: []entities.StockItem{{ProductID: "apple", Quantity: 1}, {ProductID: "plum", Quantity: 1}},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, []string{"apple", "plum"}).
					Return([]entities.Product{apple}, nil)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "Conditional decrement rejected",
			items: []entities.StockItem{{ProductID: "apple", Quantity: 2}},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, []string{"apple"}).
					Return([]entities.Product{apple}, nil)
				repo.EXPECT().DecrementStock(mock.Anything, "apple", 2).Return(false, nil)
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:         "Invalid quantity",
			items:        []entities.StockItem{{ProductID: "apple", Quantity: 0}},
			mockBehavior: func(repo *mocks.MockStockRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "Empty product id",
			items:        []entities.StockItem{{ProductID: "", Quantity: 1}},
			mockBehavior: func(repo *mocks.MockStockRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:  "Lock fails",
			items: []entities.StockItem{{ProductID: "apple", Quantity: 1}},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, mock.Anything).Return(nil, dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "Decrement fails",
			items: []entities.StockItem{{ProductID: "apple", Quantity: 1}},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().LockProducts(mock.Anything, mock.Anything).Return([]entities.Product{apple}, nil)
				repo.EXPECT().DecrementStock(mock.Anything, "apple", 1).Return(false, dbError)
			},
			wantErr: dbError,
		},
		{
			name:         "No items",
			items:        nil,
			mockBehavior: func(repo *mocks.MockStockRepo) {},
			want:         map[string]entities.Product{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockStockRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			l := inventory.NewLedger(logger, newTxManager(t), repo)
			got, err := l.ReserveAll(context.Background(), tc.items)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				if tc.wantStockErr != nil {
					var stockErr *entities.InsufficientStockError
					require.ErrorAs(t, err, &stockErr)
					assert.Equal(t, tc.wantStockErr, stockErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLedger_ReleaseAll(t *testing.T) {
	type MockBehavior func(repo *mocks.MockStockRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		items        []entities.StockItem
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			items: []entities.StockItem{
				{ProductID: "pear", Quantity: 1},
				{ProductID: "apple", Quantity: 2},
				{ProductID: "pear", Quantity: 1},
			},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().IncrementStock(mock.Anything, "apple", 2).Once().Return(nil)
				repo.EXPECT().IncrementStock(mock.Anything, "pear", 2).Once().Return(nil)
			},
		},
		{
			name:  "Increment fails",
			items: []entities.StockItem{{ProductID: "apple", Quantity: 2}},
			mockBehavior: func(repo *mocks.MockStockRepo) {
				repo.EXPECT().IncrementStock(mock.Anything, "apple", 2).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:         "Invalid quantity",
			items:        []entities.StockItem{{ProductID: "apple", Quantity: -1}},
			mockBehavior: func(repo *mocks.MockStockRepo) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "No items",
			mockBehavior: func(repo *mocks.MockStockRepo) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockStockRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			l := inventory.NewLedger(logger, newTxManager(t), repo)
			err := l.ReleaseAll(context.Background(), tc.items)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
