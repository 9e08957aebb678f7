package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
)

type StockRepo interface {
	// LockProducts блокирует товары до конца транзакции и возвращает найденные
	LockProducts(ctx context.Context, ids []string) ([]entities.Product, error)
	// DecrementStock списывает остаток, только если его хватает
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
	IncrementStock(ctx context.Context, id string, qty int) error
}

type ledger struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      StockRepo
}

func NewLedger(logger *slog.Logger, txManager trm.Manager, repo StockRepo) *ledger {
	return &ledger{
		logger:    logger.With(slog.String("service", "ledger")),
		txManager: txManager,
		repo:      repo,
	}
}

// ReserveAll списывает остатки по всем позициям или не списывает ничего.
// Возвращает заблокированные товары, чтобы вызывающий мог снять снимок цен.
func (l *ledger) ReserveAll(ctx context.Context, items []entities.StockItem) (map[string]entities.Product, error) {
	demand, err := aggregate(items)
	if err != nil {
		return nil, err
	}

	products := make(map[string]entities.Product, len(demand))
	if len(demand) == 0 {
		return products, nil
	}

	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := l.repo.LockProducts(ctx, productIDs(demand))
		if err != nil {
			return err
		}
		for _, p := range locked {
			products[p.ID] = p
		}

		// сначала проверяем все позиции, и только потом списываем
		for _, it := range demand {
			p, ok := products[it.ProductID]
			if !ok {
				return &entities.ProductNotFoundError{ProductID: it.ProductID}
			}
			if p.CountInStock < it.Quantity {
				return &entities.InsufficientStockError{
					ProductID: it.ProductID,
					Available: p.CountInStock,
					Requested: it.Quantity,
				}
			}
		}

		for _, it := range demand {
			ok, err := l.repo.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// строка заблокирована, так что сюда попадаем только при нарушении блокировок
				return &entities.InsufficientStockError{
					ProductID: it.ProductID,
					Available: products[it.ProductID].CountInStock,
					Requested: it.Quantity,
				}
			}
		}
		return nil
	})
	if err != nil {
		reservationFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	l.logger.Debug("stock reserved", slog.Int("products", len(demand)))
	return products, nil
}

// ReleaseAll возвращает остатки на склад. Повторный вызов для того же заказа
// вернёт остатки дважды, следить за этим должен вызывающий.
func (l *ledger) ReleaseAll(ctx context.Context, items []entities.StockItem) error {
	supply, err := aggregate(items)
	if err != nil {
		return err
	}
	if len(supply) == 0 {
		return nil
	}

	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		for _, it := range supply {
			if err := l.repo.IncrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("failed to release stock for %s: %w", it.ProductID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.logger.Debug("stock released", slog.Int("products", len(supply)))
	return nil
}

// aggregate суммирует количество по одинаковым товарам и сортирует по id
func aggregate(items []entities.StockItem) ([]entities.StockItem, error) {
	totals := make(map[string]int, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return nil, fmt.Errorf("%w: product id is required", entities.ErrInvalidInput)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: invalid quantity %d for product %s",
				entities.ErrInvalidInput, it.Quantity, it.ProductID)
		}
		totals[it.ProductID] += it.Quantity
	}

	result := make([]entities.StockItem, 0, len(totals))
	for id, qty := range totals {
		result = append(result, entities.StockItem{ProductID: id, Quantity: qty})
	}
	slices.SortFunc(result, func(a, b entities.StockItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return result, nil
}

func productIDs(items []entities.StockItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}
	return ids
}
