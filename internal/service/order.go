package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	// LockOrder блокирует строку заказа до конца транзакции
	LockOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) error

	// Списки отсортированы от новых к старым
	OrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	AllOrders(ctx context.Context) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Ledger interface {
	ReserveAll(ctx context.Context, items []entities.StockItem) (map[string]entities.Product, error)
	ReleaseAll(ctx context.Context, items []entities.StockItem) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	// SetFunc атомарно решает по текущему значению, нужно ли записывать новое
	SetFunc(key string, fn func(current []byte, ok bool) ([]byte, bool))
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ledger    Ledger
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, ledger Ledger, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		cache:     cache,
	}
}

// CreateOrder резервирует остатки и сохраняет заказ в одной транзакции.
// Если сохранение не удалось, резерв откатывается вместе с транзакцией.
func (s *orderService) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	if err := in.Validate(); err != nil {
		return entities.Order{}, err
	}

	now := timestamp()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		TaxPrice:        entities.RoundMoney(in.TaxPrice),
		ShippingPrice:   entities.RoundMoney(in.ShippingPrice),
		TotalPrice:      entities.RoundMoney(in.TotalPrice),
		Status:          entities.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		products, err := s.ledger.ReserveAll(ctx, in.Items)
		if err != nil {
			return err
		}

		order.Items = make([]entities.LineItem, 0, len(in.Items))
		for _, it := range in.Items {
			p := products[it.ProductID]
			order.Items = append(order.Items, entities.LineItem{
				ProductID: it.ProductID,
				Name:      p.Name,
				Image:     p.Image,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
		}

		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.String("user_id", order.UserID))
	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string, req entities.Requester) (entities.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !req.CanAccess(order) {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func (s *orderService) OrdersForUser(ctx context.Context, userID string) ([]entities.Order, error) {
	if userID == "" {
		return nil, entities.ErrUnauthenticated
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.OrdersByUser(ctx, userID)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetryConfig, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) AllOrders(ctx context.Context, req entities.Requester) ([]entities.Order, error) {
	if !req.IsAdmin {
		return nil, entities.ErrForbidden
	}

	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.AllOrders(ctx)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetryConfig, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus - административное изменение статуса. Переход в Cancelled
// проходит тем же путём, что и отмена, с возвратом остатков.
func (s *orderService) UpdateStatus(ctx context.Context, id string, req entities.Requester, upd entities.StatusUpdate) (entities.Order, error) {
	if !req.IsAdmin {
		return entities.Order{}, entities.ErrForbidden
	}
	if upd.Status == "" && upd.Notes == nil {
		return entities.Order{}, fmt.Errorf("%w: nothing to update", entities.ErrInvalidInput)
	}
	if upd.Status != "" {
		if _, err := entities.ParseStatus(string(upd.Status)); err != nil {
			return entities.Order{}, err
		}
	}

	if upd.Status == entities.StatusCancelled {
		return s.mutate(ctx, id, func(ctx context.Context, o *entities.Order) error {
			if err := s.cancel(ctx, o); err != nil {
				return err
			}
			if upd.Notes != nil {
				o.Notes = *upd.Notes
			}
			return nil
		})
	}

	return s.mutate(ctx, id, func(ctx context.Context, o *entities.Order) error {
		from := o.Status
		if err := o.Apply(upd, timestamp()); err != nil {
			return err
		}
		if from != o.Status {
			statusTransitions.WithLabelValues(string(o.Status)).Inc()
		}
		return nil
	})
}

// MarkPaid повторно вызывать можно: время первой оплаты сохраняется,
// результат платежа перезаписывается последним.
func (s *orderService) MarkPaid(ctx context.Context, id string, req entities.Requester, result entities.PaymentResult) (entities.Order, error) {
	return s.mutate(ctx, id, func(ctx context.Context, o *entities.Order) error {
		if !req.CanAccess(*o) {
			return entities.ErrForbidden
		}
		from := o.Status
		if err := o.MarkPaid(result, timestamp()); err != nil {
			return err
		}
		if from != o.Status {
			statusTransitions.WithLabelValues(string(o.Status)).Inc()
		}
		return nil
	})
}

func (s *orderService) MarkDelivered(ctx context.Context, id string, req entities.Requester) (entities.Order, error) {
	if !req.IsAdmin {
		return entities.Order{}, entities.ErrForbidden
	}
	return s.mutate(ctx, id, func(ctx context.Context, o *entities.Order) error {
		from := o.Status
		if err := o.MarkDelivered(timestamp()); err != nil {
			return err
		}
		if from != o.Status {
			statusTransitions.WithLabelValues(string(o.Status)).Inc()
		}
		return nil
	})
}

func (s *orderService) CancelOrder(ctx context.Context, id string, req entities.Requester) (entities.Order, error) {
	return s.mutate(ctx, id, func(ctx context.Context, o *entities.Order) error {
		if !req.CanAccess(*o) {
			return entities.ErrForbidden
		}
		return s.cancel(ctx, o)
	})
}

// cancel вызывается только под блокировкой строки заказа, поэтому остатки
// возвращаются ровно один раз: после отмены статус уже не Pending.
func (s *orderService) cancel(ctx context.Context, o *entities.Order) error {
	if err := o.Cancel(timestamp()); err != nil {
		return err
	}
	if err := s.ledger.ReleaseAll(ctx, o.StockItems()); err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	ordersCancelled.Inc()
	statusTransitions.WithLabelValues(string(entities.StatusCancelled)).Inc()
	return nil
}

// mutate загружает заказ с блокировкой, применяет fn и сохраняет результат в одной транзакции
func (s *orderService) mutate(ctx context.Context, id string, fn func(ctx context.Context, o *entities.Order) error) (entities.Order, error) {
	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.LockOrder(ctx, id)
		if err != nil {
			return err
		}

		if err := fn(ctx, &order); err != nil {
			return err
		}

		if err := s.repo.UpdateOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order updated", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
	s.cacheOrder(order)
	return order, nil
}

func (s *orderService) getOrder(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		// битую запись перезапишем свежей из базы
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id), slog.Any("error", err))
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetryConfig, fn, entities.ErrOrderNotFound, context.Canceled, context.DeadlineExceeded); err != nil {
		return entities.Order{}, err
	}

	s.cacheOrder(order)
	return order, nil
}

// cacheOrder не перетирает более свежую версию заказа, записанную конкурентным запросом
func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.SetFunc(order.ID, func(current []byte, ok bool) ([]byte, bool) {
		if ok {
			var cached entities.Order
			if err := cached.Unmarshal(current); err == nil && cached.UpdatedAt.After(order.UpdatedAt) {
				return nil, false
			}
		}
		return data, true
	})
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		s.cacheOrder(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// timestamp обрезан до микросекунд, как его хранит postgres
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
