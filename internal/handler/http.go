package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	GetOrder(ctx context.Context, id string, req entities.Requester) (entities.Order, error)
	OrdersForUser(ctx context.Context, userID string) ([]entities.Order, error)
	AllOrders(ctx context.Context, req entities.Requester) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, req entities.Requester, upd entities.StatusUpdate) (entities.Order, error)
	MarkPaid(ctx context.Context, id string, req entities.Requester, result entities.PaymentResult) (entities.Order, error)
	MarkDelivered(ctx context.Context, id string, req entities.Requester) (entities.Order, error)
	CancelOrder(ctx context.Context, id string, req entities.Requester) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Post("/", h.CreateOrder)
		r.Get("/", h.AllOrders)
		r.Get("/myorders", h.MyOrders)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}/status", h.UpdateStatus)
		r.Put("/{id}/pay", h.MarkPaid)
		r.Put("/{id}/deliver", h.MarkDelivered)
		r.Put("/{id}/cancel", h.CancelOrder)
	})
}

// CreateOrder создаёт заказ и резервирует товары на складе.
// @Summary      Создать заказ
// @Description  Резервирует остатки по всем позициям и сохраняет заказ в статусе Pending. Цены позиций берутся из каталога.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true  "Идентификатор пользователя"
// @Param        order      body      CreateOrderRequest  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Пользователь не определён"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409  {object}  StockErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	var body CreateOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(body.OrderItems) == 0 {
		utils.WriteError(w, "No order items", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, body.ToEntity(req.UserID))
	if err != nil {
		h.writeServiceError(w, r, "create order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// MyOrders возвращает заказы текущего пользователя.
// @Summary      Мои заказы
// @Description  Возвращает заказы текущего пользователя, новые первыми
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Пользователь не определён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/myorders [get]
func (h *HTTPHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	orders, err := h.svc.OrdersForUser(ctx, req.UserID)
	if err != nil {
		h.writeServiceError(w, r, "list user orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// AllOrders возвращает все заказы.
// @Summary      Все заказы
// @Description  Доступно только администратору. Новые заказы первыми.
// @Tags         admin
// @Produce      json
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль пользователя (admin)"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Пользователь не определён"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *HTTPHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	orders, err := h.svc.AllOrders(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, "list orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Заказ доступен владельцу и администратору
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к заказу"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, id, req)
	if err != nil {
		h.writeServiceError(w, r, "get order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Изменить статус заказа
// @Description  Переходы только вперёд: Pending → Processing → Shipped → Delivered. Отмена возвращает товары на склад.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string               true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string               true  "Роль пользователя (admin)"
// @Param        id           path    string               true  "Идентификатор заказа"
// @Param        update       body    UpdateStatusRequest  true  "Новый статус и данные доставки"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/status [put]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body UpdateStatusRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.UpdateStatus(ctx, id, req, body.ToEntity())
	if err != nil {
		h.writeServiceError(w, r, "update order status", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// MarkPaid отмечает заказ оплаченным.
// @Summary      Оплатить заказ
// @Description  Сохраняет результат оплаты. Заказ в статусе Pending переходит в Processing.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string           true  "Идентификатор пользователя"
// @Param        id         path    string           true  "Идентификатор заказа"
// @Param        payment    body    MarkPaidRequest  true  "Результат оплаты"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к заказу"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ отменён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/pay [put]
func (h *HTTPHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body MarkPaidRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.MarkPaid(ctx, id, req, body.ToEntity())
	if err != nil {
		h.writeServiceError(w, r, "mark order paid", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// MarkDelivered отмечает заказ доставленным.
// @Summary      Отметить доставку
// @Tags         admin
// @Produce      json
// @Param        X-User-ID    header  string  true  "Идентификатор пользователя"
// @Param        X-User-Role  header  string  true  "Роль пользователя (admin)"
// @Param        id           path    string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ отменён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/deliver [put]
func (h *HTTPHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.MarkDelivered(ctx, id, req)
	if err != nil {
		h.writeServiceError(w, r, "mark order delivered", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Отменить можно только заказ в статусе Pending. Товары возвращаются на склад.
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  string  true  "Идентификатор пользователя"
// @Param        id         path    string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа к заказу"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже в обработке"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/cancel [put]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, _ := middleware.RequesterFromContext(ctx)

	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CancelOrder(ctx, id, req)
	if err != nil {
		h.writeServiceError(w, r, "cancel order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return "", false
	}
	return id, true
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		stockErr   *entities.InsufficientStockError
		productErr *entities.ProductNotFoundError
		stateErr   *entities.InvalidStateError
	)

	switch {
	case errors.As(err, &stockErr):
		utils.WriteJSON(w, StockErrorResponse{
			Message:   fmt.Sprintf("Insufficient stock for product %s. Only %d available.", stockErr.ProductID, stockErr.Available),
			ProductID: stockErr.ProductID,
			Available: stockErr.Available,
			Requested: stockErr.Requested,
		}, http.StatusConflict)
	case errors.As(err, &productErr):
		utils.WriteError(w, fmt.Sprintf("Product not found: %s", productErr.ProductID), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, "Not authorized", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "Not authorized to access this order", http.StatusForbidden)
	case errors.As(err, &stateErr):
		utils.WriteError(w, stateErr.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err), slog.String("order_id", chi.URLParam(r, "id")))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
