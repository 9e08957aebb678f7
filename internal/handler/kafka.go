package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// paymentsRequester - от имени платёжного сервиса можно оплатить любой заказ
var paymentsRequester = entities.Requester{UserID: "payments", IsAdmin: true}

type PaymentMarker interface {
	MarkPaid(ctx context.Context, id string, req entities.Requester, result entities.PaymentResult) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	marker   PaymentMarker
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, marker PaymentMarker) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: utils.NewValidator(),
		marker:   marker,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.process(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) error {
	paymentsInProgress.Inc()
	defer paymentsInProgress.Dec()

	start := time.Now()
	err := h.handlePayment(ctx, m)
	paymentProcessingDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		paymentsFailed.Inc()
		return err
	}
	paymentsProcessed.Inc()
	return nil
}

func (h *kafkaHandler) handlePayment(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	order, err := h.marker.MarkPaid(ctx, event.OrderID, paymentsRequester, PaymentResultJSONToEntity(event.PaymentResult))
	if err != nil {
		return fmt.Errorf("failed to mark order %s paid: %w", event.OrderID, err)
	}

	h.logger.Debug("order paid", slog.String("order_id", order.ID), slog.String("status", string(order.Status)))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
