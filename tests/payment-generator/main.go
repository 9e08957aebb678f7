package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type PaymentEvent struct {
	OrderID       string        `json:"order_id"`
	PaymentResult PaymentResult `json:"payment_result"`
}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generatePayment(orderID string) PaymentEvent {
	return PaymentEvent{
		OrderID: orderID,
		PaymentResult: PaymentResult{
			ID:           "PAY-" + randomString(17),
			Status:       "COMPLETED",
			UpdateTime:   time.Now().UTC().Format(time.RFC3339),
			EmailAddress: fmt.Sprintf("buyer%d@example.com", rand.Intn(1000)),
		},
	}
}

// Отправляет подтверждения оплаты для заказов из -orders по кругу
func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers")
	topic := flag.String("topic", "payments", "payments topic")
	orders := flag.String("orders", "", "comma separated order ids")
	interval := flag.Duration("interval", 2*time.Second, "interval between events")
	flag.Parse()

	ids := strings.Split(*orders, ",")
	if *orders == "" {
		log.Fatal("no order ids")
	}

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ticker.C:
			event := generatePayment(ids[i%len(ids)])
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
				log.Println("failed to write payment:", err)
				continue
			}
			log.Println("payment sent", event.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
