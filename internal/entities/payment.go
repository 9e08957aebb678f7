package entities

// PaymentResult приходит от платёжного сервиса как есть, содержимое не проверяется
type PaymentResult struct {
	ID           string
	Status       string
	UpdateTime   string
	EmailAddress string
}
