package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api/orders"

type orderItem struct {
	Product string  `json:"product"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
}

type shippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type createOrder struct {
	OrderItems      []orderItem     `json:"orderItems"`
	ShippingAddress shippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TaxPrice        float64         `json:"taxPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TotalPrice      float64         `json:"totalPrice"`
}

type order struct {
	ID string `json:"_id"`
}

// Создаёт заказы на товар PRODUCT_ID по цене PRODUCT_PRICE, часть из них сразу отменяет
func main() {
	productID := os.Getenv("PRODUCT_ID")
	price, _ := strconv.ParseFloat(os.Getenv("PRODUCT_PRICE"), 64)

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(productID, price) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(productID string, price float64) {
	userID := fmt.Sprintf("user-%d", rand.Intn(20))
	qty := rand.Intn(3) + 1

	body, _ := json.Marshal(createOrder{
		OrderItems: []orderItem{{Product: productID, Qty: qty, Price: price}},
		ShippingAddress: shippingAddress{
			Address: "Street 1", City: "City", PostalCode: "123456", Country: "RU", Phone: "+70000000000",
		},
		PaymentMethod: "PayPal",
		TotalPrice:    price * float64(qty),
	})

	resp, err := send(http.MethodPost, baseURL, userID, body)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST", baseURL, "->", resp.Status)

	if resp.StatusCode != http.StatusCreated || rand.Intn(3) != 0 {
		return
	}

	var o order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		fmt.Println("Ошибка ответа:", err)
		return
	}

	url := baseURL + "/" + o.ID + "/cancel"
	cancelResp, err := send(http.MethodPut, url, userID, nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	cancelResp.Body.Close()
	fmt.Println("PUT", url, "->", cancelResp.Status)
}

func send(method, url, userID string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	return http.DefaultClient.Do(req)
}
