package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

type lineRequest struct {
	ProductID int64 `json:"product_id"`
	OptionID  int64 `json:"option_id,omitempty"`
	Quantity  int   `json:"quantity"`
}

type placeOrderRequest struct {
	UserID          int64         `json:"user_id"`
	ShippingAddress string        `json:"shipping_address"`
	PaymentMethod   string        `json:"payment_method"`
	Lines           []lineRequest `json:"lines"`
}

var paymentMethods = []string{"card", "cash_on_delivery", "bank_transfer"}

func randomCheckout() placeOrderRequest {
	lines := make([]lineRequest, 0, 3)
	for i := 0; i < rand.Intn(3)+1; i++ {
		line := lineRequest{
			ProductID: int64(rand.Intn(20) + 1),
			Quantity:  rand.Intn(3) + 1,
		}
		if rand.Intn(2) == 0 {
			line.OptionID = int64(rand.Intn(50) + 1)
		}
		lines = append(lines, line)
	}

	return placeOrderRequest{
		UserID:          int64(rand.Intn(10) + 1),
		ShippingAddress: fmt.Sprintf("Street %d, City %d", rand.Intn(100), rand.Intn(20)),
		PaymentMethod:   paymentMethods[rand.Intn(len(paymentMethods))],
		Lines:           lines,
	}
}

func main() {
	client := &http.Client{Timeout: 5 * time.Second}
	url := "http://localhost:8080/orders"

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(500 * time.Millisecond)
	for {
		select {
		case <-ticker.C:
			req := randomCheckout()
			data, _ := json.Marshal(req)
			resp, err := client.Post(url, "application/json", bytes.NewReader(data))
			if err != nil {
				log.Println("request failed:", err)
				continue
			}
			resp.Body.Close()
			log.Printf("user=%d lines=%d -> %s", req.UserID, len(req.Lines), resp.Status)
		case <-ctx.Done():
			ticker.Stop()
			return
		}
	}
}
