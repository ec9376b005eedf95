package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

type item struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type shipping struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type guestCheckout struct {
	Items         []item   `json:"items"`
	Shipping      shipping `json:"shipping"`
	PaymentMethod string   `json:"payment_method"`
	PromotionCode string   `json:"promotion_code,omitempty"`
}

// Fires bursts of concurrent guest checkouts at the same product. With a
// limited stock the number of 201 responses must never exceed it.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "api base url")
	productID := flag.Int64("product", 1, "product to buy")
	promo := flag.String("promo", "", "promotion code to apply")
	workers := flag.Int("workers", 20, "concurrent checkouts per burst")
	bursts := flag.Int("bursts", 5, "number of bursts")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	var created, conflicts, other atomic.Int64

	for range *bursts {
		var wg sync.WaitGroup
		for range *workers {
			wg.Go(func() {
				status := checkout(client, *baseURL, *productID, *promo)
				switch status {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					conflicts.Add(1)
				default:
					other.Add(1)
				}
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}

	fmt.Printf("created=%d conflicts=%d other=%d\n", created.Load(), conflicts.Load(), other.Load())
}

func checkout(client *http.Client, baseURL string, productID int64, promo string) int {
	body, _ := json.Marshal(guestCheckout{
		Items: []item{{ProductID: productID, Quantity: 1}},
		Shipping: shipping{
			Name:    "Load Test",
			Phone:   fmt.Sprintf("09%08d", rand.Intn(100000000)),
			Address: "1 Test Street",
			City:    "Hanoi",
		},
		PaymentMethod: "cash_on_delivery",
		PromotionCode: promo,
	})

	resp, err := client.Post(baseURL+"/orders/guest", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return 0
	}
	defer resp.Body.Close()
	fmt.Println("POST /orders/guest ->", resp.Status)
	return resp.StatusCode
}
