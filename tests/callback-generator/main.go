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

type Callback struct {
	TransactionID string            `json:"transaction_id"`
	Status        string            `json:"status"`
	Raw           map[string]string `json:"raw,omitempty"`
}

var statuses = []string{"success", "completed", "failed", "cancel"}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// generateCallback picks one of the known transactions, or invents an
// unknown one when none were given so the dead letter path is exercised too.
func generateCallback(txns []string) Callback {
	txn := "TXN-" + randomString(10)
	if len(txns) > 0 {
		txn = txns[rand.Intn(len(txns))]
	}
	status := statuses[rand.Intn(len(statuses))]
	return Callback{
		TransactionID: txn,
		Status:        status,
		Raw: map[string]string{
			"transactionId": txn,
			"status":        status,
			"gatewayRef":    randomString(12),
			"receivedAt":    time.Now().Format(time.RFC3339),
		},
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payment-callbacks", "callback topic")
	txnList := flag.String("txns", "", "comma separated transaction ids to send callbacks for")
	interval := flag.Duration("interval", 2*time.Second, "delay between callbacks")
	flag.Parse()

	var txns []string
	if *txnList != "" {
		txns = strings.Split(*txnList, ",")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cb := generateCallback(txns)
			data, _ := json.Marshal(cb)
			err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(cb.TransactionID), Value: data})
			if err != nil {
				log.Println("failed to write callback:", err)
				continue
			}
			fmt.Println("callback sent", cb.TransactionID, cb.Status)
		case <-ctx.Done():
			return
		}
	}
}
