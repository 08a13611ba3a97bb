package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type OrderPlaced struct {
	OrderID         string          `json:"order_id"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	ListingID       string          `json:"listing_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

var (
	units           = []string{"kg", "quintal", "ton", "crate"}
	paymentStatuses = []string{"pending", "paid", "paid", "failed"}
)

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func generateOrder(sellers, buyers, listings []string) OrderPlaced {
	quantity := decimal.NewFromInt(int64(rand.Intn(200) + 1)).Div(decimal.NewFromInt(2))
	price := decimal.NewFromInt(int64(rand.Intn(9000) + 1000)).Shift(-2)

	o := OrderPlaced{
		OrderID:       uuid.NewString(),
		BuyerID:       pick(buyers),
		SellerID:      pick(sellers),
		ListingID:     pick(listings),
		Quantity:      quantity,
		Unit:          pick(units),
		TotalAmount:   quantity.Mul(price).Round(2),
		PaymentStatus: pick(paymentStatuses),
		CreatedAt:     time.Now().UTC(),
	}
	if rand.Intn(2) == 0 {
		o.DeliveryAddress = "Warehouse " + strings.ToUpper(uuid.NewString()[:4])
	}
	return o
}

func ids(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = uuid.NewString()
	}
	return res
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "orders.placed", "order placed topic")
	seller := flag.String("seller", "", "seller id for every order, random if empty")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	sellers := ids(3)
	if *seller != "" {
		sellers = []string{*seller}
	}
	buyers, listings := ids(10), ids(10)

	writer := &kafka.Writer{
		Addr:  kafka.TCP(strings.Split(*brokers, ",")...),
		Topic: *topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateOrder(sellers, buyers, listings)
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(order.SellerID), Value: data}); err != nil {
				log.Println("failed to write order", err)
				continue
			}
			log.Println("order generated", order.OrderID, "seller", order.SellerID)
		case <-ctx.Done():
			return
		}
	}
}
