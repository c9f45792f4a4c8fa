package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

type ShippingAddress struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postal_code"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Memo       string `json:"memo"`
}

type Checkout struct {
	OrderID         string          `json:"order_id"`
	CustomerID      string          `json:"customer_id"`
	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	ShippingFee     int64           `json:"shipping_fee"`
	Notes           string          `json:"notes"`
	PaidAt          time.Time       `json:"paid_at"`
}

var catalogue = []Item{
	{ProductID: "sofa-leather-3p", Name: "Leather 3-seat sofa", Price: 450000},
	{ProductID: "table-walnut-6", Name: "Walnut dining table", Price: 700000},
	{ProductID: "chair-oak", Name: "Oak chair", Price: 80000},
	{ProductID: "bed-queen-frame", Name: "Queen bed frame", Price: 320000},
	{ProductID: "wardrobe-2door", Name: "Two-door wardrobe", Price: 260000},
	{ProductID: "desk-standing", Name: "Standing desk", Price: 190000},
}

var districts = []string{"Gangnam-gu", "Mapo-gu", "Songpa-gu", "Jongno-gu", "Seocho-gu"}

func generateCheckout(customers int) Checkout {
	items := make([]Item, 0, 3)
	for _, idx := range rand.Perm(len(catalogue))[:rand.Intn(3)+1] {
		item := catalogue[idx]
		item.Quantity = rand.Intn(2) + 1
		items = append(items, item)
	}

	// bulky items ship for a flat fee, small orders pay more
	fee := int64(30000)
	if len(items) == 1 && items[0].Price < 100000 {
		fee = 50000
	}

	return Checkout{
		OrderID:    uuid.NewString(),
		CustomerID: fmt.Sprintf("customer-%03d", rand.Intn(customers)),
		Items:      items,
		ShippingAddress: ShippingAddress{
			Recipient:  "Recipient " + fmt.Sprint(rand.Intn(1000)),
			Phone:      fmt.Sprintf("010-%04d-%04d", rand.Intn(10000), rand.Intn(10000)),
			PostalCode: fmt.Sprintf("%05d", rand.Intn(100000)),
			Address1:   "Seoul " + districts[rand.Intn(len(districts))],
			Address2:   fmt.Sprintf("Apt %d-%d", rand.Intn(200)+100, rand.Intn(2000)+100),
		},
		ShippingFee: fee,
		PaidAt:      time.Now().UTC(),
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka broker address")
	topic := flag.String("topic", "checkout", "checkout topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	customers := flag.Int("customers", 50, "number of distinct customers")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(*brokers),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			checkout := generateCheckout(*customers)
			data, _ := json.Marshal(checkout)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(checkout.CustomerID), Value: data}); err != nil {
				log.Println("failed to write checkout:", err)
				continue
			}
			log.Println("checkout generated", checkout.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
