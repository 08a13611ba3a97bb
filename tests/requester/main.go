package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

type order struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type management struct {
	Orders []order `json:"orders"`
}

var nextAction = map[string]string{
	"pending":   "confirm",
	"confirmed": "ship",
	"shipped":   "deliver",
}

// Несколько воркеров двигают одни и те же заказы по жизненному циклу,
// часть запросов получает 409 из-за гонки.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service address")
	seller := flag.String("seller", "", "seller id")
	workers := flag.Int("workers", 4, "concurrent workers")
	flag.Parse()

	if *seller == "" {
		fmt.Println("seller is required")
		return
	}

	client := &http.Client{Timeout: 5 * time.Second}
	ordersURL := fmt.Sprintf("%s/sellers/%s/orders", strings.TrimRight(*baseURL, "/"), *seller)

	for {
		var wg sync.WaitGroup
		for range *workers {
			wg.Go(func() { step(client, ordersURL) })
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

func step(client *http.Client, ordersURL string) {
	resp, err := client.Get(ordersURL + "?status=all")
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()

	var m management
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil || len(m.Orders) == 0 {
		return
	}

	o := m.Orders[rand.Intn(len(m.Orders))]
	action, ok := nextAction[o.Status]
	if !ok {
		return
	}
	if o.Status == "pending" && rand.Intn(4) == 0 {
		action = "cancel"
	}

	url := fmt.Sprintf("%s/%s/%s", ordersURL, o.ID, action)
	res, err := client.Post(url, "application/json", nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("POST", url, "->", res.Status)
	res.Body.Close()
}
