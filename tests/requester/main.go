package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api/products"

var categories = []string{"", "sofa", "table", "chair", "bed", "storage"}

type productList struct {
	Products []struct {
		ID string `json:"id"`
	} `json:"products"`
}

func main() {
	var (
		mu  sync.Mutex
		ids []string
	)

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() {
				if rand.Intn(3) == 0 {
					found := listProducts()
					if len(found) > 0 {
						mu.Lock()
						ids = found
						mu.Unlock()
					}
					return
				}

				mu.Lock()
				id := randomID(12)
				if len(ids) > 0 && rand.Intn(5) != 0 {
					id = ids[rand.Intn(len(ids))]
				}
				mu.Unlock()
				get(baseURL + "/" + id)
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func listProducts() []string {
	url := fmt.Sprintf("%s?category=%s&limit=50", baseURL, categories[rand.Intn(len(categories))])
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return nil
	}
	defer resp.Body.Close()
	fmt.Println("GET", url, "->", resp.Status)

	var list productList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil
	}
	ids := make([]string, 0, len(list.Products))
	for _, p := range list.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
