// Command cart manages the local buyer cart from the terminal. It works
// against the same catalog document as the server and submits checkouts
// to the running API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"agricola-shop/cart"
	"agricola-shop/catalog"
	"agricola-shop/config"
	"agricola-shop/models"
)

func main() {
	config.LoadConfig()

	cat, err := catalog.Load(config.AppConfig.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, err := cart.Open(config.AppConfig.CartDBPath, cat)
	if err != nil {
		log.Fatalf("Failed to open cart: %v", err)
	}
	defer store.Close()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "list":
		for _, item := range store.Items() {
			fmt.Printf("%-4d %-6s %-40s x%d  %.2f\n",
				item.ProductID, item.Category, item.Name, item.Quantity, item.UnitPrice)
		}
		fmt.Printf("Total: %.2f (%d items)\n", store.Total(), store.ItemCount())
	case "add":
		id, category := itemArgs()
		if err := store.Add(id, category); err != nil {
			log.Fatalf("Failed to add product: %v", err)
		}
	case "remove":
		id, category := itemArgs()
		if err := store.Remove(id, category); err != nil {
			log.Fatalf("Failed to remove product: %v", err)
		}
	case "update":
		if len(os.Args) < 5 {
			usage()
		}
		id, category := itemArgs()
		delta, err := strconv.Atoi(os.Args[4])
		if err != nil {
			log.Fatalf("Invalid quantity delta: %s", os.Args[4])
		}
		if err := store.UpdateQuantity(id, category, delta); err != nil {
			log.Fatalf("Failed to update quantity: %v", err)
		}
	case "clear":
		if err := store.Clear(); err != nil {
			log.Fatalf("Failed to clear cart: %v", err)
		}
	case "checkout":
		endpoint := os.Getenv("CHECKOUT_ENDPOINT")
		if endpoint == "" {
			endpoint = "http://localhost:" + config.AppConfig.Port + "/api/create-checkout-session"
		}
		url, err := cart.NewCheckout(endpoint).Submit(context.Background(), store)
		if err != nil {
			log.Fatalf("Checkout failed: %v", err)
		}
		fmt.Println(url)
	default:
		usage()
	}
}

func itemArgs() (int, models.Category) {
	if len(os.Args) < 4 {
		usage()
	}
	id, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("Invalid product id: %s", os.Args[2])
	}
	return id, models.Category(os.Args[3])
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: cart <list|add|remove|update|clear|checkout> [id category [delta]]")
	os.Exit(2)
}
