package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"manox/internal/cart"
	"manox/internal/cartstore"
	"manox/internal/checkout"
	"manox/internal/config"
	"manox/internal/domain"
	"manox/internal/orderclient"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[storefront] ", log.LstdFlags)

	ctx := context.Background()
	store := cartstore.NewFile(cfg.CartFile)
	basket := cart.New(ctx, store, logger)
	orders := orderclient.New(cfg.APIBaseURL, &http.Client{Timeout: 15 * time.Second}, logger)
	co := checkout.New(basket, orders, logger)

	fmt.Println("manox storefront. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			printHelp()
		case "list":
			listProducts(cfg.APIBaseURL)
		case "show":
			if len(args) != 1 {
				fmt.Println("usage: show <product-id>")
				continue
			}
			showProduct(cfg.APIBaseURL, args[0])
		case "add":
			addToCart(ctx, cfg.APIBaseURL, basket, args)
		case "remove":
			if len(args) != 1 {
				fmt.Println("usage: remove <product-id>")
				continue
			}
			basket.RemoveItem(ctx, args[0])
			printCart(basket.State())
		case "qty":
			if len(args) != 2 {
				fmt.Println("usage: qty <product-id> <n>")
				continue
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("qty must be a number")
				continue
			}
			basket.UpdateQty(ctx, args[0], n)
			printCart(basket.State())
		case "cart":
			printCart(basket.State())
		case "clear":
			basket.Clear(ctx)
			fmt.Println("cart cleared")
		case "checkout":
			runCheckout(ctx, scanner, co)
		case "status":
			fmt.Println(co.Status())
		case "reset":
			co.Reset()
			fmt.Println(co.Status())
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  list                 list catalog products
  show <id>            show one product
  add <id> [qty]       add a product to the cart
  remove <id>          remove a cart line
  qty <id> <n>         set a line quantity
  cart                 show the cart
  clear                empty the cart
  checkout             place an order from the cart
  status               show checkout status
  reset                return a failed checkout to idle
  quit                 exit`)
}

type productPage struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}

func listProducts(baseURL string) {
	var page productPage
	if err := getJSON(baseURL+"/products", &page); err != nil {
		fmt.Println("list products:", err)
		return
	}
	for _, p := range page.Items {
		fmt.Printf("%-38s %-24s %8s\n", p.ID, p.Title, p.Price.StringFixed(2))
	}
	fmt.Printf("%d products\n", page.Total)
}

func showProduct(baseURL, id string) {
	var p domain.Product
	if err := getJSON(baseURL+"/products/"+id, &p); err != nil {
		fmt.Println("show product:", err)
		return
	}
	fmt.Printf("%s\n  %s / %s\n  price %s  stock %d\n", p.Title, p.Category, p.Subcategory, p.Price.StringFixed(2), p.Stock)
	if p.Description != "" {
		fmt.Println("  " + p.Description)
	}
}

func addToCart(ctx context.Context, baseURL string, basket *cart.Facade, args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Println("usage: add <product-id> [qty]")
		return
	}
	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Println("qty must be a positive number")
			return
		}
		qty = n
	}

	var p domain.Product
	if err := getJSON(baseURL+"/products/"+args[0], &p); err != nil {
		fmt.Println("fetch product:", err)
		return
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	basket.AddItem(ctx, domain.CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Qty:       qty,
		Image:     image,
	})
	printCart(basket.State())
}

func runCheckout(ctx context.Context, scanner *bufio.Scanner, co *checkout.Orchestrator) {
	info := domain.CustomerInfo{
		Name:    prompt(scanner, "name"),
		Email:   prompt(scanner, "email"),
		Phone:   prompt(scanner, "phone"),
		Address: prompt(scanner, "address"),
	}

	order, err := co.Submit(ctx, info)
	if err != nil {
		fmt.Println("checkout failed:", err)
		return
	}
	fmt.Printf("order %s placed, total %s\n", order.ID, order.Total.StringFixed(2))
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func printCart(state domain.Cart) {
	if state.IsEmpty() {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range state.Items {
		fmt.Printf("%-38s %-24s x%-3d %8s\n", it.ProductID, it.Title, it.Qty, it.LineTotal().StringFixed(2))
	}
	fmt.Printf("subtotal %s (%d items)\n", state.Subtotal().StringFixed(2), state.ItemCount())
}

func getJSON(url string, out interface{}) error {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
