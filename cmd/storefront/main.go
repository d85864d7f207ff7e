package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"atelier-storefront/internal/admin"
	"atelier-storefront/internal/api"
	"atelier-storefront/internal/cart"
	"atelier-storefront/internal/catalog"
	"atelier-storefront/internal/checkout"
	"atelier-storefront/internal/config"
	"atelier-storefront/internal/models"
	"atelier-storefront/internal/session"
)

type app struct {
	reader   *bufio.Reader
	client   *api.Client
	session  *session.Session
	cart     *cart.Manager
	catalog  *catalog.Service
	checkout *checkout.Service
	admin    *admin.Service
}

func main() {
	cfg := config.Load()

	level := zerolog.InfoLevel
	if cfg.Development {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	client := api.New(cfg.APIBaseURL,
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)

	a := &app{
		reader:  bufio.NewReader(os.Stdin),
		client:  client,
		session: session.New(client),
		cart:    cart.NewManager(client),
		catalog: catalog.NewService(client),
		admin:   admin.NewService(client),
	}
	a.checkout = checkout.NewService(client, a.cart)
	a.checkout.DefaultCountry = cfg.DefaultCountry

	fmt.Println("ATELIER")
	fmt.Println("=======")

	for {
		a.printMenu()
		choice := a.prompt("> ")
		if err := a.dispatch(choice); err != nil {
			if errors.Is(err, errQuit) {
				return
			}
			fmt.Println("Error:", userMessage(err))
		}
	}
}

var errQuit = errors.New("quit")

func (a *app) printMenu() {
	fmt.Println()
	fmt.Println("1) Browse products   2) View cart   3) Checkout   4) My orders")
	if a.session.IsAuthenticated() {
		fmt.Printf("5) Logout (%s)", a.session.User().Username)
	} else {
		fmt.Print("5) Login   6) Register")
	}
	if a.session.IsAdmin() {
		fmt.Print("   7) Admin")
	}
	fmt.Println("   q) Quit")
}

func (a *app) dispatch(choice string) error {
	ctx := context.Background()
	switch choice {
	case "1":
		return a.browse(ctx)
	case "2":
		return a.viewCart(ctx)
	case "3":
		return a.doCheckout(ctx)
	case "4":
		return a.listOrders(ctx)
	case "5":
		if a.session.IsAuthenticated() {
			a.session.Logout()
			a.cart.Reset()
			fmt.Println("Logged out.")
			return nil
		}
		return a.login(ctx)
	case "6":
		return a.register(ctx)
	case "7":
		if a.session.IsAdmin() {
			return a.adminMenu(ctx)
		}
	case "q":
		return errQuit
	}
	fmt.Println("Unknown choice.")
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *app) promptPassword(label string) string {
	fmt.Print(label)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}

func (a *app) login(ctx context.Context) error {
	email := a.prompt("Email: ")
	password := a.promptPassword("Password: ")
	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome back, %s.\n", user.Username)
	_, err = a.cart.Fetch(ctx)
	return err
}

func (a *app) register(ctx context.Context) error {
	username := a.prompt("Username: ")
	email := a.prompt("Email: ")
	password := a.promptPassword("Password: ")
	confirm := a.promptPassword("Confirm password: ")
	if password != confirm {
		return errors.New("passwords do not match")
	}
	user, err := a.session.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s.\n", user.Username)
	return nil
}

func (a *app) browse(ctx context.Context) error {
	filter := catalog.Filter{
		Category: a.prompt("Category (empty for all): "),
		Search:   a.prompt("Search (empty for none): "),
	}
	products, err := a.catalog.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	for i, p := range products {
		fmt.Printf("%2d) %-28s $%8.2f  %s\n", i+1, p.Name, p.Price, p.Category)
	}

	pick := a.prompt("Product number to add to cart (empty to go back): ")
	if pick == "" {
		return nil
	}
	idx, err := strconv.Atoi(pick)
	if err != nil || idx < 1 || idx > len(products) {
		return errors.New("invalid product number")
	}
	return a.addToCart(ctx, products[idx-1])
}

func (a *app) addToCart(ctx context.Context, p models.Product) error {
	fmt.Printf("%s — %s\n", p.Name, p.Description)
	fmt.Printf("Sizes: %s\nColors: %s\n", strings.Join(p.Sizes, ", "), strings.Join(p.Colors, ", "))

	size := a.prompt("Size: ")
	color := a.prompt("Color: ")
	qty, err := strconv.Atoi(a.prompt("Quantity: "))
	if err != nil {
		return errors.New("invalid quantity")
	}

	updated, err := a.cart.Add(ctx, p.ID, qty, size, color)
	if err != nil {
		return err
	}
	fmt.Printf("Added. Cart now holds %d item(s), $%.2f.\n", updated.ItemCount, updated.Total)
	return nil
}

func (a *app) viewCart(ctx context.Context) error {
	current, err := a.cart.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(current.Items) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	for i, item := range current.Items {
		fmt.Printf("%2d) %-24s %s/%s  x%d  $%8.2f\n", i+1, item.ProductName, item.Size, item.Color, item.Quantity, item.Subtotal)
	}
	fmt.Printf("Total: $%.2f (%d items)\n", current.Total, current.ItemCount)

	switch a.prompt("u) update quantity  r) remove line  enter) back: ") {
	case "u":
		idx, err := strconv.Atoi(a.prompt("Line number: "))
		if err != nil || idx < 1 || idx > len(current.Items) {
			return errors.New("invalid line number")
		}
		qty, err := strconv.Atoi(a.prompt("New quantity: "))
		if err != nil {
			return errors.New("invalid quantity")
		}
		_, err = a.cart.Update(ctx, current.Items[idx-1].ID, qty)
		return err
	case "r":
		idx, err := strconv.Atoi(a.prompt("Line number: "))
		if err != nil || idx < 1 || idx > len(current.Items) {
			return errors.New("invalid line number")
		}
		_, err = a.cart.Remove(ctx, current.Items[idx-1].ID)
		return err
	}
	return nil
}

func (a *app) doCheckout(ctx context.Context) error {
	// Routing guards: checkout is unreachable without a login and a
	// non-empty cart.
	if !a.session.IsAuthenticated() {
		fmt.Println("Please log in first.")
		return nil
	}
	if len(a.cart.Current().Items) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}

	addr := models.ShippingAddress{
		FullName:     a.prompt("Full name: "),
		AddressLine1: a.prompt("Address line 1: "),
		AddressLine2: a.prompt("Address line 2 (optional): "),
		City:         a.prompt("City: "),
		State:        a.prompt("State: "),
		PostalCode:   a.prompt("Postal code: "),
		Country:      a.prompt("Country: "),
		Phone:        a.prompt("Phone: "),
	}

	order, err := a.checkout.Submit(ctx, addr)
	if err != nil {
		return err
	}
	fmt.Printf("Order confirmed. ID: %s, total $%.2f.\n", order.ID, order.Total)
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, err := a.client.Orders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%s  %-10s  $%8.2f  %d line(s)\n", o.ID, o.Status, o.Total, len(o.Items))
	}
	return nil
}

func (a *app) adminMenu(ctx context.Context) error {
	switch a.prompt("o) all orders  s) set order status  p) new product  enter) back: ") {
	case "o":
		orders, err := a.admin.ListOrders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%s  %-10s  $%8.2f  user %s\n", o.ID, o.Status, o.Total, o.UserID)
		}
	case "s":
		orderID := a.prompt("Order ID: ")
		fmt.Println("Statuses:", strings.Join(models.OrderStatuses, ", "))
		status := a.prompt("New status: ")
		if err := a.admin.SetOrderStatus(ctx, orderID, status); err != nil {
			return err
		}
		fmt.Println("Status updated.")
	case "p":
		price, err := strconv.ParseFloat(a.prompt("Price: "), 64)
		if err != nil {
			return errors.New("invalid price")
		}
		stock, err := strconv.Atoi(a.prompt("Stock: "))
		if err != nil {
			return errors.New("invalid stock")
		}
		product, err := a.admin.CreateProduct(ctx, models.ProductRequest{
			Name:        a.prompt("Name: "),
			Description: a.prompt("Description: "),
			Price:       price,
			Category:    a.prompt("Category: "),
			Sizes:       splitList(a.prompt("Sizes (comma-separated): ")),
			Colors:      splitList(a.prompt("Colors (comma-separated): ")),
			ImageURL:    a.prompt("Image URL: "),
			Stock:       stock,
		})
		if err != nil {
			return err
		}
		fmt.Println("Created product", product.ID)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// userMessage keeps server detail verbatim and falls back to a generic
// message for transport-level failures.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	var valErr *api.ValidationError
	if errors.As(err, &valErr) {
		return "please fill in " + strings.ReplaceAll(valErr.Field, "_", " ")
	}
	if errors.Is(err, api.ErrUnauthenticated) {
		return "please log in first"
	}
	return err.Error()
}
