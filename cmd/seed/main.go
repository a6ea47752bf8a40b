// Package main seeds a store with demo listings, requests, accounts and
// ratings so the web client has something to show.
//
// Usage:
//
//	go run ./cmd/seed -path data.json
//	go run ./cmd/seed -driver sqlite -path circular.db -ratings=false
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/di/providers"
	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/service"
	"github.com/edinacircular/circular-server/internal/store"
	"github.com/edinacircular/circular-server/internal/validation"
)

var (
	driver      = flag.String("driver", "file", "store driver: file, badger or sqlite")
	path        = flag.String("path", "data.json", "store path")
	withRatings = flag.Bool("ratings", true, "add a few random ratings to each item")
)

var demoItems = []service.CreateItemRequest{
	{Name: "Cordless Power Drill", Category: "Tools", Description: "18V drill with two batteries and a bit set.", Type: domain.ItemTypeLend, LenderName: "Pat Nguyen", LenderContact: "pat@example.com", LenderBio: "Weekend woodworker."},
	{Name: "Camping Tent", Category: "Outdoors", Description: "Four-person tent, easy setup.", Type: domain.ItemTypeLend, LenderName: "Jordan Lee", LenderContact: "jordan@example.com"},
	{Name: "Kids Bike", Category: "Sports", Description: "16 inch bike, outgrown but in good shape.", Type: domain.ItemTypeGive, LenderName: "Sam Ortiz", LenderContact: "555-0142"},
	{Name: "Stand Mixer", Category: "Kitchen", Description: "Works well, includes dough hook.", Type: domain.ItemTypeLend, LenderName: "Alex Kim", LenderContact: "alex@example.com"},
	{Name: "Bookshelf", Category: "Furniture", Description: "Five shelves, solid wood.", Type: domain.ItemTypeGive, LenderName: "Robin Diaz", LenderContact: "robin@example.com"},
}

var demoRequests = []service.CreateRequestRequest{
	{Name: "Drill", Category: "Tools", Duration: "1 weekend", Description: "Hanging shelves in the garage."},
	{Name: "Kayak", Category: "Outdoors", Duration: "1 week", Description: "Family trip up north."},
	{Name: "Mixer", Category: "Kitchen", Duration: "2 days", Description: "Baking for a school fundraiser."},
}

var demoUsers = []service.RegisterRequest{
	{Email: "demo@example.com", Password: "circular-demo", Name: "Demo User", Contact: "555-0100", Bio: "Trying things out."},
	{Email: "moderator@example.com", Password: "circular-mod", Name: "Moderator"},
}

func main() {
	flag.Parse()

	backend, err := providers.OpenBackend(*driver, *path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	st := store.New(backend, logger)
	defer st.Close()

	if err := seed(context.Background(), st, logger); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Seeded %s store at %s\n", backend.Name(), *path)
}

func seed(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	v := validation.New()
	items := service.NewItemService(st, v, logger)
	requests := service.NewRequestService(st, v, logger)
	users := service.NewUserService(st, auth.NewHasher(auth.DefaultParams), v, logger)

	for _, req := range demoItems {
		item, err := items.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("item %q: %w", req.Name, err)
		}
		fmt.Printf("  item     %s  %s\n", item.ID, item.Name)

		if !*withRatings {
			continue
		}
		for range 1 + rand.IntN(4) {
			if _, err := items.Rate(ctx, item.ID, 3+rand.IntN(3)); err != nil {
				return fmt.Errorf("rate %q: %w", item.Name, err)
			}
		}
	}

	for _, req := range demoRequests {
		r, err := requests.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("request %q: %w", req.Name, err)
		}
		fmt.Printf("  request  %s  %s\n", r.ID, r.Name)
	}

	for _, req := range demoUsers {
		u, err := users.Register(ctx, req)
		if err != nil {
			// Re-running the seed against the same store hits the unique email rule.
			fmt.Printf("  user     %s skipped: %v\n", req.Email, err)
			continue
		}
		fmt.Printf("  user     %s  %s\n", u.ID, u.Email)
	}

	return nil
}
