// Package main prints a summary of a store's document: collection sizes,
// item ratings, request matches and accounts still on legacy passwords.
//
// Usage:
//
//	go run ./cmd/dbinspect -path data.json
//	go run ./cmd/dbinspect -driver badger -path ./data
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/edinacircular/circular-server/internal/di/providers"
	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/match"
	"github.com/edinacircular/circular-server/internal/store"
	"github.com/edinacircular/circular-server/internal/store/sqlite"
)

var (
	driver = flag.String("driver", "file", "store driver: file, badger or sqlite")
	path   = flag.String("path", "data.json", "store path")
)

func main() {
	flag.Parse()

	backend, err := providers.OpenBackend(*driver, *path)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	st := store.New(backend, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	defer st.Close()

	ctx := context.Background()
	doc, err := st.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	fmt.Println("=== Store Inspection ===")
	fmt.Printf("Backend:    %s (%s)\n", backend.Name(), *path)
	if sb, ok := backend.(*sqlite.Backend); ok {
		if at, err := sb.UpdatedAt(ctx); err == nil {
			fmt.Printf("Updated:    %s\n", at.Format("2006-01-02 15:04:05"))
		}
	}
	fmt.Println()

	fmt.Printf("Items:      %d\n", len(doc.Items))
	fmt.Printf("Requests:   %d\n", len(doc.Requests))
	fmt.Printf("Ratings:    %d\n", len(doc.Ratings))
	fmt.Printf("Users:      %d\n", len(doc.Users))
	fmt.Printf("Volunteers: %d\n", len(doc.Volunteers))
	fmt.Printf("Donations:  %d\n", len(doc.Donations))

	printItems(doc)
	printRequests(doc)
	printUsers(doc)
}

func printItems(doc *domain.Document) {
	if len(doc.Items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("--- Items ---")
	for _, item := range doc.Items {
		avg, count := match.Aggregate(doc.Ratings, item.ID)
		stale := ""
		if count > 0 && (item.RatingCount == nil || *item.RatingCount != count) {
			stale = "  (stored aggregate out of date)"
		}
		verified := " "
		if item.Verified {
			verified = "✓"
		}
		fmt.Printf("%s %-22s %-5s %-12s %.2f/%d%s\n", verified, item.ID, item.Type, item.Category, avg, count, stale)
		fmt.Printf("    %s\n", item.Name)
	}

	orphaned := 0
	for _, r := range doc.Ratings {
		if doc.ItemIndex(r.ItemID) < 0 {
			orphaned++
		}
	}
	if orphaned > 0 {
		fmt.Printf("Ratings for unknown items: %d\n", orphaned)
	}
}

func printRequests(doc *domain.Document) {
	if len(doc.Requests) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("--- Requests ---")
	for _, req := range doc.Requests {
		fmt.Printf("%-22s %-20s %d candidate(s)\n", req.ID, req.Name, len(match.ForRequest(doc.Items, req)))
	}
}

func printUsers(doc *domain.Document) {
	legacy := 0
	for _, u := range doc.Users {
		if u.HasLegacyPassword() {
			legacy++
		}
	}
	if legacy > 0 {
		fmt.Println()
		fmt.Printf("Users with plain-text passwords: %d (upgraded on next login)\n", legacy)
	}
}
