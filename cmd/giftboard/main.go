// giftboard is a terminal client for the gifttrack API: it prints the
// per-person board and can reassign a gift the same way a drag-and-drop
// would.
//
// Usage:
//
//	giftboard [-addr http://localhost:8080] board
//	giftboard [-addr http://localhost:8080] move <gift-id> <target-id>
//
// The shared password is read from APP_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gifttrack/internal/board"
	"gifttrack/internal/client"
	"gifttrack/internal/logging"
)

func main() {
	logging.Setup()

	addr := flag.String("addr", "http://localhost:8080", "gifttrack server address")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	password := os.Getenv("APP_PASSWORD")
	if password == "" {
		fatal("APP_PASSWORD is not set")
	}

	ctx := context.Background()

	c, err := client.New(*addr)
	if err != nil {
		fatal(err)
	}
	if err := c.Login(ctx, password); err != nil {
		fatal(err)
	}

	ctrl := board.NewController(c)
	if err := ctrl.Refresh(ctx); err != nil {
		fatal(err)
	}

	switch flag.Arg(0) {
	case "board":
		printBoard(ctrl)
	case "move":
		if flag.NArg() != 3 {
			usage()
		}
		giftID, targetID := flag.Arg(1), flag.Arg(2)
		if !ctrl.DragStart(giftID) {
			fatal("unknown gift: " + giftID)
		}
		if err := ctrl.Drop(ctx, targetID); err != nil {
			fatal(err)
		}
		printBoard(ctrl)
	default:
		usage()
	}
}

func printBoard(ctrl *board.Controller) {
	for _, col := range ctrl.Columns() {
		fmt.Printf("%s  (%d gifts, spent %.2f, planned %.2f)\n",
			col.Name, col.GiftCount, col.Spent, col.Planned)
		for _, g := range col.Gifts {
			price := "-"
			if g.Price != nil {
				price = fmt.Sprintf("%.2f", *g.Price)
			}
			fmt.Printf("  [%s] %-20s %8s  %s\n", g.Status, g.Name, price, g.ID)
		}
	}

	if un := ctrl.Unassigned(); len(un) > 0 {
		fmt.Println("(unassigned)")
		for _, g := range un {
			fmt.Printf("  [%s] %-20s %s\n", g.Status, g.Name, g.ID)
		}
	}

	t := ctrl.Totals()
	fmt.Printf("total: %d gifts, spent %.2f, planned %.2f\n",
		t.TotalGifts, t.TotalSpentReal, t.TotalPlanned)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: giftboard [-addr URL] board | move <gift-id> <target-id>")
	os.Exit(2)
}

func fatal(v any) {
	fmt.Fprintln(os.Stderr, "giftboard:", v)
	os.Exit(1)
}
