package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/shopspring/decimal"

	"github.com/djibh/billed/internal/bills"
	"github.com/djibh/billed/internal/newbill"
	"github.com/djibh/billed/internal/session"
	"github.com/djibh/billed/internal/store"
	"github.com/djibh/billed/internal/ui"
)

func main() {
	fs := ff.NewFlagSet("billed")
	var (
		storeURL    = fs.StringLong("store-url", "http://localhost:5678", "Record store base URL")
		sessionPath = fs.StringLong("session-db", "billed-session.db", "Session store file path")
		email       = fs.StringLong("email", "", "Employee email (login)")
		userType    = fs.StringLong("user-type", "Employee", "User type (login)")
		billType    = fs.StringLong("type", "", "Expense type (new)")
		billName    = fs.StringLong("name", "", "Expense name (new)")
		amount      = fs.StringLong("amount", "0", "Amount in euros (new)")
		date        = fs.StringLong("date", "", "Expense date, YYYY-MM-DD (new)")
		vat         = fs.StringLong("vat", "0", "VAT amount (new)")
		pct         = fs.IntLong("pct", 0, "VAT percentage (new)")
		commentary  = fs.StringLong("commentary", "", "Commentary (new)")
		filePath    = fs.StringLong("file", "", "Receipt file path (new)")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("BILLED"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := fs.GetArgs()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: billed [flags] login|list|new\n%s\n", ffhelp.Flags(fs))
		os.Exit(1)
	}

	sess, err := session.OpenBolt(*sessionPath)
	if err != nil {
		slog.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer sess.Close()

	st, err := store.NewHTTPStore(nil, *storeURL)
	if err != nil {
		slog.Error("Failed to configure record store", "error", err)
		os.Exit(1)
	}

	term := ui.NewTerminal(os.Stdout)
	ctx := context.Background()

	switch args[0] {
	case "login":
		if *email == "" {
			slog.Error("An email is required to log in. Set --email or BILLED_EMAIL")
			os.Exit(1)
		}
		if err := sess.SetUser(session.User{Type: *userType, Email: *email}); err != nil {
			slog.Error("Failed to store session user", "error", err)
			os.Exit(1)
		}
		slog.Info("Logged in", "email", *email, "type", *userType)

	case "list":
		listController := bills.NewController(st, navigator(ctx, st, term), term)
		if err := listController.Show(ctx); err != nil {
			os.Exit(1)
		}

	case "new":
		amountDec, err := decimal.NewFromString(*amount)
		if err != nil {
			slog.Error("Invalid amount", "amount", *amount, "error", err)
			os.Exit(1)
		}
		vatDec, err := decimal.NewFromString(*vat)
		if err != nil {
			slog.Error("Invalid VAT", "vat", *vat, "error", err)
			os.Exit(1)
		}

		formController := newbill.NewController(st, navigator(ctx, st, term), term, sess)

		if *filePath != "" {
			data, err := os.ReadFile(*filePath)
			if err != nil {
				slog.Error("Failed to read receipt file", "path", *filePath, "error", err)
				os.Exit(1)
			}
			formController.HandleChangeFile(ctx, newbill.FileSelection{
				Name: *filePath,
				Data: data,
			})
		}

		formController.HandleSubmit(ctx, newbill.Form{
			Type:       *billType,
			Name:       *billName,
			Amount:     amountDec,
			Date:       *date,
			VAT:        vatDec,
			Pct:        *pct,
			Commentary: *commentary,
		})

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q, want login, list or new\n", args[0])
		os.Exit(1)
	}
}

// navigator swaps the active terminal view when a controller asks for
// a route change. The bill list is the only route painted eagerly;
// the new bill form is driven by flags rather than interactively.
func navigator(ctx context.Context, st store.Store, term *ui.Terminal) ui.Navigator {
	return ui.NavigatorFunc(func(route string) {
		if route != ui.RouteBills {
			return
		}
		listController := bills.NewController(st, ui.NavigatorFunc(func(string) {}), term)
		if err := listController.Show(ctx); err != nil {
			slog.Error("Failed to show bill list", "error", err)
		}
	})
}
