// Command testhelper is a small CLI used by cross-SDK compatibility
// tests. Each subcommand performs one API operation and prints a JSON
// result on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	maylng "github.com/maylng/mayl-sdk"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []maylng.Option{}
	if url := os.Getenv("MAYLNG_URL"); url != "" {
		opts = append(opts, maylng.WithBaseURL(url))
	}

	client, err := maylng.New(os.Getenv("MAYLNG_API_KEY"), opts...)
	if err != nil {
		fatal("create client: %v", err)
	}
	defer client.Close()

	switch os.Args[1] {
	case "create-address":
		createAddress(ctx, client, os.Args[2:])
	case "send":
		send(ctx, client)
	case "status":
		if len(os.Args) < 3 {
			fatal("usage: testhelper status <email-id>")
		}
		status(ctx, client, os.Args[2])
	case "cleanup":
		if len(os.Args) < 3 {
			fatal("usage: testhelper cleanup <address-id>")
		}
		cleanup(ctx, client, os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

type AddressOutput struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func createAddress(ctx context.Context, client *maylng.Client, args []string) {
	params := maylng.CreateEmailAddressParams{Type: maylng.AddressTypeTemporary}
	if len(args) > 0 {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("parse expiration minutes: %v", err)
		}
		params.ExpirationMinutes = minutes
	}

	addr, err := client.EmailAddresses.Create(ctx, params)
	if err != nil {
		fatal("create address: %v", err)
	}

	out := AddressOutput{
		ID:     addr.ID,
		Email:  addr.Email,
		Type:   string(addr.Type),
		Status: string(addr.Status),
	}
	if addr.ExpiresAt != nil {
		out.ExpiresAt = addr.ExpiresAt.Format(time.RFC3339)
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode output: %v", err)
	}
}

// SendInput mirrors the JSON shape the other SDK test harnesses emit.
type SendInput struct {
	FromEmailID string   `json:"fromEmailId"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	Text        string   `json:"text"`
	HTML        string   `json:"html,omitempty"`
}

func send(ctx context.Context, client *maylng.Client) {
	var input SendInput
	if err := json.NewDecoder(os.Stdin).Decode(&input); err != nil {
		fatal("parse send input: %v", err)
	}

	to := make([]maylng.Recipient, len(input.To))
	for i, email := range input.To {
		to[i] = maylng.Recipient{Email: email}
	}

	email, err := client.Emails.Send(ctx, maylng.SendEmailParams{
		FromEmailID: input.FromEmailID,
		To:          to,
		Subject:     input.Subject,
		Text:        input.Text,
		HTML:        input.HTML,
	})
	if err != nil {
		fatal("send email: %v", err)
	}

	json.NewEncoder(os.Stdout).Encode(map[string]string{
		"id":     email.ID,
		"status": string(email.Status),
	})
}

func status(ctx context.Context, client *maylng.Client, id string) {
	ds, err := client.Emails.GetDeliveryStatus(ctx, id)
	if err != nil {
		fatal("delivery status: %v", err)
	}

	out := map[string]any{
		"status": string(ds.Status),
		"opens":  ds.Opens,
		"clicks": ds.Clicks,
	}
	if ds.FailureReason != "" {
		out["failureReason"] = ds.FailureReason
	}
	json.NewEncoder(os.Stdout).Encode(out)
}

func cleanup(ctx context.Context, client *maylng.Client, id string) {
	if err := client.EmailAddresses.Delete(ctx, id); err != nil {
		fatal("delete address: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(map[string]bool{"success": true})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
