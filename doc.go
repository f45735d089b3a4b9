// Package maylng provides a Go client SDK for Maylng,
// an email API for creating email addresses and sending emails
// on behalf of automated agents.
//
// The SDK exposes two services: EmailAddresses for managing temporary
// and persistent addresses, and Emails for sending and tracking messages.
//
// Basic usage:
//
//	client, err := maylng.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a temporary email address
//	addr, err := client.EmailAddresses.Create(ctx, maylng.CreateEmailAddressParams{
//	    Type:              maylng.AddressTypeTemporary,
//	    ExpirationMinutes: 60,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Send an email from it
//	sent, err := client.Emails.Send(ctx, maylng.SendEmailParams{
//	    FromEmailID: addr.ID,
//	    To:          []maylng.Recipient{{Email: "user@example.com"}},
//	    Subject:     "Hello",
//	    Text:        "Hello from Maylng!",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Sent:", sent.ID)
package maylng
