// Command gcal-auth authorizes the calendar mirror with an OAuth desktop client and
// writes the token.json that the server reads from its working directory.
//
// Usage:
//
//	go run ./cmd/gcal-auth [credentials.json] [token.json]
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := argOr(1, "google-credentials.json")
	tokenPath := argOr(2, "token.json")

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (%q must be an OAuth desktop client file)", err, credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the account that owns the calendar:")
	fmt.Println()
	fmt.Println(cfg.AuthCodeURL("task-calendar", oauth2.AccessTypeOffline, oauth2.ApprovalForce))
	fmt.Println()
	fmt.Print("2. Paste the authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}
	if tok.RefreshToken == "" {
		log.Printf("warning: no refresh token returned, the mirror stops working when %s expires", tok.Expiry)
	}

	f, err := os.OpenFile(tokenPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", tokenPath, err)
	}

	fmt.Printf("Saved %s. Set google_calendar.credentials_path to %s and restart the server.\n", tokenPath, credsPath)
}

func argOr(i int, fallback string) string {
	if len(os.Args) > i && os.Args[i] != "" {
		return os.Args[i]
	}
	return fallback
}
