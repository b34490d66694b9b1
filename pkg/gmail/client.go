package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail API service for read-only message listing.
type Client struct {
	service *gmailapi.Service
	userID  string
}

// NewClientFromCredentialsFile creates a Gmail client from a credentials JSON
// file path (Service Account or OAuth installed-app plus token.json).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	// Try service account first
	config, err := google.JWTConfigFromJSON(data, gmailapi.GmailReadonlyScope)
	if err == nil {
		svc, svcErr := gmailapi.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", svcErr)
		}
		return &Client{service: svc, userID: "me"}, nil
	}

	// Fallback: OAuth2 installed app credentials plus a stored token.json
	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(data, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{gmailapi.GmailReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run scripts/google-auth first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create gmail service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc, userID: "me"}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client
// (OAuth transport in production, httptest backend in tests).
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc, userID: "me"}, nil
}

// ListRecent fetches up to max recent messages with their headers and
// snippet bodies.
func (c *Client) ListRecent(ctx context.Context, max int64) ([]Message, error) {
	if max <= 0 {
		max = 20
	}

	list, err := c.service.Users.Messages.List(c.userID).MaxResults(max).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list gmail messages: %w", err)
	}

	messages := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		full, getErr := c.service.Users.Messages.Get(c.userID, ref.Id).Format("metadata").Context(ctx).Do()
		if getErr != nil {
			return nil, fmt.Errorf("failed to get gmail message %s: %w", ref.Id, getErr)
		}
		messages = append(messages, fromAPIMessage(full))
	}

	return messages, nil
}

func fromAPIMessage(m *gmailapi.Message) Message {
	msg := Message{
		ID:   m.Id,
		Body: m.Snippet,
	}
	if m.InternalDate > 0 {
		msg.ReceivedAt = time.UnixMilli(m.InternalDate)
	}
	if m.Payload == nil {
		return msg
	}
	for _, h := range m.Payload.Headers {
		switch h.Name {
		case "From":
			msg.Sender = h.Value
		case "Subject":
			msg.Subject = h.Value
		}
	}
	return msg
}
