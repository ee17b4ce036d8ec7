package facebook

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"titoubarz-backend/pkg/logger"

	"github.com/goccy/go-json"
)

// HashSHA256 returns a hex-encoded SHA256 hash of the normalized input.
// Facebook requires customer fields to be trimmed, lowercased and hashed.
func HashSHA256(input string) string {
	if input == "" {
		return ""
	}
	normalized := strings.ToLower(strings.TrimSpace(input))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// CAPIClient sends server-side conversion events to the Facebook
// Conversions API. A nil client is valid and drops every event, so callers
// never need to check whether tracking is configured.
type CAPIClient struct {
	pixelID     string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
}

func NewCAPIClient(pixelID, accessToken, apiVersion string) *CAPIClient {
	if pixelID == "" || accessToken == "" {
		logger.Warn().Msg("Facebook Pixel ID or Access Token not configured, conversion tracking disabled")
		return nil
	}
	return &CAPIClient{
		pixelID:     pixelID,
		accessToken: accessToken,
		apiVersion:  apiVersion,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Customer carries the matching signals for a cash-on-delivery checkout:
// a phone number, a name and the destination wilaya. Email is optional
// because the order form does not require one.
type Customer struct {
	Phone     string `json:"ph,omitempty"`
	Email     string `json:"em,omitempty"`
	FirstName string `json:"fn,omitempty"`
	LastName  string `json:"ln,omitempty"`
	State     string `json:"st,omitempty"`
	Country   string `json:"country,omitempty"`
	ClientIP  string `json:"client_ip_address,omitempty"`
	UserAgent string `json:"client_user_agent,omitempty"`
}

// LineItem is one purchased product in the event payload.
type LineItem struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"item_price,omitempty"`
}

type purchaseData struct {
	Currency   string     `json:"currency"`
	Value      float64    `json:"value"`
	OrderID    string     `json:"order_id,omitempty"`
	Contents   []LineItem `json:"contents,omitempty"`
	ContentIDs []string   `json:"content_ids,omitempty"`
	NumItems   int        `json:"num_items,omitempty"`
}

type event struct {
	EventName    string       `json:"event_name"`
	EventTime    int64        `json:"event_time"`
	ActionSource string       `json:"action_source"`
	EventID      string       `json:"event_id,omitempty"`
	UserData     Customer     `json:"user_data"`
	CustomData   purchaseData `json:"custom_data"`
}

type eventPayload struct {
	Data []event `json:"data"`
}

// TrackPurchase reports a completed order. The call is fire-and-forget: it
// hashes the customer fields, then delivers the event on a background
// goroutine so checkout latency never depends on Facebook.
func (c *CAPIClient) TrackPurchase(orderID string, value float64, currency string, items []LineItem, customer Customer) {
	if c == nil {
		return
	}

	customer.Phone = HashSHA256(customer.Phone)
	customer.Email = HashSHA256(customer.Email)
	customer.FirstName = HashSHA256(customer.FirstName)
	customer.LastName = HashSHA256(customer.LastName)
	customer.State = HashSHA256(customer.State)

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	ev := event{
		EventName:    "Purchase",
		EventTime:    time.Now().Unix(),
		ActionSource: "website",
		// Order ID doubles as the dedup key against browser pixel events.
		EventID:  orderID,
		UserData: customer,
		CustomData: purchaseData{
			Currency:   currency,
			Value:      value,
			OrderID:    orderID,
			Contents:   items,
			ContentIDs: ids,
			NumItems:   len(items),
		},
	}

	go func() {
		if err := c.send(ev); err != nil {
			logger.Error().Err(err).Str("order_id", orderID).Msg("Failed to send Purchase event")
		}
	}()
}

// send delivers one event with up to three attempts. Non-retryable 4xx
// responses abort early.
func (c *CAPIClient) send(ev event) error {
	jsonData, err := json.Marshal(eventPayload{Data: []event{ev}})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	url := fmt.Sprintf("https://graph.facebook.com/%s/%s/events?access_token=%s",
		c.apiVersion, c.pixelID, c.accessToken)

	var lastErr error
	for i := 0; i < 3; i++ {
		resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			lastErr = fmt.Errorf("conversions API request failed: %w", err)
			time.Sleep(time.Duration(i+1) * time.Second)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			logger.Debug().Str("event", ev.EventName).Msg("Conversion event sent")
			return nil
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("conversions API error (status %d): %s", resp.StatusCode, string(body))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		time.Sleep(time.Duration(i+1) * time.Second)
	}

	return lastErr
}
