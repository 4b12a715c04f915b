package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"asx-vms/rosterd/internal/roster"
)

// DiscordWebhookClient posts lifecycle events to the crew Discord channel
// as embeds. Labels stay in Italian to match the channel the airline has
// used since the old VMS.
type DiscordWebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

func NewDiscordWebhookClient(webhookURL string) *DiscordWebhookClient {
	return &DiscordWebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []discordEmbedField `json:"fields"`
	Timestamp string              `json:"timestamp"`
	Footer    struct {
		Text string `json:"text"`
	} `json:"footer"`
}

type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

const (
	colorRed   = 0xff0000
	colorGreen = 0x00b300
	colorBlue  = 0x0066ff
)

// Send posts one lifecycle event embed to the webhook.
func (c *DiscordWebhookClient) Send(ctx context.Context, event *roster.LifecycleEvent) error {
	embed := discordEmbed{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Fields: []discordEmbedField{
			{Name: "Callsign", Value: event.Callsign, Inline: true},
			{Name: "Nome", Value: event.Name + " " + event.Surname, Inline: true},
		},
	}
	embed.Footer.Text = "Sistema Gestione Piloti"

	switch event.Kind {
	case roster.EventSuspension:
		embed.Title = "🚫 Pilota Sospeso"
		embed.Color = colorRed
		reason := event.Reason
		if reason == "" {
			reason = "N/A"
		}
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Motivo", Value: reason})
	case roster.EventReactivation:
		embed.Title = "✅ Pilota Riattivato"
		embed.Color = colorGreen
	case roster.EventCreation:
		embed.Title = "🛫 Nuovo Pilota"
		embed.Color = colorBlue
	default:
		return fmt.Errorf("unknown event kind: %s", event.Kind)
	}

	body, err := json.Marshal(discordMessage{Embeds: []discordEmbed{embed}})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook failed: %d", resp.StatusCode)
	}

	return nil
}
