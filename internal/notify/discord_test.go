package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"asx-vms/rosterd/internal/roster"
)

func captureWebhook(t *testing.T) (*httptest.Server, *discordMessage) {
	t.Helper()
	var captured discordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func TestSend_SuspensionEmbed(t *testing.T) {
	server, captured := captureWebhook(t)
	client := NewDiscordWebhookClient(server.URL)

	err := client.Send(context.Background(), &roster.LifecycleEvent{
		Kind:     roster.EventSuspension,
		Callsign: "ASX002",
		Name:     "Laura",
		Surname:  "Bianchi",
		Reason:   "inactivity",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(captured.Embeds) != 1 {
		t.Fatalf("Expected one embed, got %d", len(captured.Embeds))
	}
	embed := captured.Embeds[0]
	if embed.Title != "🚫 Pilota Sospeso" {
		t.Errorf("Unexpected title %q", embed.Title)
	}
	if embed.Color != colorRed {
		t.Errorf("Expected red embed, got %#x", embed.Color)
	}
	if embed.Footer.Text != "Sistema Gestione Piloti" {
		t.Errorf("Unexpected footer %q", embed.Footer.Text)
	}

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	if fields["Callsign"] != "ASX002" || fields["Nome"] != "Laura Bianchi" || fields["Motivo"] != "inactivity" {
		t.Errorf("Unexpected fields: %v", fields)
	}
}

func TestSend_ReactivationEmbed(t *testing.T) {
	server, captured := captureWebhook(t)
	client := NewDiscordWebhookClient(server.URL)

	err := client.Send(context.Background(), &roster.LifecycleEvent{
		Kind:     roster.EventReactivation,
		Callsign: "ASX002",
		Name:     "Laura",
		Surname:  "Bianchi",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	embed := captured.Embeds[0]
	if embed.Title != "✅ Pilota Riattivato" || embed.Color != colorGreen {
		t.Errorf("Unexpected embed %q %#x", embed.Title, embed.Color)
	}
	for _, f := range embed.Fields {
		if f.Name == "Motivo" {
			t.Error("Reactivation embed must not carry a reason field")
		}
	}
}

func TestSend_WebhookErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := NewDiscordWebhookClient(server.URL)
	err := client.Send(context.Background(), &roster.LifecycleEvent{
		Kind:     roster.EventCreation,
		Callsign: "ASX001",
	})
	if err == nil {
		t.Error("Expected error on non-2xx webhook response")
	}
}

func TestSend_UnknownKind(t *testing.T) {
	client := NewDiscordWebhookClient("http://localhost:0")
	err := client.Send(context.Background(), &roster.LifecycleEvent{Kind: "unknown"})
	if err == nil {
		t.Error("Expected error for an unknown event kind")
	}
}
