package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var errWebhookRequired = errors.New("discord webhook id and token are required")

const (
	colorError   = 0xE74C3C
	colorSuccess = 0x2ECC71
	colorWarning = 0xF39C12
)

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError sends an error embed with the error message attached.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.post(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorSuccess)
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, title, description, colorWarning)
}

// ReportBug sends a bug report message.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.sendEmbed(ctx, "Bug Report", message, colorError)
}

func (d *discordImpl) sendEmbed(ctx context.Context, title, description string, color int) error {
	return d.post(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       color,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		d.l.Errorf(ctx, "discord.post: marshal payload: %v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Errorf(ctx, "discord.post: send webhook: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
		d.l.Errorf(ctx, "discord.post: %v", err)
		return err
	}
	return nil
}
