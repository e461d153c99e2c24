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

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord defines the Discord webhook service used for operational alerts.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// NewDiscordWebhook creates a new Discord webhook instance.
func NewDiscordWebhook(id, token string) (*DiscordWebhook, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &DiscordWebhook{ID: id, Token: token}, nil
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

const (
	colorError = 0xE74C3C
	colorInfo  = 0x3498DB
)

type discordImpl struct {
	webhook *DiscordWebhook
	client  *http.Client
}

// New creates a new Discord service.
func New(webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		webhook: webhook,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, webhookPayload{Content: content})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	e := embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		e.Fields = append(e.Fields, embedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, webhookPayload{Embeds: []embed{e}})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.send(ctx, webhookPayload{Embeds: []embed{{
		Title:       title,
		Description: description,
		Color:       colorInfo,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}}})
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendError(ctx, "Bug Report", message, nil)
}

func (d *discordImpl) send(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
