package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/logger"
)

// Notifier delivers a scheduling outcome message to a user.
type Notifier interface {
	Send(ctx context.Context, userID string, message string) error
}

// ChatNotifier posts outcome messages to the chat webhook. The channel is
// the user's host id, which the chat bridge resolves to a direct message.
type ChatNotifier struct {
	webhookURL string
	client     *http.Client
}

func NewChatNotifier(webhookURL string) *ChatNotifier {
	return &ChatNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: constants.DefaultTimeout},
	}
}

type chatMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (n *ChatNotifier) Send(ctx context.Context, userID string, message string) error {
	if n.webhookURL == "" {
		return fmt.Errorf("chat webhook url is not configured")
	}

	body, err := json.Marshal(chatMessage{Channel: userID, Text: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Error("ChatNotifier:Send:Error:", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("chat webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
