package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	// maxFileSize matches the Bot API download limit.
	maxFileSize = 20 << 20
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	fileURL    string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("%s/bot%s", defaultAPIBase, token),
		fileURL:    fmt.Sprintf("%s/file/bot%s", defaultAPIBase, token),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAPIURL overrides the Telegram API base for testing purposes. Method and
// file URLs are derived from it the same way as for api.telegram.org.
func (b *Bot) SetAPIURL(base string) {
	b.apiURL = fmt.Sprintf("%s/bot%s", base, b.token)
	b.fileURL = fmt.Sprintf("%s/file/bot%s", base, b.token)
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secretToken
// is echoed back by Telegram in the SecretTokenHeader of every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	payload := map[string]string{"url": webhookURL}
	if secretToken != "" {
		payload["secret_token"] = secretToken
	}

	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", payload, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}

	var apiResp APIResponse
	if err := b.call(ctx, "sendMessage", payload, &apiResp); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// GetFile resolves a file_id to a downloadable path.
func (b *Bot) GetFile(ctx context.Context, fileID string) (File, error) {
	var apiResp FileResponse
	if err := b.call(ctx, "getFile", map[string]string{"file_id": fileID}, &apiResp); err != nil {
		return File{}, fmt.Errorf("failed to get file: %w", err)
	}
	if apiResp.Result.FilePath == "" {
		return File{}, fmt.Errorf("telegram getFile returned no file_path for %s", fileID)
	}
	return apiResp.Result, nil
}

// DownloadFile fetches the content of a file returned by GetFile.
func (b *Bot) DownloadFile(ctx context.Context, f File) ([]byte, error) {
	if f.FileSize > maxFileSize {
		return nil, fmt.Errorf("telegram file too large: %d bytes", f.FileSize)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.fileURL+"/"+f.FilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram file download error %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("telegram file too large")
	}
	return data, nil
}

// call posts payload to a Bot API method and decodes the envelope into out.
func (b *Bot) call(ctx context.Context, method string, payload any, out apiEnvelope) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !out.ok() {
		return fmt.Errorf("telegram %s failed: %s", method, out.description())
	}
	return nil
}
