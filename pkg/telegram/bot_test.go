package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fridge-inventory/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastSecret string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			lastSecret = req["secret_token"]
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			if req["text"].(string) == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/getFile") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["file_id"] == "missing" {
				w.Write([]byte(`{"ok": false, "description": "file not found"}`))
				return
			}
			w.Write([]byte(`{"ok": true, "result": {"file_id": "abc", "file_size": 5, "file_path": "voice/file_1.oga"}}`))
			return
		}

		if path == "/file/bottest-token/voice/file_1.oga" {
			w.Write([]byte("OggS!"))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook Secret Token", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastSecret != "s3cret" {
			t.Fatalf("expected secret_token to be sent, got %q", lastSecret)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error", "")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "cause_500", ""); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 1, "Dodano 2 mleko"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bot.SendMessage(ctx, 1, "cause_error"); err == nil {
			t.Fatalf("expected error for rejected message")
		}
	})

	t.Run("GetFile and DownloadFile", func(t *testing.T) {
		f, err := bot.GetFile(ctx, "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.FilePath != "voice/file_1.oga" {
			t.Fatalf("unexpected file path %q", f.FilePath)
		}

		data, err := bot.DownloadFile(ctx, f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "OggS!" {
			t.Fatalf("unexpected content %q", data)
		}
	})

	t.Run("GetFile Failed", func(t *testing.T) {
		_, err := bot.GetFile(ctx, "missing")
		if err == nil || !strings.Contains(err.Error(), "file not found") {
			t.Fatalf("expected getFile failure, got: %v", err)
		}
	})

	t.Run("DownloadFile Too Large", func(t *testing.T) {
		if _, err := bot.DownloadFile(ctx, telegram.File{FilePath: "x", FileSize: 30 << 20}); err == nil {
			t.Fatalf("expected size error")
		}
	})
}
