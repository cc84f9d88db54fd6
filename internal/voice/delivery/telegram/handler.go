package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
	pkgLog "fridge-inventory/pkg/log"
	pkgResponse "fridge-inventory/pkg/response"
	pkgTelegram "fridge-inventory/pkg/telegram"
)

const (
	searchCommand = "/szukaj"

	startText = "👋 Cześć! Jestem asystentem Twojej lodówki i zamrażarki.\n\n" +
		"Napisz albo nagraj polecenie, np.:\n" +
		"• _dodaj 2 mleka na górną półkę_\n" +
		"• _zabierz jedno masło z lodówki_\n\n" +
		"Aby sprawdzić zapasy, użyj `/szukaj <produkt>`."
	helpText = "*Jak korzystać:*\n\n" +
		"• Tekst lub wiadomość głosowa: dodawanie, usuwanie i zmiana ilości produktów.\n" +
		"• `/szukaj mleko`: ile masz danego produktu i gdzie leży."
)

type handler struct {
	l           pkgLog.Logger
	uc          voice.UseCase
	inventoryUC inventory.UseCase
	bot         *pkgTelegram.Bot
	secretToken string
}

// HandleWebhook acknowledges the update at once and processes the message in
// the background, since a model round trip can exceed the webhook deadline.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram handler: rejected update with a bad secret token from %s", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.ValidationError(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage: %v", err)
			if sendErr := h.bot.SendMessageWithMode(bgCtx, msg.Chat.ID, userMessage(err), "Markdown"); sendErr != nil {
				h.l.Warnf(bgCtx, "telegram handler: failed to send error reply: %v", sendErr)
			}
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) authorized(token string) bool {
	if h.secretToken == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secretToken)) == 1
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	if msg.Voice != nil {
		return h.handleVoice(ctx, sc, msg)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch {
	case text == "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, startText, "Markdown")
	case text == "/help" || text == "/pomoc":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpText, "Markdown")
	case text == searchCommand || strings.HasPrefix(text, searchCommand+" "):
		return h.handleSearch(ctx, sc, msg.Chat.ID, strings.TrimSpace(strings.TrimPrefix(text, searchCommand)))
	}

	return h.handleCommand(ctx, sc, msg.Chat.ID, text)
}

func (h *handler) handleVoice(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message) error {
	file, err := h.bot.GetFile(ctx, msg.Voice.FileID)
	if err != nil {
		return fmt.Errorf("bot.GetFile: %w", err)
	}
	audio, err := h.bot.DownloadFile(ctx, file)
	if err != nil {
		return fmt.Errorf("bot.DownloadFile: %w", err)
	}

	mimeType := msg.Voice.MimeType
	if mimeType == "" {
		mimeType = "audio/ogg"
	}

	text, err := h.uc.Transcribe(ctx, voice.TranscribeInput{Audio: audio, MIMEType: mimeType})
	if err != nil {
		return fmt.Errorf("uc.Transcribe: %w", err)
	}

	if err := h.bot.SendMessage(ctx, msg.Chat.ID, "🎤 "+text); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to echo transcript: %v", err)
	}
	return h.handleCommand(ctx, sc, msg.Chat.ID, text)
}

func (h *handler) handleCommand(ctx context.Context, sc model.Scope, chatID int64, text string) error {
	defaultShelfID, err := h.defaultShelfID(ctx, sc)
	if err != nil {
		return err
	}

	output, err := h.uc.ProcessCommand(ctx, sc, voice.CommandInput{Text: text, DefaultShelfID: defaultShelfID})
	if err != nil {
		return fmt.Errorf("uc.ProcessCommand: %w", err)
	}

	return h.bot.SendMessage(ctx, chatID, commandReply(output))
}

func (h *handler) handleSearch(ctx context.Context, sc model.Scope, chatID int64, term string) error {
	if term == "" {
		return h.bot.SendMessageWithMode(ctx, chatID, userMessage(voice.ErrEmptyQuery), "Markdown")
	}

	output, err := h.uc.ProcessQuery(ctx, sc, voice.QueryInput{Term: term})
	if err != nil {
		return fmt.Errorf("uc.ProcessQuery: %w", err)
	}

	return h.bot.SendMessage(ctx, chatID, queryReply(output))
}

func (h *handler) defaultShelfID(ctx context.Context, sc model.Scope) (string, error) {
	out, err := h.inventoryUC.GetDefaultShelf(ctx, sc)
	if err != nil {
		return "", fmt.Errorf("inventoryUC.GetDefaultShelf: %w", err)
	}
	if out.Shelf == nil {
		return "", nil
	}
	return out.Shelf.Shelf.ID, nil
}

func commandReply(out voice.CommandOutput) string {
	if out.NeedsClarification {
		return "❓ " + out.ClarificationQuestion
	}
	if out.Success {
		return "✅ " + out.Message
	}
	return "⚠️ " + out.Message
}

func queryReply(out voice.QueryOutput) string {
	if !out.Found {
		return "🔍 " + out.Message
	}

	var b strings.Builder
	b.WriteString("🔍 " + out.Message)
	for _, item := range out.Items {
		fmt.Fprintf(&b, "\n\n%s: %d", item.Name, item.TotalQuantity)
		for _, loc := range item.Locations {
			fmt.Fprintf(&b, "\n  • %s, %s", loc.ContainerName, loc.ShelfName)
		}
	}
	return b.String()
}
