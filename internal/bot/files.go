package bot

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// saveIncoming fetches the file behind fileID from Telegram and stores it,
// replying to the sender either way.
func (b *Bot) saveIncoming(chatID int64, fileID, name string) {
	if b.store == nil {
		b.reply(chatID, "⚠️ File storage is not configured.")
		return
	}

	stored, err := b.downloadAndSave(fileID, name)
	if err != nil {
		log.Error("Failed to store file", "error", err, "name", name, "chat", chatID)
		b.reply(chatID, "Failed to save the file.")
		return
	}

	b.reply(chatID, fmt.Sprintf("✅ '%s'", stored))
}

func (b *Bot) downloadAndSave(fileID, name string) (string, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("failed to get file info: %w", err)
	}

	resp, err := http.Get(file.Link(b.api.Token))
	if err != nil {
		return "", fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s downloading file", resp.Status)
	}

	stored, err := b.store.Save(name, resp.Body)
	if err != nil {
		return "", err
	}

	log.Info("Stored incoming file", "name", stored, "dir", b.store.Dir())
	return stored, nil
}
