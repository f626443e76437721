package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ag0n1k/tg-fsyn/internal/report"
)

const welcomeMessage = `🤖 Welcome!

Send me a file and I will drop it into the Download Station watch folder:
• Documents
• Photos and images
• Videos and video notes
• Audio and voice messages
• Stickers

Use /status to see what Download Station is working on.
Use /help to see all commands.
Use /id to get your Telegram user id.`

const unauthorizedMessage = `🚫 Access Denied

Sorry, you are not authorized to use this bot.

If you believe this is an error, please contact the bot administrator.`

const adminHelpMessage = `🔧 Admin Commands:

/admin list - List all allowed users
/admin add <user_id> - Add user to allowed list
/admin remove <user_id> - Remove user from allowed list
/admin status - Show bot statistics

Example: /admin add 123456789`

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if !b.access.Allowed(userID) {
		log.Warn("Rejected message from unauthorized user",
			"user", userID,
			"username", msg.From.UserName)
		b.reply(chatID, unauthorizedMessage)
		return
	}

	switch {
	case msg.Document != nil:
		b.handleDocument(msg.Document, chatID)
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1]
		b.handlePhoto(&photo, chatID)
	case msg.Video != nil:
		b.handleVideo(msg.Video, chatID)
	case msg.Audio != nil:
		b.handleAudio(msg.Audio, chatID)
	case msg.Voice != nil:
		b.handleVoice(msg.Voice, chatID)
	case msg.VideoNote != nil:
		b.handleVideoNote(msg.VideoNote, chatID)
	case msg.Sticker != nil:
		b.handleSticker(msg.Sticker, chatID)
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	case msg.Text != "":
		b.reply(chatID, "Send me a file to store, or /help for the command list.")
	default:
		b.reply(chatID, "Unsupported message type. Send me a file to store.")
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeMessage)
	case "help":
		b.sendHelp(msg.Chat.ID, msg.From.ID)
	case "id":
		b.sendUserID(msg.Chat.ID, msg.From)
	case "status":
		b.handleStatus(ctx, msg.Chat.ID)
	case "admin":
		b.handleAdmin(msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /help for the command list.")
	}
}

func (b *Bot) sendHelp(chatID, userID int64) {
	message := `📖 Available Commands:

/start - Show welcome message
/help - Show this help message
/id - Show your Telegram user id
/status - Show current Download Station tasks`

	if b.access.Admin(userID) {
		message += `
/admin - Admin commands (list, add, remove users)`
	}

	message += fmt.Sprintf(`

📁 Any file up to %d MB is stored into the watch folder. Files without a
name are stored with a timestamp and their Telegram file id.`, b.maxFileSize>>20)

	b.reply(chatID, message)
}

func (b *Bot) sendUserID(chatID int64, user *tgbotapi.User) {
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	if user.UserName != "" {
		name = "@" + user.UserName
	}

	b.reply(chatID, fmt.Sprintf(`🆔 Your Telegram User Information:

👤 Name: %s
🔢 User ID: %d

This id can be used by the bot administrator to grant you access.`, name, user.ID))
}

// handleStatus runs one scoped monitoring pass and sends the report. Every
// query opens and closes its own session.
func (b *Bot) handleStatus(ctx context.Context, chatID int64) {
	if b.station == nil {
		b.reply(chatID, "⚠️ Status checks are not configured.")
		return
	}

	tasks, err := report.Collect(ctx, b.station())
	if err != nil {
		log.Error("Status check failed", "error", err)
		b.reply(chatID, "Failed to check download status.")
		return
	}

	b.reply(chatID, report.Render(tasks))
}

func (b *Bot) handleAdmin(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.access.Admin(msg.From.ID) {
		b.reply(chatID, "🚫 Access denied. Admin privileges required.")
		return
	}

	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		b.reply(chatID, adminHelpMessage)
		return
	}

	switch args[0] {
	case "list":
		b.adminList(chatID)
	case "add":
		if len(args) < 2 {
			b.reply(chatID, "Usage: /admin add <user_id>")
			return
		}
		b.adminAdd(chatID, args[1])
	case "remove":
		if len(args) < 2 {
			b.reply(chatID, "Usage: /admin remove <user_id>")
			return
		}
		b.adminRemove(chatID, args[1])
	case "status":
		b.adminStatus(chatID)
	default:
		b.reply(chatID, adminHelpMessage)
	}
}

func (b *Bot) adminList(chatID int64) {
	ids := b.access.List()
	if len(ids) == 0 {
		b.reply(chatID, "📝 No user restrictions configured. All users can access the bot.")
		return
	}

	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = strconv.FormatInt(id, 10)
	}
	b.reply(chatID, fmt.Sprintf("👥 Allowed Users (%d total):\n\n%s", len(ids), strings.Join(lines, "\n")))
}

func (b *Bot) adminAdd(chatID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		b.reply(chatID, "❌ Invalid user id format")
		return
	}

	if !b.access.Add(id) {
		b.reply(chatID, fmt.Sprintf("ℹ️ User %d is already in the allowed list", id))
		return
	}
	log.Info("Added user to allowed list", "user", id, "admin", chatID)
	b.reply(chatID, fmt.Sprintf("✅ User %d added to allowed list", id))
}

func (b *Bot) adminRemove(chatID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		b.reply(chatID, "❌ Invalid user id format")
		return
	}

	if !b.access.Remove(id) {
		b.reply(chatID, fmt.Sprintf("ℹ️ User %d is not in the allowed list", id))
		return
	}
	log.Info("Removed user from allowed list", "user", id, "admin", chatID)
	b.reply(chatID, fmt.Sprintf("✅ User %d removed from allowed list", id))
}

func (b *Bot) adminStatus(chatID int64) {
	allowed, admins := b.access.Counts()
	dir := "not configured"
	if b.store != nil {
		dir = b.store.Dir()
	}

	b.reply(chatID, fmt.Sprintf(`📊 Bot Status:

👥 Allowed Users: %d
🔧 Admin Users: %d
📁 Storage Path: %s
🤖 Bot Username: @%s`, allowed, admins, dir, b.api.Self.UserName))
}

func (b *Bot) handleDocument(doc *tgbotapi.Document, chatID int64) {
	if b.tooLarge(doc.FileSize) {
		b.replyTooLarge(chatID)
		return
	}
	name := doc.FileName
	if name == "" {
		name = stampedName("document", doc.FileID, "")
	}
	b.saveIncoming(chatID, doc.FileID, name)
}

func (b *Bot) handlePhoto(photo *tgbotapi.PhotoSize, chatID int64) {
	b.saveIncoming(chatID, photo.FileID, stampedName("photo", photo.FileID, ".jpg"))
}

func (b *Bot) handleVideo(video *tgbotapi.Video, chatID int64) {
	if b.tooLarge(video.FileSize) {
		b.replyTooLarge(chatID)
		return
	}
	name := video.FileName
	if name == "" {
		name = stampedName("video", video.FileID, ".mp4")
	}
	b.saveIncoming(chatID, video.FileID, name)
}

func (b *Bot) handleAudio(audio *tgbotapi.Audio, chatID int64) {
	if b.tooLarge(audio.FileSize) {
		b.replyTooLarge(chatID)
		return
	}
	name := audio.FileName
	if name == "" {
		name = stampedName("audio", audio.FileID, ".mp3")
	}
	b.saveIncoming(chatID, audio.FileID, name)
}

func (b *Bot) handleVoice(voice *tgbotapi.Voice, chatID int64) {
	b.saveIncoming(chatID, voice.FileID, stampedName("voice", voice.FileID, ".ogg"))
}

func (b *Bot) handleVideoNote(note *tgbotapi.VideoNote, chatID int64) {
	b.saveIncoming(chatID, note.FileID, stampedName("videonote", note.FileID, ".mp4"))
}

func (b *Bot) handleSticker(sticker *tgbotapi.Sticker, chatID int64) {
	b.saveIncoming(chatID, sticker.FileID, stampedName("sticker", sticker.FileID, ".webp"))
}

func (b *Bot) tooLarge(size int) bool {
	return int64(size) > b.maxFileSize
}

func (b *Bot) replyTooLarge(chatID int64) {
	b.reply(chatID, fmt.Sprintf("File too large. Maximum size is %d MB", b.maxFileSize>>20))
}

// stampedName names a file that arrived without one, unique enough to spot
// in the watch folder.
func stampedName(kind, fileID, ext string) string {
	return fmt.Sprintf("%s_%d_%s%s", kind, time.Now().Unix(), fileID, ext)
}
