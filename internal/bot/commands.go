package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/notebook"
)

const welcome = `Welcome to MemoNotes! 📝
Send me any text and I'll keep it as a note: the first line becomes the title.

Use /help to see all available commands.`

const help = `Available commands:
/notes - List your notes
/note N - Show note N
/search TEXT - Search titles and contents
/star N - Star or unstar note N
/favorites - List starred notes
/trash N - Move note N to the trash
/bin - List the trash
/restore N - Restore entry N from the trash
/emptybin - Delete everything in the trash
/categories - List your categories
/category NAME - List the notes and checklists in a category
/newcategory NAME - Create a category
/file N NAME - File note N under category NAME ("-" clears it)
/checklists - List your checklists
/checklist TITLE - Create a checklist
/additem N TEXT - Add an item to checklist N
/check N M - Tick or untick item M of checklist N

Notes are numbered as in the last /notes listing.`

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	nb := b.notebookFor(message.From.ID)
	args := strings.TrimSpace(message.CommandArguments())
	chatID := message.Chat.ID

	var err error
	switch message.Command() {
	case "start":
		b.sendMessage(chatID, welcome)
	case "help":
		b.sendMessage(chatID, help)
	case "notes":
		err = b.handleNotes(ctx, nb, chatID)
	case "note":
		err = b.handleShowNote(ctx, nb, chatID, args)
	case "search":
		err = b.handleSearch(ctx, nb, chatID, args)
	case "star":
		err = b.handleStar(ctx, nb, chatID, args)
	case "favorites":
		err = b.handleFavorites(ctx, nb, chatID)
	case "trash":
		err = b.handleTrash(ctx, nb, chatID, args)
	case "bin":
		err = b.handleBin(ctx, nb, chatID)
	case "restore":
		err = b.handleRestore(ctx, nb, chatID, args)
	case "emptybin":
		err = nb.EmptyTrash(ctx)
		if err == nil {
			b.sendMessage(chatID, "🗑 Trash emptied.")
		}
	case "categories":
		err = b.handleCategories(ctx, nb, chatID)
	case "category":
		err = b.handleCategoryContents(ctx, nb, chatID, args)
	case "newcategory":
		err = b.handleNewCategory(ctx, nb, chatID, args)
	case "file":
		err = b.handleFile(ctx, nb, chatID, args)
	case "checklists":
		err = b.handleChecklists(ctx, nb, chatID)
	case "checklist":
		err = b.handleNewChecklist(ctx, nb, chatID, args)
	case "additem":
		err = b.handleAddItem(ctx, nb, chatID, args)
	case "check":
		err = b.handleCheck(ctx, nb, chatID, args)
	default:
		b.sendMessage(chatID, "Unknown command. Use /help to see available commands.")
	}

	if err != nil {
		b.replyError(message, err)
	}
}

func (b *Bot) replyError(message *tgbotapi.Message, err error) {
	switch {
	case errors.Is(err, errUsage):
		b.sendErrorMessage(message.Chat.ID, err.Error())
	case errors.Is(err, notebook.ErrNotFound):
		b.sendErrorMessage(message.Chat.ID, "I couldn't find that. Check the number with /notes.")
	case notebook.IsValidation(err), errors.Is(err, notebook.ErrConflict):
		b.sendErrorMessage(message.Chat.ID, capitalize(err.Error())+".")
	default:
		b.logger.Error("Failed to handle command",
			zap.Error(err),
			zap.String("command", message.Command()),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, something went wrong. Please try again.")
	}
}

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// pick resolves a 1-based position or a literal id against a listing. A
// number outside the listing is tried as an id, since imported notes carry
// numeric timestamp ids.
func pick[T any](items []T, arg string, id func(T) string) (T, error) {
	var zero T
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	for _, item := range items {
		if id(item) == arg {
			return item, nil
		}
	}
	return zero, fmt.Errorf("%q: %w", arg, notebook.ErrNotFound)
}

func noteID(n models.Note) string           { return n.ID }
func trashedID(t models.TrashedNote) string { return t.ID }
func checklistID(c models.Checklist) string { return c.ID }
func itemID(i models.ChecklistItem) string  { return i.ID }

func (b *Bot) pickNote(ctx context.Context, nb *notebook.Notebook, arg string) (models.Note, error) {
	if arg == "" {
		return models.Note{}, usage("give the note number, e.g. /star 2")
	}
	notes, err := nb.ListNotes(ctx)
	if err != nil {
		return models.Note{}, err
	}
	return pick(notes, arg, noteID)
}

func (b *Bot) categoriesByID(ctx context.Context, nb *notebook.Notebook) (map[string]string, error) {
	categories, err := nb.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return categoryNames(categories), nil
}

func (b *Bot) handleNewNote(ctx context.Context, message *tgbotapi.Message, content string) {
	nb := b.notebookFor(message.From.ID)
	title, body := splitNote(content)

	categoryID := b.suggestCategory(ctx, nb, content)
	note, err := nb.CreateNote(ctx, notebook.NoteInput{Title: title, Content: body, CategoryID: categoryID})
	if err != nil {
		b.logger.Error("Failed to save note",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't save your note. Please try again.")
		return
	}

	names, err := b.categoriesByID(ctx, nb)
	if err != nil {
		names = map[string]string{}
	}
	text := "*Saved:* " + escapeMarkdown(note.Title)
	if name, ok := names[note.CategoryID]; ok {
		text += "\n*Category:* " + hashtag(name)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send confirmation",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

// suggestCategory asks the classifier for one of the user's categories and
// returns its id, or "" when disabled or nothing fits.
func (b *Bot) suggestCategory(ctx context.Context, nb *notebook.Notebook, content string) string {
	if b.classifier == nil {
		return ""
	}
	categories, err := nb.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		return ""
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	suggested := b.classifier.SuggestCategory(ctx, content, names)
	for _, c := range categories {
		if c.Name == suggested {
			return c.ID
		}
	}
	return ""
}

func (b *Bot) handleNotes(ctx context.Context, nb *notebook.Notebook, chatID int64) error {
	notes, err := nb.ListNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		b.sendMessage(chatID, "You don't have any notes yet.")
		return nil
	}
	names, err := b.categoriesByID(ctx, nb)
	if err != nil {
		return err
	}
	b.sendMarkdown(chatID, formatNoteList("Your notes:", notes, names))
	return nil
}

func (b *Bot) handleShowNote(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	note, err := b.pickNote(ctx, nb, args)
	if err != nil {
		return err
	}
	names, err := b.categoriesByID(ctx, nb)
	if err != nil {
		return err
	}
	b.sendMarkdown(chatID, formatNote(note, names))
	return nil
}

func (b *Bot) handleSearch(ctx context.Context, nb *notebook.Notebook, chatID int64, query string) error {
	if query == "" {
		return usage("tell me what to look for, e.g. /search milk")
	}
	notes, err := nb.SearchNotes(ctx, query)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		b.sendMessage(chatID, "No notes match your search.")
		return nil
	}
	names, err := b.categoriesByID(ctx, nb)
	if err != nil {
		return err
	}
	b.sendMarkdown(chatID, formatNoteList("Matching notes:", notes, names))
	return nil
}

func (b *Bot) handleStar(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	note, err := b.pickNote(ctx, nb, args)
	if err != nil {
		return err
	}
	note, err = nb.ToggleNoteStar(ctx, note.ID)
	if err != nil {
		return err
	}
	if note.Starred {
		b.sendMessage(chatID, "⭐ Starred "+note.Title)
	} else {
		b.sendMessage(chatID, "Unstarred "+note.Title)
	}
	return nil
}

func (b *Bot) handleFavorites(ctx context.Context, nb *notebook.Notebook, chatID int64) error {
	notes, err := nb.FavoriteNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		b.sendMessage(chatID, "You don't have any favorites yet.")
		return nil
	}
	names, err := b.categoriesByID(ctx, nb)
	if err != nil {
		return err
	}
	b.sendMarkdown(chatID, formatNoteList("Your favorites:", notes, names))
	return nil
}

func (b *Bot) handleTrash(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	note, err := b.pickNote(ctx, nb, args)
	if err != nil {
		return err
	}
	if _, err := nb.MoveToTrash(ctx, note.ID); err != nil {
		return err
	}
	b.sendMessage(chatID, "🗑 Moved "+note.Title+" to the trash. Use /bin to see it.")
	return nil
}

func (b *Bot) handleBin(ctx context.Context, nb *notebook.Notebook, chatID int64) error {
	trash, err := nb.TrashedNotes(ctx)
	if err != nil {
		return err
	}
	if len(trash) == 0 {
		b.sendMessage(chatID, "The trash is empty.")
		return nil
	}
	var sb strings.Builder
	sb.WriteString("*Trash:*\n")
	for i, t := range trash {
		sb.WriteString(fmt.Sprintf("%d\\. %s _%s_\n", i+1,
			escapeMarkdown(t.Title), escapeMarkdown(t.DeletedAt.Format("2006-01-02"))))
	}
	b.sendMarkdown(chatID, sb.String())
	return nil
}

func (b *Bot) handleRestore(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	if args == "" {
		return usage("give the trash number, e.g. /restore 1")
	}
	trash, err := nb.TrashedNotes(ctx)
	if err != nil {
		return err
	}
	entry, err := pick(trash, args, trashedID)
	if err != nil {
		return err
	}
	note, err := nb.RestoreFromTrash(ctx, entry.ID)
	if err != nil {
		return err
	}
	b.sendMessage(chatID, "♻️ Restored "+note.Title)
	return nil
}

func (b *Bot) handleCategories(ctx context.Context, nb *notebook.Notebook, chatID int64) error {
	categories, err := nb.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		b.sendMessage(chatID, "You don't have any categories yet. Create one with /newcategory NAME.")
		return nil
	}

	response := "*Your categories:*\n"
	for _, category := range categories {
		response += hashtag(category.Name) + "\n"
	}
	b.sendMarkdown(chatID, response)
	return nil
}

func (b *Bot) handleCategoryContents(ctx context.Context, nb *notebook.Notebook, chatID int64, name string) error {
	if name == "" {
		return usage("give the category name, e.g. /category Work")
	}
	category, err := findCategoryByName(ctx, nb, name)
	if err != nil {
		return err
	}
	notes, err := nb.NotesInCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	checklists, err := nb.ChecklistsInCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if len(notes) == 0 && len(checklists) == 0 {
		b.sendMessage(chatID, "Nothing is filed under "+category.Name+" yet.")
		return nil
	}

	names := map[string]string{category.ID: category.Name}
	var sb strings.Builder
	if len(notes) > 0 {
		sb.WriteString(formatNoteList(category.Name+":", notes, names))
	}
	if len(checklists) > 0 {
		if len(notes) > 0 {
			sb.WriteString("\n")
		}
		for i, c := range checklists {
			sb.WriteString(formatChecklist(i, c))
		}
	}
	b.sendMarkdown(chatID, sb.String())
	return nil
}

func findCategoryByName(ctx context.Context, nb *notebook.Notebook, name string) (models.Category, error) {
	categories, err := nb.ListCategories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("category %q: %w", name, notebook.ErrNotFound)
}

func (b *Bot) handleNewCategory(ctx context.Context, nb *notebook.Notebook, chatID int64, name string) error {
	category, err := nb.AddCategory(ctx, name)
	if err != nil {
		return err
	}
	b.sendMessage(chatID, "Created category "+category.Name)
	return nil
}

func (b *Bot) handleFile(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	position, name, _ := strings.Cut(args, " ")
	name = strings.TrimSpace(name)
	if position == "" || name == "" {
		return usage("e.g. /file 2 Work")
	}
	note, err := b.pickNote(ctx, nb, position)
	if err != nil {
		return err
	}

	categoryID := ""
	if name != "-" {
		category, err := findCategoryByName(ctx, nb, name)
		if err != nil {
			return err
		}
		categoryID = category.ID
	}

	if _, err := nb.SetNoteCategory(ctx, note.ID, categoryID); err != nil {
		return err
	}
	if categoryID == "" {
		b.sendMessage(chatID, "Removed the category from "+note.Title)
	} else {
		b.sendMessage(chatID, "Filed "+note.Title+" under "+name)
	}
	return nil
}

func (b *Bot) handleChecklists(ctx context.Context, nb *notebook.Notebook, chatID int64) error {
	checklists, err := nb.ListChecklists(ctx)
	if err != nil {
		return err
	}
	if len(checklists) == 0 {
		b.sendMessage(chatID, "You don't have any checklists yet.")
		return nil
	}
	var sb strings.Builder
	for i, c := range checklists {
		sb.WriteString(formatChecklist(i, c))
	}
	b.sendMarkdown(chatID, sb.String())
	return nil
}

func (b *Bot) handleNewChecklist(ctx context.Context, nb *notebook.Notebook, chatID int64, title string) error {
	checklist, err := nb.CreateChecklist(ctx, title)
	if err != nil {
		return err
	}
	b.sendMessage(chatID, "Created checklist "+checklist.Title)
	return nil
}

func (b *Bot) handleAddItem(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	position, text, _ := strings.Cut(args, " ")
	if position == "" || strings.TrimSpace(text) == "" {
		return usage("e.g. /additem 1 milk")
	}
	checklists, err := nb.ListChecklists(ctx)
	if err != nil {
		return err
	}
	checklist, err := pick(checklists, position, checklistID)
	if err != nil {
		return err
	}
	item, err := nb.AddChecklistItem(ctx, checklist.ID, text)
	if err != nil {
		return err
	}
	b.sendMessage(chatID, "Added "+item.Text+" to "+checklist.Title)
	return nil
}

func (b *Bot) handleCheck(ctx context.Context, nb *notebook.Notebook, chatID int64, args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return usage("e.g. /check 1 2")
	}
	checklists, err := nb.ListChecklists(ctx)
	if err != nil {
		return err
	}
	checklist, err := pick(checklists, fields[0], checklistID)
	if err != nil {
		return err
	}
	item, err := pick(checklist.Items, fields[1], itemID)
	if err != nil {
		return err
	}
	item, err = nb.ToggleChecklistItem(ctx, checklist.ID, item.ID)
	if err != nil {
		return err
	}
	if item.IsChecked {
		b.sendMessage(chatID, "☑ "+item.Text)
	} else {
		b.sendMessage(chatID, "☐ "+item.Text)
	}
	return nil
}
