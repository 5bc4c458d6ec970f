package bot

import (
	"fmt"
	"strings"

	"github.com/xaenox/memo-notes/internal/models"
)

// escapeMarkdown escapes the characters MarkdownV2 treats as markup.
func escapeMarkdown(text string) string {
	specialChars := []string{"\\", "_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func hashtag(name string) string {
	return escapeMarkdown("#" + strings.ReplaceAll(name, " ", "_"))
}

func categoryNames(categories []models.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

func formatNoteLine(i int, note models.Note, categories map[string]string) string {
	line := fmt.Sprintf("%d\\. ", i+1)
	if note.Starred {
		line += "⭐ "
	}
	line += "*" + escapeMarkdown(note.Title) + "*"
	if name, ok := categories[note.CategoryID]; ok {
		line += " " + hashtag(name)
	}
	return line
}

func formatNoteList(header string, notes []models.Note, categories map[string]string) string {
	var sb strings.Builder
	sb.WriteString("*" + escapeMarkdown(header) + "*\n")
	for i, note := range notes {
		sb.WriteString(formatNoteLine(i, note, categories))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatNote(note models.Note, categories map[string]string) string {
	text := "*" + escapeMarkdown(note.Title) + "*\n"
	text += escapeMarkdown(note.Content) + "\n"
	if name, ok := categories[note.CategoryID]; ok {
		text += "\n*Category:* " + hashtag(name)
	}
	if note.Starred {
		text += "\n⭐ starred"
	}
	return text
}

func formatChecklist(i int, c models.Checklist) string {
	done, total := c.Progress()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d\\. *%s* \\(%d/%d\\)\n", i+1, escapeMarkdown(c.Title), done, total))
	for j, item := range c.Items {
		box := "☐"
		if item.IsChecked {
			box = "☑"
		}
		sb.WriteString(fmt.Sprintf("    %s %d\\. %s\n", box, j+1, escapeMarkdown(item.Text)))
	}
	return sb.String()
}

// splitNote turns a chat message into a title and content: the first line
// is the title and the rest the content. A one-line message is used for both.
func splitNote(text string) (string, string) {
	text = strings.TrimSpace(text)
	title, content, found := strings.Cut(text, "\n")
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if !found || content == "" {
		return title, title
	}
	return title, content
}
