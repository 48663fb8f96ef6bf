package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prasetya/naskah/pkg/app/styles"
	"github.com/prasetya/naskah/pkg/data"
)

// ChapterList renders the manuscript outline: every chapter in segment order
// with its estimated page number and subchapters.
type ChapterList struct {
	Items         []data.Chapter
	SelectedIndex int
	Width         int
	Height        int
}

func NewChapterList() *ChapterList {
	return &ChapterList{
		Items:  []data.Chapter{},
		Width:  80,
		Height: 20,
	}
}

func (c *ChapterList) SetItems(items []data.Chapter) {
	c.Items = items
	if c.SelectedIndex >= len(items) && len(items) > 0 {
		c.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		c.SelectedIndex = 0
	}
}

func (c *ChapterList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Items) {
		c.SelectedIndex = 0
	}
}

func (c *ChapterList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

func (c *ChapterList) Selected() *data.Chapter {
	if len(c.Items) == 0 || c.SelectedIndex >= len(c.Items) {
		return nil
	}
	return &c.Items[c.SelectedIndex]
}

func (c *ChapterList) View() string {
	if len(c.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No chapters yet. Press 'a' to add one.")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, chapter := range c.Items {
		cardStyle := styles.CardStyle
		if i == c.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		badge := styles.SegmentStyle(chapter.Type).Render(string(chapter.Type))

		name := chapter.Title
		if chapter.Type == data.TypeChapter {
			name = fmt.Sprintf("Bab %d: %s", chapter.PageNumber, chapter.Title)
		}
		title := styles.TextStyle.Render(name)

		page := styles.PageStyle.Render(fmt.Sprintf("p.%d", chapter.PageNumber))

		headline := lipgloss.JoinHorizontal(lipgloss.Top, badge, "  ", title, "  ", page)

		lines := []string{headline}
		for _, sub := range chapter.SubChapters {
			lines = append(lines, styles.MutedStyle.Render(
				fmt.Sprintf("  %s  p.%d", truncate(sub.Title, c.Width-16), sub.PageNumber),
			))
		}

		card := cardStyle.Width(c.Width - 4).Render(strings.Join(lines, "\n"))
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
