package components

import (
	"fmt"
	"strings"

	"github.com/prasetya/naskah/pkg/app/styles"
	"github.com/prasetya/naskah/pkg/services"
)

// ExportTracker shows the state of running exports in the status area.
type ExportTracker struct {
	exports map[string]*services.ExportProgress
	width   int
}

func NewExportTracker(width int) *ExportTracker {
	return &ExportTracker{
		exports: make(map[string]*services.ExportProgress),
		width:   width,
	}
}

func (t *ExportTracker) Update(progress services.ExportProgress) {
	prog := progress // Copy
	t.exports[progress.BookID] = &prog
}

func (t *ExportTracker) Clear() {
	t.exports = make(map[string]*services.ExportProgress)
}

func (t *ExportTracker) HasActive() bool {
	for _, p := range t.exports {
		if p.Stage != "complete" && p.Stage != "error" {
			return true
		}
	}
	return false
}

func (t *ExportTracker) View() string {
	if len(t.exports) == 0 {
		return ""
	}

	var b strings.Builder
	for _, progress := range t.exports {
		stageStyle := styles.StageStyle(progress.Stage)

		line := progress.Stage
		switch progress.Stage {
		case "complete":
			line = fmt.Sprintf("export complete: %s", progress.Path)
		case "error":
			line = fmt.Sprintf("export failed: %s", progress.Error)
		default:
			line = fmt.Sprintf("exporting (%s)...", progress.Stage)
		}

		b.WriteString(stageStyle.Render(truncate(line, t.width-2)))
		b.WriteString("\n")
	}

	return b.String()
}
