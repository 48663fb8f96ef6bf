package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prasetya/naskah/pkg/services"
)

func TestExportTrackerUpdate(t *testing.T) {
	tracker := NewExportTracker(80)

	if tracker.HasActive() {
		t.Error("Expected no active exports initially")
	}

	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "building"})
	if !tracker.HasActive() {
		t.Error("Expected an active export while building")
	}

	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "complete", Path: "/tmp/out.epub"})
	if tracker.HasActive() {
		t.Error("Expected no active exports after completion")
	}
}

func TestExportTrackerView(t *testing.T) {
	tracker := NewExportTracker(80)

	if tracker.View() != "" {
		t.Error("Expected empty view with no exports")
	}

	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "building"})
	if !strings.Contains(tracker.View(), "exporting (building)") {
		t.Errorf("Unexpected view: %q", tracker.View())
	}

	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "complete", Path: "/tmp/out.epub"})
	if !strings.Contains(tracker.View(), "export complete: /tmp/out.epub") {
		t.Errorf("Unexpected view: %q", tracker.View())
	}

	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "error", Error: fmt.Errorf("boom")})
	if !strings.Contains(tracker.View(), "export failed: boom") {
		t.Errorf("Unexpected view: %q", tracker.View())
	}
}

func TestExportTrackerClear(t *testing.T) {
	tracker := NewExportTracker(80)
	tracker.Update(services.ExportProgress{BookID: "b1", Stage: "building"})

	tracker.Clear()
	if tracker.HasActive() || tracker.View() != "" {
		t.Error("Expected tracker to be empty after Clear")
	}
}
