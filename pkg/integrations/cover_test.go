package integrations

import (
	"image"
	"os"
	"strings"
	"testing"
)

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		w, h, maxW, maxH     int
		expectedW, expectedH int
	}{
		{"wide image limited by width", 3200, 1200, 1600, 2400, 1600, 600},
		{"tall image limited by height", 1200, 4800, 1600, 2400, 600, 2400},
		{"square into portrait bounds", 3200, 3200, 1600, 2400, 1600, 1600},
		{"tiny image scales up", 10, 10, 100, 100, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitDimensions(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("fitDimensions(%d, %d) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, w, h, tt.expectedW, tt.expectedH)
			}
		})
	}
}

func TestFitCoverSmallImagePassesThrough(t *testing.T) {
	path := createTestImage(t, t.TempDir(), "small.png", 400, 600)

	fitted, err := FitCover(path, coverMaxWidth, coverMaxHeight)
	if err != nil {
		t.Fatalf("Failed to fit cover: %v", err)
	}
	if fitted != path {
		t.Errorf("Expected original path back, got %s", fitted)
	}
}

func TestFitCoverResizesLargeImage(t *testing.T) {
	path := createTestImage(t, t.TempDir(), "large.png", 2000, 3000)

	fitted, err := FitCover(path, coverMaxWidth, coverMaxHeight)
	if err != nil {
		t.Fatalf("Failed to fit cover: %v", err)
	}
	if fitted == path {
		t.Fatal("Expected a resized copy, got the original path")
	}
	defer os.Remove(fitted)

	if !strings.HasSuffix(fitted, ".png") {
		t.Errorf("Expected png output for png input, got %s", fitted)
	}

	f, err := os.Open(fitted)
	if err != nil {
		t.Fatalf("Failed to open resized cover: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode resized cover: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > coverMaxWidth || bounds.Dy() > coverMaxHeight {
		t.Errorf("Resized cover %dx%d exceeds bounds", bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() != 1600 || bounds.Dy() != 2400 {
		t.Errorf("Expected 1600x2400, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestFitCoverRejectsNonImage(t *testing.T) {
	if _, err := FitCover("cover.pdf", coverMaxWidth, coverMaxHeight); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFitCoverMissingFile(t *testing.T) {
	if _, err := FitCover("/nonexistent/cover.png", coverMaxWidth, coverMaxHeight); err == nil {
		t.Error("Expected error for missing file")
	}
}
