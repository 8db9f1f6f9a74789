package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestShowBanner(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	ShowBanner("1.0.0-test")

	w.Close()
	os.Stdout = old
	out := <-outC

	if !strings.Contains(out, "Terminal News Dashboard") {
		t.Errorf("Expected banner to contain tagline, got: %s", out)
	}
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("Expected banner to contain border characters, got: %s", out)
	}
	if !strings.Contains(out, "◆") {
		t.Errorf("Expected banner to contain separator symbols, got: %s", out)
	}
	if !strings.Contains(out, "v1.0.0-test") {
		t.Errorf("Expected banner to contain version 'v1.0.0-test', got: %s", out)
	}
}

func TestShowBannerDevVersionOmitsTag(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	ShowBanner("dev")

	w.Close()
	os.Stdout = old
	out := <-outC

	if strings.Contains(out, "vdev") {
		t.Errorf("Expected no version tag for dev builds, got: %s", out)
	}
	if !strings.Contains(out, "Terminal News Dashboard") {
		t.Errorf("Expected banner to contain tagline, got: %s", out)
	}
}

func TestGetCompactBanner(t *testing.T) {
	message := "Test message"
	result := GetCompactBanner(message)

	if !strings.Contains(result, message) {
		t.Errorf("Expected compact banner to contain %q, got: %s", message, result)
	}
	if !strings.Contains(result, LogoLines[0]) {
		t.Errorf("Expected compact banner to contain logo elements, got: %s", result)
	}
}

func TestGetWelcomeMessage(t *testing.T) {
	result := GetWelcomeMessage()

	if !strings.Contains(result, "headlines") {
		t.Errorf("Expected welcome message to mention headlines, got: %s", result)
	}
}

func TestLogoConstants(t *testing.T) {
	if len(LogoLines) == 0 {
		t.Error("LogoLines should not be empty")
	}
	for i, line := range LogoLines {
		if line == "" {
			t.Errorf("LogoLines[%d] should not be empty", i)
		}
	}
	if CompactLogo == "" {
		t.Error("CompactLogo should not be empty")
	}
	if len(BannerColors) == 0 {
		t.Error("BannerColors should not be empty")
	}
}
