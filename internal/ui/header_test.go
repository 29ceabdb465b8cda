package ui

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
}

func TestHeader_SetTime(t *testing.T) {
	header := NewHeader()
	header.SetWidth(100)

	ts := time.Date(2025, time.March, 3, 15, 4, 5, 0, time.UTC)
	header.SetTime(ts)

	if header.clock != "Monday, March 03, 2025 03:04:05 PM" {
		t.Errorf("unexpected clock text: %q", header.clock)
	}

	view := header.View()
	if !strings.Contains(view, "Monday") {
		t.Error("header view should contain the formatted clock")
	}
}

func TestHeader_View_ContainsTitle(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)

	view := header.View()
	for _, ch := range []string{"j", "o", "t"} {
		if !strings.Contains(view, ch) {
			t.Errorf("header view should contain title character %q", ch)
		}
	}
}

func TestHeader_View_WideWeatherIconsKeepWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetTime(time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC))
	header.SetWeather("⛅ 72°F Partly cloudy")

	if got := lipgloss.Width(header.View()); got != 80 {
		t.Errorf("header display width = %d, want 80", got)
	}
}

func TestHeader_SetWeather(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetTime(time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC))
	header.SetWeather("☀️ 72°F Clear sky")

	view := header.View()
	if !strings.Contains(view, "72°F") {
		t.Error("header view should contain the weather readout")
	}

	// Clearing the weather removes it
	header.SetWeather("")
	view = header.View()
	if strings.Contains(view, "72°F") {
		t.Error("header view should omit the weather after clearing")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#FFFFFF", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"#CBA6F7", 203, 166, 247},
		{"invalid", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
