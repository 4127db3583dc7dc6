package tui

import (
	"fmt"
	"path"
	"strings"
	"time"
)

func formatCount(value int) string {
	if value < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}

func formatDimension(value int) string {
	if value <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// variantNameFromURL returns the last path segment of a delivery URL.
func variantNameFromURL(deliveryURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(deliveryURL), "/")
	if trimmed == "" {
		return "-"
	}
	return path.Base(trimmed)
}

func firstNonEmpty(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
