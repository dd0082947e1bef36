package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/theme"
)

// Placeholders for absent data. A zero numeric field renders the same
// as an absent one.
const (
	noData = "정보 없음"
	dash   = "-"
)

// formatNumber renders v with thousand separators. Zero renders "0".
func formatNumber(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)

	n := len(s)
	var result strings.Builder
	if n > 3 {
		offset := n % 3
		if offset > 0 {
			result.WriteString(s[:offset])
		}
		for i := offset; i < n; i += 3 {
			if result.Len() > 0 {
				result.WriteByte(',')
			}
			result.WriteString(s[i : i+3])
		}
		s = result.String()
	}

	if neg {
		return "-" + s
	}
	return s
}

func formatInt(v int64) string {
	return formatNumber(float64(v))
}

// numberOr renders a numeric field, falling back for zero/absent values.
func numberOr(v float64, placeholder string) string {
	if v == 0 {
		return placeholder
	}
	return formatNumber(v)
}

func intOr(v int64, placeholder string) string {
	if v == 0 {
		return placeholder
	}
	return formatInt(v)
}

// wonOr renders a price in won.
func wonOr(v float64, placeholder string) string {
	if v <= 0 {
		return placeholder
	}
	return formatNumber(v) + "원"
}

// billionsOr renders a won amount in 억원.
func billionsOr(v float64, placeholder string) string {
	if v == 0 {
		return placeholder
	}
	return formatNumber(v/1e8) + "억원"
}

// percent renders a change rate with an explicit sign for gains.
func percent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

func percentOr(v float64, placeholder string) string {
	if v == 0 {
		return placeholder
	}
	return percent(v)
}

// priceColor picks the direction color for a change value.
func priceColor(v float64) lipgloss.Color {
	t := theme.Default
	switch {
	case v > 0:
		return t.Up
	case v < 0:
		return t.Down
	default:
		return t.Muted
	}
}
