package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"etfdash/internal/theme"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
	assert.Equal(t, "-1,234", formatNumber(-1234))
}

func TestNumberOr_ZeroFallsBack(t *testing.T) {
	assert.Equal(t, noData, numberOr(0, noData))
	assert.Equal(t, dash, numberOr(0, dash))
	assert.Equal(t, "35,000", numberOr(35000, noData))
}

func TestWonOr(t *testing.T) {
	assert.Equal(t, dash, wonOr(0, dash))
	assert.Equal(t, dash, wonOr(-100, dash))
	assert.Equal(t, "35,000원", wonOr(35000, dash))
}

func TestBillionsOr(t *testing.T) {
	assert.Equal(t, noData, billionsOr(0, noData))
	assert.Equal(t, "12억원", billionsOr(12e8, noData))
	assert.Equal(t, "1,250억원", billionsOr(1250e8, noData))
}

func TestPercent_SignsGainsOnly(t *testing.T) {
	assert.Equal(t, "+3.21%", percent(3.21))
	assert.Equal(t, "-1.50%", percent(-1.5))
	assert.Equal(t, "0.00%", percent(0))
}

func TestPriceColor(t *testing.T) {
	th := theme.Default
	assert.Equal(t, th.Up, priceColor(2.5))
	assert.Equal(t, th.Down, priceColor(-0.1))
	assert.Equal(t, th.Muted, priceColor(0))
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, noData, intOr(0, noData))
	assert.Equal(t, "1,234,567", intOr(1234567, noData))
}

func TestSignedOr(t *testing.T) {
	assert.Equal(t, dash, signedOr(0))
	assert.Equal(t, "+150", signedOr(150))
	assert.Equal(t, "-150", signedOr(-150))
}

func TestTextOr(t *testing.T) {
	assert.Equal(t, noData, textOr("", noData))
	assert.Equal(t, "반도체", textOr("반도체", noData))
}
