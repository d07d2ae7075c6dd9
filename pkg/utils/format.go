package utils

import "fmt"

const (
	ArrowUp   = "▲"
	ArrowDown = "▼"

	markerUp   = "🟢"
	markerDown = "🔴"
)

// FormatMarketCap scales a market capitalization into trillions, billions
// or millions. Values below a million render as plain dollars.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= 1e12:
		return fmt.Sprintf("$%.2fT", cap/1e12)
	case cap >= 1e9:
		return fmt.Sprintf("$%.2fB", cap/1e9)
	case cap >= 1e6:
		return fmt.Sprintf("$%.2fM", cap/1e6)
	default:
		return fmt.Sprintf("$%.2f", cap)
	}
}

// FormatVolume scales a trading volume into millions or thousands. This
// ladder is coarser than the market-cap one and the two stay separate.
func FormatVolume(volume float64) string {
	switch {
	case volume >= 1e6:
		return fmt.Sprintf("%.2fM", volume/1e6)
	case volume >= 1e3:
		return fmt.Sprintf("%.2fK", volume/1e3)
	default:
		return fmt.Sprintf("%.2f", volume)
	}
}

// ChangeArrow returns the direction arrow for a change value. Zero counts
// as up.
func ChangeArrow(change float64) string {
	if change < 0 {
		return ArrowDown
	}
	return ArrowUp
}

// ChangeColor returns the embed color for a change value. Zero counts as
// up.
func ChangeColor(change float64) int {
	if change < 0 {
		return ColorRed
	}
	return ColorGreen
}

// FormatChange renders a change value and its percentage with a colored
// marker and direction arrow, e.g. "🟢 +1000.00 (+2.04%) ▲".
func FormatChange(change, percent float64) string {
	marker := markerUp
	if change < 0 {
		marker = markerDown
	}
	return fmt.Sprintf("%s %+.2f (%+.2f%%) %s", marker, change, percent, ChangeArrow(change))
}
