package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pickerMaxW = 64
	pickerMaxH = 16
	dialogMaxW = 64
)

func placeCentered(fullW, fullH int, box string) string {
	box = strings.TrimRight(box, "\n")
	if fullW <= 0 || fullH <= 0 {
		return box
	}
	return lipgloss.Place(fullW, fullH, lipgloss.Center, lipgloss.Center, box)
}

// fitModal sizes one dimension of a modal: full minus margin, capped at
// maxV, never larger than full. An unknown full (<= 0) yields maxV.
func fitModal(full, maxV, margin int) int {
	if full <= 0 {
		return maxV
	}
	v := full - margin
	if maxV > 0 {
		v = min(v, maxV)
	}
	if v <= 0 || v > full {
		return full
	}
	return v
}

func pickerModalSize(fullW, fullH int) (w, h int) {
	w = fitModal(fullW, pickerMaxW, 6)
	h = fitModal(fullH, pickerMaxH, 6)
	if fullH > 0 && h < 10 {
		h = fullH
	}
	return w, h
}

// dialogWidth is the outer width of an info or confirm box.
func dialogWidth(fullW int) int {
	return max(24, fitModal(fullW, dialogMaxW, 4))
}
