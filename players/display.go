package players

import (
	"fmt"
	"io"
	"strings"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// HandText lists the player's cards, one per line, with their total value.
func HandText(p *Player) string {
	hand := p.Hand()
	if len(hand) == 0 {
		return fmt.Sprintf("%s has no cards left 🎉\n", p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is holding %d cards worth %d points:\n", p.Name, len(hand), p.HandValue())
	for _, card := range hand {
		b.WriteString("- " + card.String() + "\n")
	}
	return b.String()
}
