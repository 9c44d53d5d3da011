package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-minimax/pkg/board"
)

func outputOptions(color bool) []termenv.OutputOption {
	if !color {
		return []termenv.OutputOption{termenv.WithProfile(termenv.Ascii)}
	}
	return nil
}

func newOutput(w io.Writer, color bool) *termenv.Output {
	return termenv.NewOutput(w, outputOptions(color)...)
}

// Board with file and rank labels, the last move underlined and a winning line in bold
func renderBoard(out *termenv.Output, b board.Board, last board.Index) string {
	line, won := b.WinningLine()
	onLine := func(i board.Index) bool {
		return won && (line[0] == i || line[1] == i || line[2] == i)
	}

	sb := strings.Builder{}
	sb.WriteString("   a b c\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, " %d", 3-row)
		for col := 0; col < 3; col++ {
			i := board.Index(row*3 + col)
			sb.WriteByte(' ')
			sb.WriteString(renderCell(out, b.Cell(i), i == last, onLine(i)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderCell(out *termenv.Output, s board.Symbol, last, winning bool) string {
	style := out.String(s.String())
	switch s {
	case board.X:
		style = style.Foreground(out.Color("4"))
	case board.O:
		style = style.Foreground(out.Color("1"))
	default:
		style = style.Faint()
	}

	if last {
		style = style.Underline()
	}
	if winning {
		style = style.Bold().Reverse()
	}
	return style.String()
}
