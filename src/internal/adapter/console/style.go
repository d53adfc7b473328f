package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type style struct {
	color bool
}

// detectStyle enables colour only for a real terminal and only when NO_COLOR is unset.
func detectStyle(w io.Writer) style {
	if os.Getenv("NO_COLOR") != "" {
		return style{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return style{}
	}
	return style{color: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}
}

func (s style) ansi(code, text string) string {
	if !s.color {
		return text
	}
	return "\033[" + code + "m" + text + "\033[0m"
}

func (s style) failure(text string) string { return s.ansi("31", text) }

func (s style) success(text string) string { return s.ansi("32", text) }

func (s style) heading(text string) string { return s.ansi("1", text) }
