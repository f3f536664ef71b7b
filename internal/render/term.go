package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

const terminalWidthBackup = 80

// terminalWidth reports the width of w when it is an interactive terminal.
func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminalWidthBackup, true
	}
	return width, true
}
