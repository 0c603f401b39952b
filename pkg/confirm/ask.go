package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Ask resolves the pending request on p from a line typed on in and reports
// whether it was confirmed. With assumeYes the request is confirmed without
// reading. A non-terminal input that is not assumed yes is cancelled so
// scripts never block.
func Ask(p *Prompt, in io.Reader, out io.Writer, assumeYes bool) bool {
	message, ok := p.Pending()
	if !ok {
		return false
	}
	if assumeYes {
		p.Confirm()
		return true
	}
	if f, isFile := in.(*os.File); isFile && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		_, _ = fmt.Fprintf(out, "%s (use --yes to confirm non-interactively)\n", message)
		p.Cancel()
		return false
	}

	q := color.New(color.Bold)
	_, _ = q.Fprintf(out, "%s [s/N] ", message)
	line, _ := bufio.NewReader(in).ReadString('\n')
	if IsYes(line) {
		p.Confirm()
		return true
	}
	p.Cancel()
	return false
}

// IsYes accepts English and Portuguese affirmative answers.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
