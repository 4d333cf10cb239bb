package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/vocab-builder/internal/domain"
	"github.com/heartmarshall/vocab-builder/internal/service/workspace"
)

// prompter reads answers line by line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints prompt and returns the trimmed reply. ok is false at end of
// input.
func (p *prompter) ask(format string, args ...any) (reply string, ok bool) {
	fmt.Fprintf(p.out, format, args...)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// side is one language of the workspace as shown to the user.
type side struct {
	code string
	name string
}

// sides returns the language a prompt starts from and the one it asks
// for. to-from starts from the language being learned.
func sides(ws *workspace.Workspace, order domain.WordOrder) (first, second side) {
	from := side{code: ws.Meta.ValLangID, name: ws.Meta.ValLangName}
	to := side{code: ws.Meta.KeyLangID, name: ws.Meta.KeyLangName}
	if order == domain.WordOrderToFrom {
		return to, from
	}
	return from, to
}
