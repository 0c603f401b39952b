// Package snake fills in missing command arguments by prompting on the
// terminal.
package snake

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/category"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("snake: stdin is not a terminal")

// Interactive reports whether cmd reads from a terminal.
func Interactive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PromptName asks for a non-empty item name.
func PromptName(cmd *cobra.Command) (string, error) {
	if !Interactive(cmd) {
		return "", ErrNotInteractive
	}

	prompt := promptui.Prompt{
		Label: "Nome",
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "{{ . | bold }}: ",
		},
		Validate: validateName,
		Stdin:    io.NopCloser(cmd.InOrStdin()),
		Stdout:   nopCloser{cmd.OutOrStdout()},
	}

	name, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// SelectCategory lets the user pick one of the registered categories.
func SelectCategory(cmd *cobra.Command) (category.Key, error) {
	if !Interactive(cmd) {
		return "", ErrNotInteractive
	}

	defs := category.All()
	prompt := promptui.Select{
		HideHelp: true,
		Label:    "Categoria",
		Items:    defs,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "➜  {{ .Label | bold }} {{ .Key | faint }}",
			Inactive: "   {{ .Label }} {{ .Key | faint }}",
			Selected: "{{ .Label | bold }}",
		},
		Size:     len(defs),
		Searcher: searcher(defs),
		Stdin:    io.NopCloser(cmd.InOrStdin()),
		Stdout:   nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return defs[i].Key, nil
}

func validateName(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty")
	}
	return nil
}

// searcher matches input against the key and label, ignoring case and spaces.
func searcher(defs []category.Definition) func(string, int) bool {
	return func(input string, index int) bool {
		d := defs[index]
		haystack := squash(string(d.Key) + d.Label)
		return strings.Contains(haystack, squash(input))
	}
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
