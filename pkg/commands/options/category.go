// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/category"
)

// CategoryOptions captures the category selection flag.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the --category flag with completion over the
// registered keys.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category key, see `shoplist categories`.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// Key returns the parsed category key.
func (o *CategoryOptions) Key() category.Key {
	return category.Parse(o.Category)
}

// CategoryCompletions returns registered keys starting with toComplete.
func CategoryCompletions(toComplete string) []string {
	var out []string
	for _, k := range category.Keys() {
		if strings.HasPrefix(string(k), toComplete) {
			out = append(out, string(k))
		}
	}
	return out
}
