package cli

import (
	"fmt"
	"strings"

	"rentdesk/internal/i18n"

	"github.com/spf13/cobra"
)

// I18nCmd 翻译词典命令
func I18nCmd(catalog *i18n.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "i18n",
		Short: "Translation dictionary tools",
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Report missing keys per language",
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			out := cmd.OutOrStdout()

			if err := catalog.Verify(); err != nil {
				return err
			}

			incomplete := 0
			fmt.Fprintf(out, "%-8s  %-6s  %-7s\n", "Language", "Total", "Missing")
			for _, cov := range catalog.Coverage() {
				fmt.Fprintf(out, "%-8s  %-6d  %-7d\n", cov.Language, cov.Total, len(cov.Missing))
				if !cov.Complete() {
					incomplete++
					keys := make([]string, 0, len(cov.Missing))
					for _, k := range cov.Missing {
						keys = append(keys, string(k))
					}
					fmt.Fprintf(out, "          %s\n", strings.Join(keys, ", "))
				}
			}

			if strict && incomplete > 0 {
				return fmt.Errorf("%d language(s) missing keys", incomplete)
			}
			return nil
		},
	}
	check.Flags().Bool("strict", false, "Fail when any language is incomplete")

	cmd.AddCommand(check)
	return cmd
}
