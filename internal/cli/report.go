package cli

import (
	"fmt"
	"os"

	"rentdesk/internal/reports"
	"rentdesk/internal/store"
	"rentdesk/internal/views"

	"github.com/spf13/cobra"
)

// ReportCmd 报表命令
func ReportCmd(state func() store.State, opts views.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report utilities",
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the reports workbook (xlsx) for the sample dataset",
		Long:  "Builds the workbook from the seeded sample data. Live server data is exported by GET /api/v1/reports/export.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("创建文件失败: %w", err)
			}
			if err := reports.Export(f, state(), opts); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	export.Flags().String("out", "reports.xlsx", "Output file")

	cmd.AddCommand(export)
	return cmd
}
