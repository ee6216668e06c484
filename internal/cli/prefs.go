package cli

import (
	"context"
	"fmt"

	"rentdesk/internal/i18n"
	"rentdesk/internal/preferences"
	"rentdesk/pkg/kvstore"

	"github.com/spf13/cobra"
)

// StorageOpener 打开偏好存储，返回释放函数
type StorageOpener func(ctx context.Context) (kvstore.Store, func(), error)

func loadPreferences(cmd *cobra.Command, open StorageOpener) (*preferences.Store, func(), error) {
	storage, release, err := open(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("打开偏好存储失败: %w", err)
	}
	prefs := preferences.NewStore(storage, preferences.WithCatalog(i18n.Default()))
	prefs.Load(cmd.Context())
	return prefs, release, nil
}

// PrefsCmd 偏好设置命令
func PrefsCmd(open StorageOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect or change stored preferences",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print dark mode and language",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, release, err := loadPreferences(cmd, open)
				if err != nil {
					return err
				}
				defer release()

				st := prefs.State()
				fmt.Fprintf(cmd.OutOrStdout(), "darkMode: %t\nlanguage: %s\n", st.DarkMode, st.Language)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set-language <code>",
			Short: "Store the UI language",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, release, err := loadPreferences(cmd, open)
				if err != nil {
					return err
				}
				defer release()

				if !prefs.Catalog().HasLanguage(args[0]) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: no dictionary for %q, English will be shown\n", args[0])
				}
				prefs.SetLanguage(cmd.Context(), args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "language: %s\n", prefs.State().Language)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle-dark",
			Short: "Flip dark mode",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, release, err := loadPreferences(cmd, open)
				if err != nil {
					return err
				}
				defer release()

				dark := prefs.ToggleDarkMode(cmd.Context())
				fmt.Fprintf(cmd.OutOrStdout(), "darkMode: %t\n", dark)
				return nil
			},
		},
	)

	return cmd
}
