package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyUser  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View suggestions served to a user",
	Long:  `Lists the suggestion batches recorded for a user, oldest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		entries, err := appInstance.SuggestionService.History(cmd.Context(), historyUser)
		if err != nil {
			return fmt.Errorf("error listing suggestion history: %w", err)
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[len(entries)-historyLimit:]
		}

		renderHistory(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyUser, "user", "", "User id (required)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Show only the newest N batches (0 shows all)")
	_ = historyCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(historyCmd)
}
