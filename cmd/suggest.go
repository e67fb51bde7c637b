package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ideaforge/internal/clix"
	"ideaforge/internal/models"
	"ideaforge/internal/util"
)

var (
	suggestType  string
	suggestInput string
	suggestFile  string
	suggestLimit int
	suggestJSON  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate ranked suggestions for a user",
	Long: `Generates suggestions of one type (content, title, category, improvement,
next_action) from the user context given as flags and an optional draft text.

Example:
  ideaforge suggest --user u1 --type title --platform youtube \
    --input "Tutorial de programação Python para iniciantes"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		kind, err := models.ParseSuggestionType(suggestType)
		if err != nil {
			return err
		}
		uctx, err := clix.ParseUserContext(cmd.Flags())
		if err != nil {
			return err
		}
		minConfidence, err := clix.ParseMinConfidence(cmd.Flags(), "min-confidence")
		if err != nil {
			return err
		}

		input := util.CleanText([]byte(suggestInput), "--input")
		if suggestFile != "" {
			if input, err = util.ReadTextFile(suggestFile); err != nil {
				return err
			}
		}

		suggestions, err := appInstance.SuggestionService.GetSuggestions(cmd.Context(), models.SuggestionRequest{
			Context:        uctx,
			CurrentInput:   input,
			SuggestionType: kind,
			Limit:          suggestLimit,
			MinConfidence:  minConfidence,
		})
		if err != nil {
			return fmt.Errorf("error generating suggestions: %w", err)
		}

		if suggestJSON {
			return writeJSON(cmd.OutOrStdout(), suggestions)
		}
		renderSuggestions(cmd.OutOrStdout(), kind, suggestions)
		return nil
	},
}

func init() {
	f := suggestCmd.Flags()
	f.StringVarP(&suggestType, "type", "t", string(models.SuggestionTypeContent), "Suggestion type: content, title, category, improvement, next_action")
	f.StringVarP(&suggestInput, "input", "i", "", "Current draft text")
	f.StringVar(&suggestFile, "input-file", "", "Read the draft text from a file instead of --input")
	f.IntVarP(&suggestLimit, "limit", "n", 0, "Maximum suggestions to return (0 uses suggestions.default_limit)")
	f.Float64("min-confidence", 0.7, "Minimum confidence (unset uses suggestions.min_confidence)")
	f.BoolVar(&suggestJSON, "json", false, "Print suggestions as JSON")
	clix.AddContextFlags(f)

	rootCmd.AddCommand(suggestCmd)
}
