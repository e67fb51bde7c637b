package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ideaforge/internal/util"
)

var (
	analyzeJSON bool
	analyzeFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Show the content analysis for a text",
	Long:  `Prints sentiment, keywords, topics and scores for the given text, or for stdin when no text or --file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		text, err := readAnalyzeText(cmd.InOrStdin(), analyzeFile, args)
		if err != nil {
			return err
		}

		analysis := appInstance.SuggestionService.Analyze(text)
		if analyzeJSON {
			return writeJSON(cmd.OutOrStdout(), analysis)
		}
		renderAnalysis(cmd.OutOrStdout(), analysis)
		return nil
	},
}

// readAnalyzeText takes the text from file, args or in, in that order, and
// cleans it the same way whichever source it came from.
func readAnalyzeText(in io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "":
		return util.ReadTextFile(file)
	case len(args) > 0:
		return util.CleanText([]byte(strings.Join(args, " ")), "args"), nil
	default:
		raw, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return util.CleanText(raw, "stdin"), nil
	}
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Read the text from a file")
	rootCmd.AddCommand(analyzeCmd)
}
