/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/internal/ui"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/spf13/cobra"
)

var (
	analyzeType     string
	analyzeAudience string
	analyzeUseCase  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [PROMPT|-]",
	Short: "Score a prompt and suggest improvements",
	Long: `Analyze a prompt for structure, clarity and completeness.

The prompt is read from the arguments, or from stdin when the argument is "-"
or when input is piped.`,
	Example: `  langgpt analyze --type structure "You are a helpful assistant."
  cat prompt.md | langgpt analyze --type completeness -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPromptArg(cmd, args)
		if err != nil {
			return err
		}
		req := models.AnalysisRequest{
			Prompt:         prompt,
			AnalysisType:   models.AnalysisType(analyzeType),
			TargetAudience: analyzeAudience,
			UseCase:        analyzeUseCase,
		}
		if err := models.ValidateStruct(req); err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		appLog.Debug("analyzing prompt", "type", analyzeType, "prompt", ui.Truncate(prompt, 60))
		recordRequest(req)
		resp := svc.Analyze(cmd.Context(), req)
		if !resp.Success {
			return fmt.Errorf("analysis failed")
		}

		switch {
		case isJSON():
			return printJSON(cmd.OutOrStdout(), resp)
		case isQuiet():
			a := resp.Analysis
			return printJSON(cmd.OutOrStdout(), map[string]int{
				"structure_score":    a.StructureScore,
				"clarity_score":      a.ClarityScore,
				"completeness_score": a.CompletenessScore,
			})
		}
		printer(cmd).Markdown(mcp.FormatAnalysis(resp))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeType, "type", "t", string(models.AnalysisStructure), "analysis type: structure, effectiveness, improvement or completeness")
	analyzeCmd.Flags().StringVar(&analyzeAudience, "audience", "", "target audience of the prompt")
	analyzeCmd.Flags().StringVar(&analyzeUseCase, "use-case", "", "intended use case")
}
