/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/spf13/cobra"
)

var (
	optGoals       []string
	optConstraints []string
	optTarget      int
	optFormal      bool
	optCasual      bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [PROMPT|-]",
	Short: "Rewrite a prompt toward clarity, conciseness or structure",
	Example: `  langgpt optimize --goal clarity --goal conciseness "Please help me write good code."
  langgpt optimize --goal structure --target-length 80 - < prompt.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPromptArg(cmd, args)
		if err != nil {
			return err
		}
		req := models.OptimizationRequest{
			OriginalPrompt:    prompt,
			OptimizationGoals: optGoals,
			Constraints:       optConstraints,
			TargetLength:      optTarget,
		}
		if optFormal || optCasual {
			req.StylePreferences = &models.StylePreferences{Formal: optFormal, Casual: optCasual}
		}
		if err := models.ValidateStruct(req); err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		recordRequest(req)
		resp := svc.Optimize(cmd.Context(), req)
		if !resp.Success {
			return fmt.Errorf("optimization failed")
		}

		switch {
		case isJSON():
			return printJSON(cmd.OutOrStdout(), resp)
		case isQuiet():
			fmt.Fprintln(cmd.OutOrStdout(), resp.OptimizedPrompt)
			return nil
		}
		printer(cmd).Markdown(mcp.FormatOptimization(resp))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optimizeCmd)

	f := optimizeCmd.Flags()
	f.StringSliceVarP(&optGoals, "goal", "g", nil, "optimization goal: clarity, conciseness or structure (repeatable)")
	f.StringArrayVar(&optConstraints, "constraint", nil, "constraint to maintain (repeatable)")
	f.IntVar(&optTarget, "target-length", 0, "target length in words")
	f.BoolVar(&optFormal, "formal", false, "expand contractions")
	f.BoolVar(&optCasual, "casual", false, "use contractions")
	_ = optimizeCmd.MarkFlagRequired("goal")
}
