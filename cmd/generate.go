/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/internal/ui"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// isInteractive is swapped out by tests.
var isInteractive = ui.IsInteractive

var (
	genReq         models.GenerationRequest
	genLevel       string
	genOut         string
	genInteractive bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a LangGPT role prompt",
	Long: `Generate a structured LangGPT role document for a role type, domain and task.

Domains that match the built-in catalog (programming, writing, data,
research) start from the predefined role; anything else is synthesized.

When required flags are missing and the terminal is interactive, a form asks
for them.`,
	Example: `  langgpt generate --role-type assistant --domain programming --task "review Go code"
  langgpt generate --role-type tutor --domain cooking --task "teach knife skills" --level beginner --examples
  langgpt generate -i`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := genReq
		req.ExpertiseLevel = models.ExpertiseLevel(genLevel)

		missing := req.RoleType == "" || req.Domain == "" || req.SpecificTask == ""
		if genInteractive || (missing && isInteractive() && !isJSON()) {
			filled, err := ui.PromptGenerationRequest(req)
			if err != nil {
				if errors.Is(err, ui.ErrFormCancelled) {
					return nil
				}
				return err
			}
			req = filled
		}
		if err := models.ValidateStruct(req); err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		recordRequest(req)
		resp := svc.Generate(cmd.Context(), req)
		if !resp.Success {
			return fmt.Errorf("generation failed for %s/%s", req.RoleType, req.Domain)
		}

		if genOut != "" {
			if err := writeTemplate(genOut, resp.Template); err != nil {
				return err
			}
			appLog.Debug("template written", "path", genOut)
		}

		switch {
		case isJSON():
			return printJSON(cmd.OutOrStdout(), resp)
		case isQuiet():
			if genOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Template)
			}
			return nil
		}
		p := printer(cmd)
		p.Markdown(mcp.FormatGeneration(resp))
		if genOut != "" {
			p.Success(fmt.Sprintf("Template saved to %s", genOut))
		}
		return nil
	},
}

func writeTemplate(path, template string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := appFs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := afero.WriteFile(appFs, path, []byte(template+"\n"), 0o644); err != nil {
		return fmt.Errorf("write template %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genReq.RoleType, "role-type", "", "type of role (assistant, expert, tutor, ...)")
	f.StringVar(&genReq.Domain, "domain", "", "domain or field (programming, writing, data, research, ...)")
	f.StringVar(&genReq.SpecificTask, "task", "", "specific task or function of the role")
	f.StringArrayVar(&genReq.Requirements, "requirement", nil, "additional requirement (repeatable)")
	f.StringArrayVar(&genReq.Constraints, "constraint", nil, "constraint or limitation (repeatable)")
	f.StringArrayVar(&genReq.AdditionalSkills, "skill", nil, "extra skill to add (repeatable)")
	f.StringVar(&genReq.Style, "style", "", "communication style")
	f.StringVar(&genLevel, "level", "", "expertise level: beginner, intermediate, advanced or expert")
	f.StringVar(&genReq.OutputFormat, "output-format", "", "desired output format")
	f.BoolVar(&genReq.Examples, "examples", false, "include example dialogues")
	f.StringVarP(&genOut, "out", "o", "", "also write the template to this file")
	f.BoolVarP(&genInteractive, "interactive", "i", false, "fill the request in an interactive form")
}
