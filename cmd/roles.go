/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/internal/ui"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	"github.com/spf13/cobra"
)

var (
	rolesCategory string
	rolesDetails  bool
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the predefined roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		entries := svc.Catalog().Entries(rolesCategory)

		switch {
		case isJSON():
			return printJSON(cmd.OutOrStdout(), entries)
		case isQuiet():
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.Category)
			}
			return nil
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No roles in category %q.\n", rolesCategory)
			return nil
		}
		if rolesDetails {
			printer(cmd).Markdown(mcp.FormatRoles(entries))
			return nil
		}
		table := &ui.Table{Headers: []string{"Category", "Group", "Name", "Summary"}, MaxWidth: 48}
		for _, e := range entries {
			table.Rows = append(table.Rows, []string{string(e.Category), e.Group, e.Role.Name, e.Summary})
		}
		printer(cmd).Table(table)
		return nil
	},
}

var rolesShowCmd = &cobra.Command{
	Use:     "show CATEGORY",
	Short:   "Print the full template of a predefined role",
	Example: "  langgpt roles show data_analyst",
	Args:    cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range prompts.MustDefault().Categories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		entry, err := svc.Catalog().Entry(prompts.Category(args[0]))
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), entry)
		}
		template := langgpt.Render(entry.Role)
		if isQuiet() {
			fmt.Fprintln(cmd.OutOrStdout(), template)
			return nil
		}
		printer(cmd).Markdown(template)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(rolesShowCmd)
	rolesCmd.Flags().BoolVar(&rolesDetails, "details", false, "print every role as a markdown section")
	rolesCmd.Flags().StringVar(&rolesCategory, "category", "", "filter by category (programming, writing, analysis, research)")
}
