/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the langgpt setup and diagnose issues",
	Long: `Validate the configuration and the role catalog.

Checks:
  • Configuration file and values
  • Role catalog (built-in or catalog.file override)
  • A generate and analyze round trip for every catalog role
  • Whether the HTTP port is free for langgpt serve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := runDoctor(cmd.Context())
		failed := 0
		for _, c := range checks {
			if c.Status == checkFail {
				failed++
			}
		}

		if isJSON() {
			if err := printJSON(cmd.OutOrStdout(), checks); err != nil {
				return err
			}
		} else if !isQuiet() {
			printChecks(cmd.OutOrStdout(), checks)
		}
		if failed > 0 {
			return fmt.Errorf("doctor found %d problem(s)", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

const (
	checkOK   = "ok"
	checkWarn = "warn"
	checkFail = "fail"
)

// DoctorCheck represents a single diagnostic check
type DoctorCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

func runDoctor(ctx context.Context) []DoctorCheck {
	checks := []DoctorCheck{checkConfig()}

	catalog, check := checkCatalog()
	checks = append(checks, check)
	if catalog != nil {
		checks = append(checks, checkCoverage(catalog), checkRoundTrip(ctx, catalog))
	}
	return append(checks, checkPort(appConfig.Server.Port))
}

func checkConfig() DoctorCheck {
	used := viper.ConfigFileUsed()
	if used == "" {
		return DoctorCheck{
			Name:    "Configuration",
			Status:  checkOK,
			Message: "no config file, using defaults and LANGGPT_ environment variables",
			Hint:    "Run: langgpt config init",
		}
	}
	return DoctorCheck{Name: "Configuration", Status: checkOK, Message: "loaded " + used}
}

func checkCatalog() (*prompts.Catalog, DoctorCheck) {
	catalog, err := prompts.Load(appFs, appConfig.Catalog.File)
	if err != nil {
		return nil, DoctorCheck{
			Name:    "Role catalog",
			Status:  checkFail,
			Message: err.Error(),
			Hint:    "Fix or remove catalog.file in the config",
		}
	}
	source := "built-in"
	if appConfig.Catalog.File != "" {
		source = appConfig.Catalog.File
	}
	return catalog, DoctorCheck{
		Name:    "Role catalog",
		Status:  checkOK,
		Message: fmt.Sprintf("%d roles from %s", len(catalog.Categories()), source),
	}
}

// checkCoverage warns when a domain keyword has no catalog role, since
// requests for it will always be synthesized.
func checkCoverage(catalog *prompts.Catalog) DoctorCheck {
	var missing []string
	for _, group := range []string{"programming", "writing", "analysis", "research"} {
		if len(catalog.Entries(group)) == 0 {
			missing = append(missing, group)
		}
	}
	if len(missing) > 0 {
		return DoctorCheck{
			Name:    "Catalog coverage",
			Status:  checkWarn,
			Message: fmt.Sprintf("no role for %v", missing),
			Hint:    "Requests in these domains fall back to a synthesized role",
		}
	}
	return DoctorCheck{Name: "Catalog coverage", Status: checkOK, Message: "every domain keyword has a role"}
}

func checkRoundTrip(ctx context.Context, catalog *prompts.Catalog) DoctorCheck {
	svc := langgpt.NewService(catalog, langgpt.WithLogger(appLog))
	for _, e := range catalog.Entries("") {
		gen := svc.Generate(ctx, models.GenerationRequest{RoleType: "assistant", Domain: e.Group, SpecificTask: "self test"})
		if !gen.Success || gen.Template == "" {
			return DoctorCheck{Name: "Round trip", Status: checkFail, Message: "generation failed for " + string(e.Category)}
		}
		an := svc.Analyze(ctx, models.AnalysisRequest{Prompt: gen.Template, AnalysisType: models.AnalysisStructure})
		if !an.Success {
			return DoctorCheck{Name: "Round trip", Status: checkFail, Message: "analysis failed for " + string(e.Category)}
		}
	}
	return DoctorCheck{Name: "Round trip", Status: checkOK, Message: "generate and analyze succeed for every role"}
}

func checkPort(port int) DoctorCheck {
	ln, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(port)))
	if err != nil {
		return DoctorCheck{
			Name:    "HTTP port",
			Status:  checkWarn,
			Message: fmt.Sprintf("port %d is in use", port),
			Hint:    "Run langgpt serve with --port or set server.port",
		}
	}
	_ = ln.Close()
	return DoctorCheck{Name: "HTTP port", Status: checkOK, Message: fmt.Sprintf("port %d is free", port)}
}

func printChecks(w io.Writer, checks []DoctorCheck) {
	for _, c := range checks {
		var icon string
		switch c.Status {
		case checkOK:
			icon = "✅"
		case checkWarn:
			icon = "⚠️ "
		case checkFail:
			icon = "❌"
		}
		fmt.Fprintf(w, "%s %s: %s\n", icon, c.Name, c.Message)
		if c.Hint != "" && c.Status != checkOK {
			fmt.Fprintf(w, "   └─ %s\n", c.Hint)
		}
	}
}
