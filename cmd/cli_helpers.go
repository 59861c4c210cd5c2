package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/internal/logger"
	"github.com/josephgoksu/langgpt-assistant/internal/ui"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

// newService builds the core service from the resolved configuration.
func newService(opts ...langgpt.Option) (*langgpt.Service, error) {
	catalog, err := prompts.Load(appFs, appConfig.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("load role catalog: %w", err)
	}
	base := []langgpt.Option{
		langgpt.WithLogger(appLog),
		langgpt.WithFoldCase(appConfig.Analysis.FoldCase),
	}
	return langgpt.NewService(catalog, append(base, opts...)...), nil
}

// watchCatalog reloads the catalog override into svc on change when
// catalog.watch is set. It returns immediately otherwise.
func watchCatalog(ctx context.Context, svc *langgpt.Service) {
	if !appConfig.Catalog.Watch || appConfig.Catalog.File == "" {
		return
	}
	go func() {
		if err := prompts.Watch(ctx, appConfig.Catalog.File, appLog, svc.SetCatalog); err != nil {
			appLog.Warn("catalog hot reload disabled", "error", err)
		}
	}()
}

// recordRequest keeps the request in the crash context so a crash log shows
// what was being processed.
func recordRequest(req any) {
	data, err := json.Marshal(req)
	if err != nil {
		return
	}
	logger.SetLastRequest(string(data))
}

// readPromptArg returns the prompt from args. "-", or no argument with piped
// stdin, reads stdin instead.
func readPromptArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if len(args) == 0 {
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", fmt.Errorf("no prompt given: pass it as an argument or pipe it on stdin")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
