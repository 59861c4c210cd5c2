package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

const (
	// CrashLogDir is the directory for crash logs relative to the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10
)

// CrashContext stores what the process was doing when it crashed.
type CrashContext struct {
	mu          sync.RWMutex
	command     string
	version     string
	lastRequest string
	basePath    string
	fs          afero.Fs
}

var globalContext = &CrashContext{fs: afero.NewOsFs()}

// SetBasePath sets the directory under which crash logs are written.
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetFs swaps the filesystem crash logs are written to.
func SetFs(fs afero.Fs) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.fs = fs
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand sets the command being executed.
func SetCommand(cmd string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
}

// SetLastRequest records the last request handled, truncated.
func SetLastRequest(req string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.lastRequest = truncateForLog(strings.TrimSpace(req), 2000)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog is one captured panic.
type CrashLog struct {
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Command     string    `json:"command"`
	PanicValue  string    `json:"panic_value"`
	StackTrace  string    `json:"stack_trace"`
	LastRequest string    `json:"last_request,omitempty"`
	GoVersion   string    `json:"go_version"`
	OS          string    `json:"os"`
	Arch        string    `json:"arch"`
}

// Recover is deferred at operation entry points. It stops a panic, logs it
// with its stack, and runs fallback so the caller can fill in a failure
// response. Usage:
//
//	defer logger.Recover(ctx, log, "generate", func() { resp = failed() })
func Recover(ctx context.Context, log *slog.Logger, op string, fallback func()) {
	r := recover()
	if r == nil {
		return
	}
	if log == nil {
		log = slog.Default()
	}
	log.ErrorContext(ctx, "operation panicked",
		"op", op,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()))
	if fallback != nil {
		fallback()
	}
}

// HandlePanic is deferred in main. It writes a crash log, tells the user
// where to find it, and exits non-zero.
func HandlePanic() {
	if r := recover(); r != nil {
		log := createCrashLog(r)
		path, err := writeCrashLog(log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
			fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, log.StackTrace)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "\nlanggpt encountered an unexpected error.\n\n")
		fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
		fmt.Fprintf(os.Stderr, "Please report this issue at:\n  https://github.com/josephgoksu/langgpt-assistant/issues\n\n")
		os.Exit(1)
	}
}

func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:   time.Now(),
		Version:     globalContext.version,
		Command:     globalContext.command,
		PanicValue:  fmt.Sprintf("%v", panicValue),
		StackTrace:  string(debug.Stack()),
		LastRequest: globalContext.lastRequest,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

func crashFs() afero.Fs {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()
	return globalContext.fs
}

// writeCrashLog writes log to disk and returns its path.
func writeCrashLog(log CrashLog) (string, error) {
	fs := crashFs()
	dir := getCrashLogDir()

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(fs, dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := getCrashLogPath(log.Timestamp)
	if err := afero.WriteFile(fs, path, []byte(formatCrashLog(log)), 0o644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".langgpt"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func getCrashLogPath(t time.Time) string {
	return filepath.Join(getCrashLogDir(), fmt.Sprintf("crash_%s.log", t.Format("20060102_150405")))
}

func formatCrashLog(log CrashLog) string {
	rule := strings.Repeat("-", 80)
	banner := strings.Repeat("=", 80)

	var sb strings.Builder
	sb.WriteString(banner + "\nLANGGPT CRASH LOG\n" + banner + "\n\n")
	fmt.Fprintf(&sb, "Timestamp: %s\n", log.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", log.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", log.Command)
	fmt.Fprintf(&sb, "Go:        %s\n", log.GoVersion)
	fmt.Fprintf(&sb, "OS/Arch:   %s/%s\n", log.OS, log.Arch)

	section := func(title, body string) {
		sb.WriteString("\n" + rule + "\n" + title + "\n" + rule + "\n")
		sb.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			sb.WriteString("\n")
		}
	}
	section("PANIC VALUE", log.PanicValue)
	section("STACK TRACE", log.StackTrace)
	if log.LastRequest != "" {
		section("LAST REQUEST", log.LastRequest)
	}

	sb.WriteString("\n" + banner + "\nEND OF CRASH LOG\n" + banner + "\n")
	return sb.String()
}

func listCrashLogNames(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	// names embed the timestamp, so lexical order is chronological
	sort.Strings(names)
	return names, nil
}

// cleanOldCrashLogs keeps only the MaxCrashLogs most recent logs.
func cleanOldCrashLogs(fs afero.Fs, dir string) error {
	names, err := listCrashLogNames(fs, dir)
	if err != nil {
		return err
	}
	if len(names) <= MaxCrashLogs {
		return nil
	}
	for _, name := range names[:len(names)-MaxCrashLogs] {
		if err := fs.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", name, err)
		}
	}
	return nil
}
