package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli/styles"
	"github.com/bnema/dumbterm/internal/logging"
)

const defaultLogsLines = 50

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `View the playground log.

The playground owns the terminal, so it logs to a rotated file in the
state directory (or logging.log_dir).

Examples:
  dumbterm logs               # Show the last 50 lines
  dumbterm logs -n 200        # Show the last 200 lines
  dumbterm logs -f            # Follow the log in real-time`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(app.LogDir(), logging.FileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Println(app.Theme.Subtle.Render("No logs yet: " + logPath))
		return nil
	}

	if err := showLog(os.Stdout, logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followLog(ctx, os.Stdout, logPath, app.Theme)
}

// showLog writes the last n lines of the log.
func showLog(w io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to the log until ctx is done. A rotation
// reopens the new file.
func followLog(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so the file can be replaced on rotation.
	if err := watcher.Add(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	flush := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(logPath) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// Rotated: drain the old file, then switch.
				if err := flush(); err != nil {
					return err
				}
				next, err := os.Open(logPath)
				if err != nil {
					return fmt.Errorf("reopen log file: %w", err)
				}
				_ = file.Close()
				file = next
				reader.Reset(file)
				pending = ""
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	TabID     string `json:"tab_id"`
	PaneID    string `json:"pane_id"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for console logs
	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG", "TRC"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := ""
	if entry.Time != "" {
		if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
			timeStr = t.Format("15:04:05")
		} else {
			timeStr = entry.Time
		}
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	line := fmt.Sprintf("%s %s", theme.Subtle.Render(timeStr), levelStr)
	if entry.Component != "" {
		line += " " + theme.HelpKey.Render("["+entry.Component+"]")
	}
	line += " " + entry.Message
	if entry.TabID != "" {
		line += theme.Subtle.Render(" tab=" + entry.TabID)
	}
	if entry.PaneID != "" {
		line += theme.Subtle.Render(" pane=" + entry.PaneID)
	}
	return line
}

// containsAny checks if s contains any of the substrings as whole words.
func containsAny(s string, substrs ...string) bool {
	for _, field := range strings.Fields(s) {
		for _, substr := range substrs {
			if field == substr {
				return true
			}
		}
	}
	return false
}

// logsClearCmd removes rotated log files.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated log backups. Use --all to also truncate the current log.`,
	RunE: runLogsClear,
}

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also truncate the current log")
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	removed, err := clearLogs(app.LogDir(), logsClearAll)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Println(app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Println(app.Theme.SuccessStyle.Render(fmt.Sprintf("%s Removed %d log files", styles.IconCheck, removed)))
	return nil
}

// clearLogs deletes rotated backups in dir. With all, the current log is
// truncated too and counted.
func clearLogs(dir string, all bool) (int, error) {
	backups, err := logging.Backups(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, path := range backups {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}

	if all {
		current := filepath.Join(dir, logging.FileName)
		if err := os.Truncate(current, 0); err == nil {
			removed++
		} else if !os.IsNotExist(err) {
			return removed, fmt.Errorf("truncate %s: %w", current, err)
		}
	}
	return removed, nil
}
