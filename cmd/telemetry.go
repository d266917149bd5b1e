package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/aeon/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "View the JSONL telemetry event stream",
	Long: `Reads and formats the JSONL telemetry file recording catalog mutations,
reallocation passes, and exports.`,
	Args: cobra.NoArgs,
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().IntP("tail", "n", 0, "show only the last N events")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if cfg.TelemetryPath == "" {
		return fmt.Errorf("telemetry is disabled (empty telemetry_path)")
	}

	f, err := os.Open(cfg.TelemetryPath)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", cfg.TelemetryPath, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("telemetry: read: %w", err)
	}

	if n, _ := cmd.Flags().GetInt("tail"); n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range lines {
		printEvent(cmd.OutOrStdout(), line)
	}
	return nil
}

// printEvent formats one JSONL line for display. Unparseable lines are
// printed raw rather than dropped.
func printEvent(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintln(w, line)
		return
	}

	ts := evt.Timestamp.Format("15:04:05")
	switch {
	case evt.FigureID != "":
		fmt.Fprintf(w, "%s  %-16s %s\n", ts, evt.Kind, evt.FigureID)
	case evt.Data != nil:
		data, _ := json.Marshal(evt.Data)
		fmt.Fprintf(w, "%s  %-16s %s\n", ts, evt.Kind, data)
	default:
		fmt.Fprintf(w, "%s  %s\n", ts, evt.Kind)
	}
}
