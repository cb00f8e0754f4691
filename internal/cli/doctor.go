package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/housekeeping/internal/config"
	"github.com/example/housekeeping/internal/version"
	"github.com/example/housekeeping/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the housekeeping environment",
		Long: `Health check for the housekeeping board.

Validates:
- Config file (~/.housekeeping/config.yaml or --config)
- Data directory
- Snapshot store reachability (sqlite file or redis)
- Log file location

Examples:
  housekeeping doctor              # Run full health check
  housekeeping doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := wire.ConfigPath()
			if err != nil {
				return err
			}

			cfgResult, cfg := checkConfig(path)
			results := []CheckResult{cfgResult}
			if cfg != nil {
				results = append(results, checkDataDir(filepath.Dir(path)))
				results = append(results, checkStore(context.Background(), cfg))
				results = append(results, checkLogPath(cfg))
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printResults(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func printResults(out io.Writer, results []CheckResult, hasErrors bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, version.String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, statusIcon(r.Status))
	}
	fmt.Fprintln(out)

	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintln(out, "\n⚠ Issues found. Run 'housekeeping init' to create the defaults.")
	} else {
		fmt.Fprintln(out, "All checks passed.")
	}
}

func statusIcon(status string) string {
	switch status {
	case "✓":
		return color.New(color.FgGreen).Sprint(status)
	case "⚠":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

// checkConfig loads the config file. A missing file is a warning since
// defaults apply.
func checkConfig(path string) (CheckResult, *config.Config) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Config",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s not found, using defaults", path),
		}, cfg
	}

	return CheckResult{Name: "Config", Status: "✓"}, cfg
}

// checkDataDir validates the data directory exists
func checkDataDir(dir string) CheckResult {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return CheckResult{Name: "Data dir", Status: "✗", Details: fmt.Sprintf("  Missing: %s", dir)}
	}
	if err != nil {
		return CheckResult{Name: "Data dir", Status: "✗", Details: "  " + err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Name: "Data dir", Status: "✗", Details: fmt.Sprintf("  %s is not a directory", dir)}
	}
	return CheckResult{Name: "Data dir", Status: "✓"}
}

// checkStore opens the configured store and reads the snapshot.
func checkStore(ctx context.Context, cfg *config.Config) CheckResult {
	name := fmt.Sprintf("Store (%s)", cfg.Store.Backend)

	if cfg.Store.Backend == config.BackendSQLite {
		if _, err := os.Stat(cfg.Store.Path); os.IsNotExist(err) {
			return CheckResult{Name: name, Status: "✗", Details: fmt.Sprintf("  Missing: %s", cfg.Store.Path)}
		}
	}

	store, closer, err := wire.OpenStore(ctx, cfg, zap.NewNop())
	if err != nil {
		return CheckResult{Name: name, Status: "✗", Details: "  " + err.Error()}
	}
	defer closer()

	rooms, err := store.Load(ctx)
	if err != nil {
		return CheckResult{Name: name, Status: "✗", Details: "  " + err.Error()}
	}
	if len(rooms) == 0 {
		return CheckResult{Name: name, Status: "⚠", Details: fmt.Sprintf("  No rooms stored under %q", cfg.Store.Key)}
	}
	return CheckResult{Name: name, Status: "✓"}
}

// checkLogPath validates the log file directory exists
func checkLogPath(cfg *config.Config) CheckResult {
	if cfg.Log.Path == "" || cfg.Log.Path == "stderr" || cfg.Log.Path == "stdout" {
		return CheckResult{Name: "Logs", Status: "✓"}
	}
	dir := filepath.Dir(cfg.Log.Path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Logs", Status: "⚠", Details: fmt.Sprintf("  %s will be created on first run", dir)}
	}
	return CheckResult{Name: "Logs", Status: "✓"}
}
