package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/doctor"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, data sources and terminal",
	Long: `Run diagnostics for everything the dashboard depends on: the config file
and widget list, reading server info and load from this machine, the GPU
probe, and the terminal's size and colors.

Examples:
  dash doctor
  dash doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		collector := source.NewCollector(
			source.WithVersion(GetVersion()),
			source.WithLogger(logger.NewEnvLogger("[source]")),
		)
		return doctorCommand(cmd.Context(), cmd.OutOrStdout(), collector, source.NvidiaSMI, stdoutTerminal(), doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// terminalEnv is what the TERMINAL checks look at.
type terminalEnv struct {
	IsTTY   bool
	Width   int
	Height  int
	Profile termenv.Profile
}

func stdoutTerminal() terminalEnv {
	env := terminalEnv{Profile: lipgloss.ColorProfile()}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return env
	}
	env.IsTTY = true
	env.Width, env.Height, _ = term.GetSize(fd)
	return env
}

// DoctorOutput is the JSON shape of a doctor run.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput is one category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs every check and reports. Problems are reported, not
// returned; the error is only for output failures.
func doctorCommand(ctx context.Context, out io.Writer, src source.Source, gpu source.GPUQuery, env terminalEnv, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// The gpu check only warns when the widget is actually wanted.
	gpuWanted := false
	if cfg, _, err := config.LoadOrDefault(cfgFile); err == nil {
		for _, id := range cfg.WidgetList {
			if id == config.WidgetGPU {
				gpuWanted = true
			}
		}
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgFile)...)
	checks = append(checks, doctor.NewSourceChecks(src, gpu, gpuWanted)...)
	checks = append(checks, doctor.NewTerminalChecks(env.IsTTY, env.Width, env.Height, env.Profile)...)

	results := doctor.RunAllParallel(ctx, checks)

	if asJSON {
		return WriteJSONSuccess(out, buildDoctorOutput(results))
	}
	writeDoctorText(out, results)
	return nil
}

func buildDoctorOutput(results []doctor.CheckResult) DoctorOutput {
	grouped := doctor.GroupByCategory(results)
	output := DoctorOutput{Categories: make([]CategoryOutput, 0, len(doctor.Categories))}
	for _, cat := range doctor.Categories {
		if len(grouped[cat]) == 0 {
			continue
		}
		output.Categories = append(output.Categories, CategoryOutput{Name: cat, Results: grouped[cat]})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}
	return output
}

func writeDoctorText(out io.Writer, results []doctor.CheckResult) {
	header := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out)
	fmt.Fprintln(out, header.Render("dash diagnostic report"))
	fmt.Fprintln(out)

	grouped := doctor.GroupByCategory(results)
	for _, cat := range doctor.Categories {
		if len(grouped[cat]) == 0 {
			continue
		}
		fmt.Fprintln(out, header.Render(cat))
		for _, r := range grouped[cat] {
			writeCheckResult(out, r)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	summary := doctor.Summary(results)
	switch {
	case doctor.HasFailures(results):
		fmt.Fprintln(out, ui.Failure(summary))
	case doctor.HasIssues(results):
		fmt.Fprintln(out, ui.Warning(summary))
	default:
		fmt.Fprintln(out, ui.Success(summary))
	}
	fmt.Fprintln(out)
}

func writeCheckResult(out io.Writer, r doctor.CheckResult) {
	switch r.Status {
	case doctor.StatusPass:
		fmt.Fprintf(out, "  %s\n", ui.Success(r.Message))
	case doctor.StatusWarn:
		fmt.Fprintf(out, "  %s\n", ui.Warning(r.Message))
	default:
		fmt.Fprintf(out, "  %s\n", ui.Failure(r.Message))
	}

	if r.Suggestion == "" || r.Status == doctor.StatusPass {
		return
	}
	for _, line := range strings.Split(r.Suggestion, "\n") {
		fmt.Fprintf(out, "    %s\n", ui.Muted(line))
	}
}
