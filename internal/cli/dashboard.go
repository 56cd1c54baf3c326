package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/casemodel"
	"github.com/rshade/casedesk/internal/config"
	"github.com/rshade/casedesk/internal/engine"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/ingest"
	"github.com/rshade/casedesk/internal/tui"
	"github.com/rshade/casedesk/internal/viewstate"
)

type dashboardFlags struct {
	caseFlags
	watch bool
	plain bool
	color bool
}

// NewDashboardCmd creates the dashboard command.
func NewDashboardCmd() *cobra.Command {
	var flags dashboardFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the case dashboard",
		Long: `Shows a case next to the guidance that applies to it.

On a terminal the dashboard is interactive: press d or tab to switch between the
simplified and detailed views, ? for help and q to quit. When stdout is not a
terminal a static view is printed instead.`,
		Example: `  # Dashboard for the built-in sample case
  casedesk dashboard

  # Watch a case file and redraw when it changes
  casedesk dashboard --case claims/INS-99281-KL.yaml --watch

  # Print the detailed view as plain text
  casedesk dashboard --detailed --plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "reload the case file when it changes (interactive only)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "force plain text output")
	cmd.Flags().BoolVar(&flags.color, "color", false, "force styled output when stdout is not a terminal")

	return cmd
}

func runDashboard(cmd *cobra.Command, flags dashboardFlags) error {
	ctx := cmd.Context()
	src := flags.sources()
	if flags.watch && src.CaseFile == "" {
		return errors.New("--watch requires a case file (--case or case.file in config)")
	}

	in, err := engine.Load(ctx, src)
	if err != nil {
		return err
	}
	resolver := newResolver(in.Catalog)
	display := config.GetDisplayConfig()

	mode := tui.DetectOutputMode(flags.color, !display.Color, flags.plain)
	logger.Debug().Str("output_mode", mode.String()).Msg("dashboard output mode")

	switch mode {
	case tui.OutputModeInteractive:
		opts := tui.DashboardOptions{
			Engine:   engineOptions(),
			Width:    display.Width,
			Detailed: flags.detailed,
			Markdown: true,
		}
		watchPath := ""
		if flags.watch {
			watchPath = src.CaseFile
		}
		return runInteractiveDashboard(ctx, in.Case, resolver, opts, watchPath)

	case tui.OutputModeStyled:
		a, err := buildAssessment(ctx, in.Case, resolver, flags.detailed)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDashboard(a, display.Width))
		return err

	case tui.OutputModePlain:
		fallthrough
	default:
		return renderPlainDashboard(ctx, cmd.OutOrStdout(), in.Case, resolver, flags.detailed)
	}
}

func renderPlainDashboard(
	ctx context.Context,
	w io.Writer,
	record casemodel.CaseRecord,
	resolver *guidance.Resolver,
	detailed bool,
) error {
	a, err := buildAssessment(ctx, record, resolver, detailed)
	if err != nil {
		return err
	}
	return engine.RenderAssessmentAsTable(w, a)
}

func buildAssessment(
	ctx context.Context,
	record casemodel.CaseRecord,
	resolver *guidance.Resolver,
	detailed bool,
) (engine.Assessment, error) {
	g, err := engine.ResolveGuidance(ctx, resolver, record)
	if err != nil {
		return engine.Assessment{}, err
	}
	state := viewstate.New()
	if detailed {
		state = viewstate.NewDetailed()
	}
	return engine.NewAssessment(record, g, state, engineOptions()), nil
}

// runInteractiveDashboard runs the Bubble Tea program. A non-empty watchPath
// forwards case file reloads into the program.
func runInteractiveDashboard(
	ctx context.Context,
	record casemodel.CaseRecord,
	resolver *guidance.Resolver,
	opts tui.DashboardOptions,
	watchPath string,
) error {
	model := tui.NewDashboardModel(ctx, record, resolver, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if watchPath != "" {
		w, err := ingest.NewWatcher(watchPath, config.GetWatchDebounce(), func(r casemodel.CaseRecord, err error) {
			if err != nil {
				p.Send(tui.CaseReloadErrorMsg{Err: err})
				return
			}
			p.Send(tui.CaseReloadedMsg{Record: r})
		})
		if err != nil {
			return fmt.Errorf("creating case watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("watching %s: %w", watchPath, err)
		}
		defer func() {
			if stopErr := w.Stop(); stopErr != nil {
				logger.Warn().Err(stopErr).Msg("stopping case watcher")
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive dashboard: %w", err)
	}
	return nil
}
