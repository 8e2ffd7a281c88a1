// Package cmd provides Cobra CLI commands for kittyfont.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kittyfont/kittyfont/internal/cli"
	"github.com/kittyfont/kittyfont/internal/cli/model"
	"github.com/kittyfont/kittyfont/internal/command"
	"github.com/kittyfont/kittyfont/internal/domain/build"
	"github.com/kittyfont/kittyfont/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "kittyfont [action [value]]",
		Short: "Manage the kitty terminal's font from the command line",
		Long: `Kittyfont inspects and rewrites the font directives in kitty.conf and
asks running kitty instances to pick up the change. Only fonts that are
both installed and usable by kitty are ever offered.

Without arguments it opens the interactive panel menu. With an action
token it runs one-shot:

  kittyfont                      # Open the panel menu
  kittyfont check                # Print the current font settings
  kittyfont float_check          # Show the current settings in a panel
  kittyfont set_font             # Pick a family from the panel list
  kittyfont set_font FiraCode    # Set the family directly
  kittyfont set_size             # Adjust the size interactively
  kittyfont set_size 12.5        # Set the size directly
  kittyfont size_up              # Grow the size by half a point
  kittyfont size_down            # Shrink the size by half a point
  kittyfont list                 # Print installed, kitty-usable fonts
  kittyfont float_list           # Show the same list in a panel`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgsFunction: completeAction,
		RunE:              runRoot,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"kittyfont %s (commit %s, built %s, %s)\n",
		info.Version, info.Commit, info.BuildDate, info.GoVersion,
	))
}

// runRoot dispatches the action tokens. Panel-opening actions run a
// Bubble Tea session; everything else prints its notice and exits.
func runRoot(_ *cobra.Command, args []string) error {
	action := ""
	arg := ""
	if len(args) > 0 {
		action = args[0]
	}
	if len(args) > 1 {
		arg = args[1]
	}

	if command.OpensPanel(action, arg) {
		return runSession(action, arg)
	}

	notice, err := app.Dispatch(app.Ctx(), action, arg)
	if err != nil {
		return err
	}
	if notice != "" {
		fmt.Println(notice)
	}
	return nil
}

// runSession runs an interactive panel session until the engine reports
// no open panel.
func runSession(action, arg string) error {
	if err := app.WatchConfig(); err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("config watch unavailable")
	}

	m := model.NewSessionModel(app.Ctx(), app.Theme, app, app.Surface, app.BrowseUC, action, arg)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	session, ok := finalModel.(model.SessionModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if session.Err() != nil {
		return session.Err()
	}
	if notice := session.Notice(); notice != "" {
		fmt.Println(notice)
	}
	return nil
}

// completeAction provides dynamic shell completion: action names for the
// first argument, catalog keys for set_font's second argument.
func completeAction(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if app == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return app.Complete(app.Ctx(), args, toComplete), cobra.ShellCompDirectiveNoFileComp
}
