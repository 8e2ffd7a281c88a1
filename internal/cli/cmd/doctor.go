package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kittyfont/kittyfont/internal/cli/styles"
	"github.com/kittyfont/kittyfont/internal/infrastructure/fontconfig"
	"github.com/kittyfont/kittyfont/internal/infrastructure/kitty"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime requirements and diagnose issues",
	Long: `Doctor checks the external tools kittyfont drives and the kitty.conf
it manages:

- fc-list (fontconfig) for installed font enumeration
- kitty for the terminal's usable-font listing
- pgrep for the reload signal
- the configured kitty.conf and its font directives`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	report := styles.DoctorReport{OverallOK: true}

	report.Tools = []styles.DoctorToolCheck{
		{
			Name:    "fc-list",
			Purpose: "enumerates installed font families",
			OK:      fontconfig.NewEnumerator().IsAvailable(ctx),
		},
		{
			Name:    "kitty",
			Purpose: "reports the families kitty can render",
			OK:      kitty.NewFontLister().IsAvailable(ctx),
		},
		{
			Name:    "pgrep",
			Purpose: "signals running kitty instances to reload",
			OK:      kitty.NewReloader().IsAvailable(ctx),
		},
	}
	for _, tool := range report.Tools {
		if !tool.OK {
			report.OverallOK = false
		}
	}

	conf := styles.DoctorConfReport{Path: app.Store.Path()}
	if settings, err := app.FontUC.Current(ctx); err != nil {
		conf.Error = err.Error()
		report.OverallOK = false
	} else {
		conf.OK = true
		conf.Family = settings.Family
		conf.Size = settings.SizeText
	}
	report.Conf = conf

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Println(renderer.Render(report))

	if !report.OverallOK {
		return fmt.Errorf("runtime requirements not met")
	}
	return nil
}
