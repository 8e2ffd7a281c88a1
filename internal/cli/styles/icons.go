// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFont      = "\uf031" //  font
	IconVersion   = "\uf02b" //  tag
	IconGo        = "\ue627" //  go gopher
	IconGitBranch = "\ue725" //  git branch
	IconCalendar  = "\uf073" //  calendar
	IconGithub    = "\uf09b" //  github

	// Doctor / diagnostics
	IconDoctor  = "\uf0f1" //  stethoscope
	IconCheck   = "\uf00c" //  check
	IconX       = "\uf00d" //  x
	IconWarning = "\uf071" //  warning
	IconInfo    = "\uf05a" //  info
	IconWrench  = "\uf0ad" //  wrench

	// Files
	IconConfig = "\ue615" //  config
)
