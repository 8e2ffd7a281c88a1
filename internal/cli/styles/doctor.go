package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Tools     []DoctorToolCheck
	Conf      DoctorConfReport
}

type DoctorToolCheck struct {
	Name    string
	Purpose string
	OK      bool
}

type DoctorConfReport struct {
	Path   string
	OK     bool
	Family string
	Size   string
	Error  string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)

	sections := []string{
		r.renderTools(report.Tools),
		r.renderConf(report.Conf),
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderTools(tools []DoctorToolCheck) string {
	lines := make([]string, 0, len(tools))
	for _, t := range tools {
		lines = append(lines, r.renderTool(t))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Tools", r.theme.Highlight.Render(IconWrench))) + "\n" + body)
}

func (r *DoctorRenderer) renderTool(c DoctorToolCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "Found"
	if !c.OK {
		icon = IconX
		statusStyle = r.theme.ErrorStyle
		status = "Missing"
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	info := r.theme.Subtle.Render(c.Purpose)

	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, info)
}

func (r *DoctorRenderer) renderConf(conf DoctorConfReport) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Path"), r.theme.Normal.Render(conf.Path)),
	}

	if conf.OK {
		lines = append(lines,
			fmt.Sprintf("%s %s", r.theme.Subtle.Render("Family"), r.theme.Normal.Render(valueOrUnset(conf.Family))),
			fmt.Sprintf("%s %s", r.theme.Subtle.Render("Size"), r.theme.Normal.Render(conf.Size)),
		)
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(conf.Error)))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s kitty.conf", r.theme.Highlight.Render(IconConfig))) + "\n" + body)
}

func valueOrUnset(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(not set)"
	}
	return v
}
