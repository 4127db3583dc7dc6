package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("62")
	colorMuted     = lipgloss.Color("241")
	colorAccent    = lipgloss.Color("204")
	colorSelected  = lipgloss.Color("229")
	colorBorder    = lipgloss.Color("238")
	colorTitleText = lipgloss.Color("230")
	colorSurface2  = lipgloss.Color("236")
	colorDanger    = lipgloss.Color("196")
)

var (
	titleStyle         = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).PaddingRight(2)
	statusStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	statusLoadingStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	metaLabelStyle     = lipgloss.NewStyle().Foreground(colorMuted).PaddingRight(1)
	metaValueStyle     = lipgloss.NewStyle().Foreground(colorTitleText).Bold(true).PaddingRight(3)
	modeInputStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	shortcutHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	emptyStyle         = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	topSectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	mainSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1)
	mainSectionTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mainSectionTitleLine  = lipgloss.NewStyle()

	logTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	logBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	helpHeadingStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	helpItemStyle    = lipgloss.NewStyle()
	helpFooterStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

var (
	modalPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
	modalTitleStyle        = lipgloss.NewStyle().Foreground(colorTitleText).Bold(true)
	modalLabelStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	modalHelpStyle         = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	modalButtonStyle       = lipgloss.NewStyle().Padding(0, 2).Background(colorSurface2)
	modalButtonFocusStyle  = lipgloss.NewStyle().Padding(0, 2).Background(colorPrimary).Foreground(colorSelected).Bold(true)
	modalDangerButtonStyle = lipgloss.NewStyle().Padding(0, 2).Background(colorSurface2).Foreground(colorDanger)
	modalDangerFocusStyle  = lipgloss.NewStyle().Padding(0, 2).Background(colorDanger).Foreground(colorSelected).Bold(true)
	modalBackdropStyle     = lipgloss.NewStyle().Faint(true)
)
