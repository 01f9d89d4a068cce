package tui

// Color constants for the taskit TUI theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	ColorPrimaryText   = "#E6EAF2" // Titles, task text
	ColorSecondaryText = "#B1B8C7" // Status line, metadata
	ColorDisabledText  = "#6D7383" // Completed tasks
	ColorHelpText      = "240"     // Dark grey for help text

	ColorAccentMain   = "#7C3AED" // Active tab, selected row
	ColorAccentBright = "#A78BFA" // Calendar cursor, highlights

	ColorError   = "#EF4444" // Save failures
	ColorSuccess = "#22C55E" // Completed checkmarks
	ColorWarning = "#F59E0B" // Due dates, day markers
)
