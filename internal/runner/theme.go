package runner

import "github.com/vovakirdan/florian-runner/internal/core"

// Theme maps every drawn element to a colour for one UI mode.
type Theme struct {
	Dark bool

	Ground     core.Color
	GroundDash core.Color
	Cloud      core.Color

	Monitor       core.Color
	MonitorScreen core.Color
	MonitorStand  core.Color

	Body  core.Color
	Head  core.Color
	Legs  core.Color
	Label core.Color

	Text core.Color
}

// ThemeFor returns the light or dark theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return Theme{
			Dark:          true,
			Ground:        core.ColorDimWhite,
			GroundDash:    core.ColorDimWhite,
			Cloud:         core.ColorDimWhite,
			Monitor:       core.ColorSlateLight,
			MonitorScreen: core.ColorNavy,
			MonitorStand:  core.ColorSlate,
			Body:          core.ColorGreen,
			Head:          core.ColorWhite,
			Legs:          core.ColorSlateLight,
			Label:         core.ColorWhite,
			Text:          core.ColorWhite,
		}
	}
	return Theme{
		Ground:        core.ColorDimBlack,
		GroundDash:    core.ColorDimBlack,
		Cloud:         core.ColorDimBlack,
		Monitor:       core.ColorGrayDark,
		MonitorScreen: core.ColorSilver,
		MonitorStand:  core.ColorGray,
		Body:          core.ColorGreen,
		Head:          core.ColorBlack,
		Legs:          core.ColorGrayDark,
		Label:         core.ColorBlack,
		Text:          core.ColorBlack,
	}
}
