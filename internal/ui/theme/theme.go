package theme

import "github.com/gdamore/tcell/v2"

type Theme struct {
	DefaultTextColor tcell.Color
	DefaultBgColor   tcell.Color

	TitleColor       tcell.Color
	LabelColor       tcell.Color
	LegendColor      tcell.Color
	TableHeaderColor tcell.Color
	MutedColor       tcell.Color
	EdgeMarkerColor  tcell.Color
	AdultColor       tcell.Color

	SuccessColor tcell.Color
	WarningColor tcell.Color
	ErrorColor   tcell.Color
}

func NewTheme() *Theme {
	return &Theme{
		DefaultTextColor: tcell.ColorWhite,
		DefaultBgColor:   tcell.ColorBlack,

		TitleColor:       tcell.ColorYellowGreen,
		LabelColor:       tcell.ColorYellow,
		LegendColor:      tcell.ColorWhite,
		TableHeaderColor: tcell.ColorBlue,
		MutedColor:       tcell.ColorGray,
		EdgeMarkerColor:  tcell.ColorOrange,
		AdultColor:       tcell.ColorRed,

		SuccessColor: tcell.ColorGreen,
		WarningColor: tcell.ColorYellow,
		ErrorColor:   tcell.ColorRed,
	}
}
