package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Background:       palette.sumiInk1,
		ColumnBackground: palette.sumiInk2,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		ColumnBorder:   palette.sumiInk6,
		TaskBorder:     palette.sumiInk4,
		TaskBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		StatusTodo:       palette.crystalBlue,
		StatusInProgress: palette.carpYellow,
		StatusDone:       palette.autumnGreen,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.fujiWhite,
	}
}
