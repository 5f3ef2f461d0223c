package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Background:       palette.dragonBlack1,
		ColumnBackground: palette.dragonBlack3,

		Create: palette.dragonGreen2,
		Edit:   palette.dragonBlue2,
		Delete: palette.dragonRed,

		ColumnBorder:   palette.dragonBlack6,
		TaskBorder:     palette.dragonBlack4,
		TaskBackground: palette.dragonBlack3,
		SelectedBorder: palette.dragonAqua,
		SelectedBg:     palette.waveBlue1,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		StatusTodo:       palette.dragonGray,
		StatusInProgress: palette.dragonYellow,
		StatusDone:       palette.dragonGreen,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.dragonViolet,
		StatusBarText: palette.dragonWhite,
	}
}
