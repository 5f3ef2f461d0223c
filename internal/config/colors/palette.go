package colors

// palette holds the Kanagawa colors the wave, dragon and lotus presets use
var palette = struct {
	// wave
	sumiInk1, sumiInk2, sumiInk3, sumiInk4, sumiInk6 string
	waveBlue1, waveAqua2                              string
	winterBlue, winterYellow, winterRed               string
	fujiWhite, fujiGray, oniViolet, crystalBlue       string
	springGreen, peachRed, carpYellow, autumnGreen    string
	samuraiRed, roninYellow, dragonBlue               string

	// dragon
	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet, dragonAqua       string
	dragonBlue2, dragonGreen, dragonGreen2, dragonRed      string
	dragonYellow, dragonGray                               string

	// lotus
	lotusInk1, lotusGray3                                           string
	lotusWhite0, lotusWhite2, lotusWhite3, lotusWhite4              string
	lotusViolet1, lotusViolet4, lotusBlue1, lotusBlue2, lotusBlue4  string
	lotusGreen, lotusRed, lotusRed3, lotusRed4, lotusAqua           string
	lotusTeal3, lotusOrange2, lotusYellow3, lotusYellow4            string
}{
	sumiInk1:     "#181820",
	sumiInk2:     "#1A1A22",
	sumiInk3:     "#1F1F28",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	waveAqua2:    "#7AA89F",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",
	carpYellow:   "#E6C384",
	autumnGreen:  "#76946A",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	dragonBlue:   "#658594",

	dragonBlack1: "#12120F",
	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonAqua:   "#8EA4A2",
	dragonBlue2:  "#8BA4B0",
	dragonGreen:  "#87A987",
	dragonGreen2: "#8A9A7B",
	dragonRed:    "#C4746E",
	dragonYellow: "#C4B28A",
	dragonGray:   "#A6A69C",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusWhite0:  "#D5CEA3",
	lotusWhite2:  "#E5DDB0",
	lotusWhite3:  "#F2ECBC",
	lotusWhite4:  "#E7DBA0",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue1:   "#C7D7E0",
	lotusBlue2:   "#B5CBD2",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusRed3:    "#E82424",
	lotusRed4:    "#D9A594",
	lotusAqua:    "#597B75",
	lotusTeal3:   "#5A7785",
	lotusOrange2: "#E98A00",
	lotusYellow3: "#DE9800",
	lotusYellow4: "#F9D791",
}
