package palette

import "strings"

func fg256(code string) Style {
	return Style("\x1b[38;5;" + code + "m")
}

var colorNames = map[string]Style{
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"black":   "\x1b[30m",
	"white":   "\x1b[37m",

	"bright_red":     "\x1b[91m",
	"bright_green":   "\x1b[92m",
	"bright_yellow":  "\x1b[93m",
	"bright_blue":    "\x1b[94m",
	"bright_magenta": "\x1b[95m",
	"bright_cyan":    "\x1b[96m",
	"bright_white":   "\x1b[97m",

	"orange":      fg256("208"),
	"purple":      fg256("129"),
	"pink":        fg256("205"),
	"brown":       fg256("130"),
	"gray":        fg256("244"),
	"grey":        fg256("244"),
	"dark_red":    fg256("88"),
	"dark_green":  fg256("22"),
	"dark_blue":   fg256("18"),
	"light_red":   fg256("203"),
	"light_green": fg256("119"),
	"light_blue":  fg256("117"),
	"gold":        fg256("220"),
	"silver":      fg256("250"),
	"lime":        fg256("154"),
	"navy":        fg256("17"),
	"maroon":      fg256("52"),
	"olive":       fg256("58"),
	"teal":        fg256("30"),
	"aqua":        fg256("51"),
	"fuchsia":     fg256("201"),

	// readable on light backgrounds
	"dark_gray":    fg256("236"),
	"dark_grey":    fg256("236"),
	"charcoal":     fg256("238"),
	"slate":        fg256("240"),
	"steel":        fg256("67"),
	"indigo":       fg256("54"),
	"violet":       fg256("93"),
	"crimson":      fg256("160"),
	"forest":       fg256("28"),
	"emerald":      fg256("34"),
	"sapphire":     fg256("19"),
	"amber":        fg256("214"),
	"coral":        fg256("209"),
	"rust":         fg256("166"),
	"bronze":       fg256("136"),
	"copper":       fg256("173"),
	"chocolate":    fg256("94"),
	"coffee":       fg256("52"),
	"wine":         fg256("89"),
	"plum":         fg256("96"),
	"midnight":     fg256("17"),
	"deep_blue":    fg256("20"),
	"deep_green":   fg256("22"),
	"deep_red":     fg256("88"),
	"deep_purple":  fg256("55"),
	"deep_orange":  fg256("130"),
	"royal_blue":   fg256("21"),
	"royal_purple": fg256("57"),
	"sea_green":    fg256("29"),
	"sky_blue":     fg256("75"),
	"rose":         fg256("168"),
	"salmon":       fg256("174"),
	"peach":        fg256("216"),
	"mint":         fg256("121"),
	"lavender":     fg256("183"),
	"turquoise":    fg256("80"),
}

// Lookup resolves a color name case-insensitively. "none", "default", the
// empty string and any unknown name resolve to NoStyle.
func Lookup(name string) Style {
	return colorNames[strings.ToLower(strings.TrimSpace(name))]
}
