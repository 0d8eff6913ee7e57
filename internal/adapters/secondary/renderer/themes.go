package renderer

// palette holds the ARGB colors a theme paints its layouts with. GoPPT
// colors carry a leading alpha byte ("FFRRGGBB").
type palette struct {
	accent   string // decorative bars, bullet glyphs
	heading  string // slide and section titles
	body     string // bullet text
	muted    string // footers, secondary text
	boxFill  string // filled content boxes
	backdrop string // full-slide background, empty for white
}

// themes backs the five stock templates. A template descriptor resolves to
// a theme through its ThemeName; unknown names fall back to "default".
var themes = map[string]palette{
	"default": {
		accent:  "FF475569",
		heading: "FF1E293B",
		body:    "FF334155",
		muted:   "FF94A3B8",
		boxFill: "FFF1F5F9",
	},
	"blue": {
		accent:  "FF3B82F6",
		heading: "FF1E40AF",
		body:    "FF334155",
		muted:   "FF94A3B8",
		boxFill: "FFEFF6FF",
	},
	"green": {
		accent:  "FF22C55E",
		heading: "FF15803D",
		body:    "FF334155",
		muted:   "FF94A3B8",
		boxFill: "FFF0FDF4",
	},
	"red": {
		accent:  "FFEF4444",
		heading: "FFB91C1C",
		body:    "FF334155",
		muted:   "FF94A3B8",
		boxFill: "FFFEF2F2",
	},
	"dark": {
		accent:   "FF38BDF8",
		heading:  "FFF8FAFC",
		body:     "FFE2E8F0",
		muted:    "FF64748B",
		boxFill:  "FF1E293B",
		backdrop: "FF0F172A",
	},
}

// paletteFor resolves a theme name to its palette, defaulting for unknown
// names so catalog typos degrade gracefully instead of failing a request.
func paletteFor(name string) palette {
	if pal, ok := themes[name]; ok {
		return pal
	}
	return themes["default"]
}
