// Package theme provides the typed theme served to the clients. It is resolved once at
// startup and injected; clients no longer compute styles from untyped theme objects.
package theme

import "fmt"

// Palette lists the named colors used by the component kit.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Error      string `json:"error"`
	Success    string `json:"success"`
	Border     string `json:"border"`
}

// Spacing is the spacing scale in density-independent pixels.
type Spacing struct {
	XS int `json:"xs"`
	S  int `json:"s"`
	M  int `json:"m"`
	L  int `json:"l"`
	XL int `json:"xl"`
}

// FontSizes is the type scale.
type FontSizes struct {
	Caption int `json:"caption"`
	Body    int `json:"body"`
	Title   int `json:"title"`
	Heading int `json:"heading"`
}

// Theme is the complete style configuration.
type Theme struct {
	Name         string    `json:"name"`
	Dark         bool      `json:"dark"`
	Colors       Palette   `json:"colors"`
	Spacing      Spacing   `json:"spacing"`
	FontSizes    FontSizes `json:"fontSizes"`
	BorderRadius int       `json:"borderRadius"`
}

var (
	defaultSpacing = Spacing{XS: 4, S: 8, M: 16, L: 24, XL: 32}
	defaultFonts   = FontSizes{Caption: 12, Body: 14, Title: 18, Heading: 24}
)

// Light is the default theme.
var Light = Theme{
	Name: "light",
	Colors: Palette{
		Primary:    "#1E6FD9",
		Secondary:  "#F2A541",
		Background: "#FFFFFF",
		Surface:    "#F5F7FA",
		Text:       "#1B1F24",
		TextMuted:  "#6B7480",
		Error:      "#D64545",
		Success:    "#2E9E5B",
		Border:     "#DDE2E8",
	},
	Spacing:      defaultSpacing,
	FontSizes:    defaultFonts,
	BorderRadius: 8,
}

// Dark is the dark variant.
var Dark = Theme{
	Name: "dark",
	Dark: true,
	Colors: Palette{
		Primary:    "#5B9BF0",
		Secondary:  "#F5B963",
		Background: "#0F1318",
		Surface:    "#1A2028",
		Text:       "#E8ECF1",
		TextMuted:  "#9AA4B0",
		Error:      "#F07272",
		Success:    "#53C283",
		Border:     "#2B333D",
	},
	Spacing:      defaultSpacing,
	FontSizes:    defaultFonts,
	BorderRadius: 8,
}

// Resolve returns the theme with the given name.
func Resolve(name string) (Theme, error) {
	switch name {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}
