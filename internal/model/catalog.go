package model

// PlatformKind distinguishes PC rigs from consoles in the tier catalog.
type PlatformKind string

const (
	PlatformPC      PlatformKind = "PC"
	PlatformConsole PlatformKind = "CONSOLE"
)

// Tier is a bookable platform configuration with an hourly rate.  The
// catalog is fixed at process start and never persisted.
//
// Fields:
//  ID           – short identifier used in API payloads and bus events.
//  Name         – display name shown in the admin table ("Mid-End 144Hz").
//  Kind         – PC or CONSOLE.
//  BasePrice    – hourly rate in whole rupees.
//  DisplayLabel – long label used in the hand-off message.
type Tier struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Kind         PlatformKind `json:"kind"`
	BasePrice    int          `json:"base_price"`
	DisplayLabel string       `json:"label"`
}

// DurationOption is a selectable session length.  Multiplier is not simply
// the hour count: longer sessions carry a bulk discount (5 hours bills at
// 4.5x the hourly rate).
type DurationOption struct {
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	Hours      int     `json:"hours"`
	Multiplier float64 `json:"multiplier"`
	Text       string  `json:"text"`
}

// Tiers is the static platform catalog.
var Tiers = []Tier{
	{ID: "mid", Name: "Mid-End 144Hz", Kind: PlatformPC, BasePrice: 50, DisplayLabel: "Mid-End 144Hz PC"},
	{ID: "high", Name: "High-End 240Hz", Kind: PlatformPC, BasePrice: 70, DisplayLabel: "High-End 240Hz PC"},
	{ID: "ps4", Name: "Console PS4", Kind: PlatformConsole, BasePrice: 100, DisplayLabel: "PlayStation 4"},
}

// Durations is the static session-length catalog.
var Durations = []DurationOption{
	{ID: 1, Label: "1H", Hours: 1, Multiplier: 1, Text: "1 Hour"},
	{ID: 3, Label: "3H", Hours: 3, Multiplier: 3.0, Text: "3 Hours"},
	{ID: 5, Label: "5H", Hours: 5, Multiplier: 4.5, Text: "5 Hours"},
	{ID: 8, Label: "8H", Hours: 8, Multiplier: 6.8, Text: "8 Hours"},
}

// TierByID looks up a tier in the catalog.  The second return value is
// false when the id is unknown.
func TierByID(id string) (Tier, bool) {
	for _, t := range Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// DurationByID looks up a duration option in the catalog.
func DurationByID(id int) (DurationOption, bool) {
	for _, d := range Durations {
		if d.ID == id {
			return d, true
		}
	}
	return DurationOption{}, false
}
