// Package locale holds the per-language string tables for persona
// titles, traits, and generated roast/hype/comment lines. Tables for
// every language share one set of logical keys so the threshold logic
// in the analyzer never forks per locale.
package locale

import (
	"math/rand"
	"os"
	"strings"
	"time"
)

// Picker selects one of n phrasing variants. Injectable so tests can
// pin output; the default is a seeded math/rand source.
type Picker func(n int) int

// DefaultPicker returns a time-seeded variant picker.
func DefaultPicker() Picker {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		return rng.Intn(n)
	}
}

// FirstVariant always picks the first phrasing. Used in tests and
// anywhere deterministic output is required.
func FirstVariant(int) int { return 0 }

// PersonaKey identifies one persona across all locales.
type PersonaKey string

// Persona keys, in cascade order.
const (
	PersonaInsomniacArchitect PersonaKey = "insomniacArchitect"
	PersonaVampireCoder       PersonaKey = "vampireCoder"
	PersonaEarlyBird          PersonaKey = "annoyinglyEarlyBird"
	PersonaWeekdaySlacker     PersonaKey = "weekdaySlacker"
	PersonaNeedyOne           PersonaKey = "needyOne"
	PersonaHotAndCold         PersonaKey = "hotAndColdType"
	PersonaWalkingWallet      PersonaKey = "walkingWallet"
	PersonaObsessiveStreaker  PersonaKey = "obsessiveStreaker"
	PersonaBoringNormie       PersonaKey = "boringNormie"
)

// TraitKey identifies one trait string.
type TraitKey string

// Trait keys.
const (
	TraitCasualCommands   TraitKey = "casualCommands"
	TraitUltrathinkMode   TraitKey = "ultrathinkMode"
	TraitCommandMaster    TraitKey = "commandMaster"
	TraitPoliteGentleman  TraitKey = "politeGentleman"
	TraitPerfectionist    TraitKey = "perfectionist"
	TraitShortPrompts     TraitKey = "shortPrompts"
	TraitVerboseExplainer TraitKey = "verboseExplainer"
)

// LineKey identifies one roast, hype, or comment template.
type LineKey string

// Roast keys.
const (
	RoastNoThanks          LineKey = "noThanks"
	RoastComplaintsOnly    LineKey = "moreComplaintsThanThanks"
	RoastRetryOverThanks   LineKey = "retryMoreThanThanks"
	RoastHighCost          LineKey = "highCost"
	RoastModerateCost      LineKey = "moderateCost"
	RoastNightOwlExtreme   LineKey = "nightOwlExtreme"
	RoastNightOwl          LineKey = "nightOwl"
	RoastNoMorning         LineKey = "noMorning"
	RoastLongPrompts       LineKey = "longPrompts"
	RoastVerbosePrompts    LineKey = "verbosePrompts"
	RoastNoCommands        LineKey = "noCommands"
	RoastUltrathinkAbuse   LineKey = "ultrathinkAbuse"
	RoastTooNeedy          LineKey = "tooNeedy"
	RoastVeryNeedy         LineKey = "veryNeedy"
	RoastWeekendOnly       LineKey = "weekendOnly"
	RoastWeekendCheater    LineKey = "weekendCheater"
	RoastTooCasual         LineKey = "tooCasual"
	RoastLongStreak        LineKey = "longStreak"
	RoastDefault           LineKey = "roastDefault"
)

// Hype keys.
const (
	HypeLongStreak     LineKey = "hypeLongStreak"
	HypeHighTokens     LineKey = "highTokens"
	HypeManySessions   LineKey = "manySessions"
	HypeTechnicalTerms LineKey = "hypeTechnicalTerms"
	HypeUsesUltrathink LineKey = "usesUltrathink"
	HypeMorningPerson  LineKey = "morningPerson"
	HypeDefault        LineKey = "hypeDefault"
)

// Comment keys.
const (
	CommentShortPrompts    LineKey = "commentShortPrompts"
	CommentLongPrompts     LineKey = "commentLongPrompts"
	CommentPolite          LineKey = "polite"
	CommentImpolite        LineKey = "impolite"
	CommentPerfectionist   LineKey = "commentPerfectionist"
	CommentCurious         LineKey = "curious"
	CommentUltrathinkAbuse LineKey = "commentUltrathinkAbuse"
	CommentCasual          LineKey = "commentCasual"
	CommentCommandUser     LineKey = "commandUser"
	CommentNoData          LineKey = "noData"
	CommentDefault         LineKey = "commentDefault"
)

// Args carries the values templates may interpolate.
type Args struct {
	Cost   float64
	Days   int
	Tokens string // pre-abbreviated token count, e.g. "1.5M"
}

// Template renders one line from its arguments.
type Template func(Args) string

// PersonaText is a persona's localized title and subtitle.
type PersonaText struct {
	Title    string
	Subtitle string
}

// Table is one language's complete string table.
type Table struct {
	Tag      string
	Personas map[PersonaKey]PersonaText
	Traits   map[TraitKey]string
	Lines    map[LineKey][]Template
}

// Persona returns the localized text for a persona key.
func (t *Table) Persona(key PersonaKey) PersonaText {
	return t.Personas[key]
}

// Trait returns the localized trait string.
func (t *Table) Trait(key TraitKey) string {
	return t.Traits[key]
}

// Line renders one roast/hype/comment line, picking among phrasing
// variants with the given picker.
func (t *Table) Line(key LineKey, a Args, pick Picker) string {
	variants := t.Lines[key]
	if len(variants) == 0 {
		return ""
	}
	idx := pick(len(variants))
	if idx < 0 || idx >= len(variants) {
		idx = 0
	}
	return variants[idx](a)
}

var tables = map[string]*Table{
	"en": englishTable,
	"ja": japaneseTable,
}

// ForTag returns the table for a language tag, falling back to English.
func ForTag(tag string) *Table {
	if t, ok := tables[tag]; ok {
		return t
	}
	return englishTable
}

// Detect resolves the report language: CLI flag first, then the
// LANG/LC_ALL environment, then English.
func Detect(cliLang string) string {
	switch strings.ToLower(cliLang) {
	case "ja", "jp", "japanese":
		return "ja"
	case "en", "english":
		return "en"
	}

	env := os.Getenv("LANG")
	if env == "" {
		env = os.Getenv("LC_ALL")
	}
	if strings.HasPrefix(strings.ToLower(env), "ja") {
		return "ja"
	}
	return "en"
}

func literal(s string) Template {
	return func(Args) string { return s }
}
