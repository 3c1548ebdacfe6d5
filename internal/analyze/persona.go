package analyze

import (
	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/locale"
	"github.com/theirongolddev/cwrapped/internal/model"
)

const flavorCap = 4

// personaInput collects everything the classifier looks at.
type personaInput struct {
	Weekly        [7]int
	Hourly        map[int]int64
	TotalSessions int
	DaysInPeriod  int // recorded activity days, not the calendar span
	Insights      model.PromptInsights
	TotalTokens   int64
	TotalCost     float64
	StreakDays    int
}

// usageRatios are the time-of-day and day-of-week shares the cascade
// tests against. All are 0 when there is no activity at all.
type usageRatios struct {
	Weekend        float64
	Evening        float64 // 17:00-22:59
	Night          float64 // 21:00-02:59
	Morning        float64 // 05:00-09:59
	SessionsPerDay float64
}

func computeRatios(in personaInput) usageRatios {
	var r usageRatios

	totalWeekly := 0
	for _, n := range in.Weekly {
		totalWeekly += n
	}
	if totalWeekly > 0 {
		r.Weekend = float64(in.Weekly[0]+in.Weekly[6]) / float64(totalWeekly)
	}

	var totalHourly int64
	for _, n := range in.Hourly {
		totalHourly += n
	}
	if totalHourly > 0 {
		sum := func(hours ...int) float64 {
			var s int64
			for _, h := range hours {
				s += in.Hourly[h]
			}
			return float64(s) / float64(totalHourly)
		}
		r.Evening = sum(17, 18, 19, 20, 21, 22)
		r.Night = sum(21, 22, 23, 0, 1, 2)
		r.Morning = sum(5, 6, 7, 8, 9)
	}

	if in.DaysInPeriod > 0 {
		r.SessionsPerDay = float64(in.TotalSessions) / float64(in.DaysInPeriod)
	}
	return r
}

// classifyPersona runs the ordered first-match cascade and builds the
// flavor text. Rules after the first match still contribute traits,
// roasts, and hype; only the title is exclusive.
func classifyPersona(in personaInput, loc *locale.Table, pick locale.Picker) model.Persona {
	r := computeRatios(in)
	fb := in.Insights

	var key locale.PersonaKey
	var icon string
	switch {
	case r.Evening > 0.4 && r.SessionsPerDay > 4:
		key, icon = locale.PersonaInsomniacArchitect, "🌙"
	case r.Night > 0.5:
		key, icon = locale.PersonaVampireCoder, "🦇"
	case r.Morning > 0.4:
		key, icon = locale.PersonaEarlyBird, "🌅"
	case r.Weekend > 0.4:
		key, icon = locale.PersonaWeekdaySlacker, "⚔️"
	case r.SessionsPerDay > 6:
		key, icon = locale.PersonaNeedyOne, "🔥"
	case fb.UltrathinkCount > 3 && fb.CasualCount > 5:
		key, icon = locale.PersonaHotAndCold, "👑"
	case in.TotalCost > 200:
		key, icon = locale.PersonaWalkingWallet, "💎"
	case in.StreakDays > 10:
		key, icon = locale.PersonaObsessiveStreaker, "🏃"
	default:
		key, icon = locale.PersonaBoringNormie, "🎯"
	}
	text := loc.Persona(key)

	return model.Persona{
		Title:    text.Title,
		Subtitle: text.Subtitle,
		Icon:     icon,
		Traits:   personaTraits(fb, loc),
		Roast:    personaRoast(in, r, loc, pick),
		Hype:     personaHype(in, r, loc, pick),
	}
}

func personaTraits(fb model.PromptInsights, loc *locale.Table) []string {
	var traits []string
	if fb.CasualCount > 10 {
		traits = append(traits, loc.Trait(locale.TraitCasualCommands))
	}
	if fb.UltrathinkCount > 5 {
		traits = append(traits, loc.Trait(locale.TraitUltrathinkMode))
	}
	if fb.CommandCount > 50 {
		traits = append(traits, loc.Trait(locale.TraitCommandMaster))
	}
	if fb.ThanksCount > 30 {
		traits = append(traits, loc.Trait(locale.TraitPoliteGentleman))
	}
	if fb.RetryCount > 20 {
		traits = append(traits, loc.Trait(locale.TraitPerfectionist))
	}
	if fb.AveragePromptLength < 30 {
		traits = append(traits, loc.Trait(locale.TraitShortPrompts))
	} else if fb.AveragePromptLength > 100 {
		traits = append(traits, loc.Trait(locale.TraitVerboseExplainer))
	}
	return capStrings(traits, flavorCap)
}

func personaRoast(in personaInput, r usageRatios, loc *locale.Table, pick locale.Picker) []string {
	fb := in.Insights
	args := locale.Args{Cost: in.TotalCost, Days: in.StreakDays}
	line := func(key locale.LineKey) string {
		return loc.Line(key, args, pick)
	}

	var parts []string
	if fb.RetryCount > fb.ThanksCount*2 {
		parts = append(parts, line(locale.RoastComplaintsOnly))
	} else if fb.RetryCount > fb.ThanksCount {
		parts = append(parts, line(locale.RoastRetryOverThanks))
	}
	if fb.ThanksCount < 5 {
		parts = append(parts, line(locale.RoastNoThanks))
	}
	if in.TotalCost > 300 {
		parts = append(parts, line(locale.RoastHighCost))
	} else if in.TotalCost > 100 {
		parts = append(parts, line(locale.RoastModerateCost))
	}
	if r.Night > 0.6 {
		parts = append(parts, line(locale.RoastNightOwlExtreme))
	} else if r.Night > 0.4 {
		parts = append(parts, line(locale.RoastNightOwl))
	}
	if r.Morning < 0.1 {
		parts = append(parts, line(locale.RoastNoMorning))
	}
	if fb.AveragePromptLength > 200 {
		parts = append(parts, line(locale.RoastLongPrompts))
	} else if fb.AveragePromptLength > 100 {
		parts = append(parts, line(locale.RoastVerbosePrompts))
	}
	if fb.CommandCount < 10 && in.TotalSessions > 50 {
		parts = append(parts, line(locale.RoastNoCommands))
	}
	if fb.UltrathinkCount > 10 {
		parts = append(parts, line(locale.RoastUltrathinkAbuse))
	}
	if r.SessionsPerDay > 8 {
		parts = append(parts, line(locale.RoastTooNeedy))
	} else if r.SessionsPerDay > 5 {
		parts = append(parts, line(locale.RoastVeryNeedy))
	}
	if r.Weekend > 0.6 {
		parts = append(parts, line(locale.RoastWeekendOnly))
	}
	if r.Weekend < 0.1 && in.TotalSessions > 30 {
		parts = append(parts, line(locale.RoastWeekendCheater))
	}
	if fb.CasualCount > fb.ThanksCount*3 {
		parts = append(parts, line(locale.RoastTooCasual))
	}
	if in.StreakDays > 14 {
		parts = append(parts, line(locale.RoastLongStreak))
	}
	if len(parts) == 0 {
		parts = append(parts, line(locale.RoastDefault))
	}
	return capStrings(parts, flavorCap)
}

func personaHype(in personaInput, r usageRatios, loc *locale.Table, pick locale.Picker) []string {
	fb := in.Insights
	args := locale.Args{
		Days:   in.StreakDays,
		Tokens: cli.FormatTokens(in.TotalTokens),
	}
	line := func(key locale.LineKey) string {
		return loc.Line(key, args, pick)
	}

	var parts []string
	if in.StreakDays > 7 {
		parts = append(parts, line(locale.HypeLongStreak))
	}
	if in.TotalTokens > 1_000_000 {
		parts = append(parts, line(locale.HypeHighTokens))
	}
	if r.SessionsPerDay > 5 {
		parts = append(parts, line(locale.HypeManySessions))
	}
	if len(fb.TechnicalTerms) > 5 {
		parts = append(parts, line(locale.HypeTechnicalTerms))
	}
	if fb.UltrathinkCount > 0 {
		parts = append(parts, line(locale.HypeUsesUltrathink))
	}
	if r.Morning > 0.3 {
		parts = append(parts, line(locale.HypeMorningPerson))
	}
	if len(parts) == 0 {
		parts = append(parts, line(locale.HypeDefault))
	}
	return capStrings(parts, flavorCap)
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
