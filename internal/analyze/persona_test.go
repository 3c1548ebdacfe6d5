package analyze

import (
	"testing"

	"github.com/theirongolddev/cwrapped/internal/locale"
	"github.com/theirongolddev/cwrapped/internal/model"
)

func classify(t *testing.T, in personaInput) model.Persona {
	t.Helper()
	return classifyPersona(in, locale.ForTag("en"), locale.FirstVariant)
}

func TestComputeRatios(t *testing.T) {
	in := personaInput{
		Weekly: [7]int{10, 5, 5, 5, 5, 5, 15}, // Sun=10, Sat=15, total 50
		Hourly: map[int]int64{
			1: 20, 8: 10, 18: 30, 22: 40,
		}, // total 100
		TotalSessions: 30,
		DaysInPeriod:  10,
	}
	r := computeRatios(in)
	if r.Weekend != 0.5 {
		t.Errorf("Weekend = %f, want 0.5", r.Weekend)
	}
	if r.Evening != 0.7 { // 18 + 22
		t.Errorf("Evening = %f, want 0.7", r.Evening)
	}
	if r.Night != 0.6 { // 22 + 1
		t.Errorf("Night = %f, want 0.6", r.Night)
	}
	if r.Morning != 0.1 { // 8
		t.Errorf("Morning = %f, want 0.1", r.Morning)
	}
	if r.SessionsPerDay != 3 {
		t.Errorf("SessionsPerDay = %f, want 3", r.SessionsPerDay)
	}
}

func TestComputeRatiosNoActivity(t *testing.T) {
	r := computeRatios(personaInput{})
	if r.Weekend != 0 || r.Evening != 0 || r.Night != 0 || r.Morning != 0 || r.SessionsPerDay != 0 {
		t.Fatalf("ratios with no activity = %+v, want all zero", r)
	}
}

func TestPersonaCascadeOrder(t *testing.T) {
	en := locale.ForTag("en")
	tests := []struct {
		name string
		in   personaInput
		want locale.PersonaKey
	}{
		{
			name: "evening plus heavy sessions wins first",
			in: personaInput{
				// 22:00 counts toward both evening and night; night ratio
				// is 1.0 here yet the evening rule still wins on order
				Hourly:        map[int]int64{22: 60, 1: 40},
				TotalSessions: 50,
				DaysInPeriod:  10,
			},
			want: locale.PersonaInsomniacArchitect,
		},
		{
			name: "night without session density",
			in: personaInput{
				Hourly:        map[int]int64{1: 60, 12: 40},
				TotalSessions: 10,
				DaysInPeriod:  10,
			},
			want: locale.PersonaVampireCoder,
		},
		{
			name: "morning",
			in: personaInput{
				Hourly:       map[int]int64{6: 50, 12: 50},
				DaysInPeriod: 10,
			},
			want: locale.PersonaEarlyBird,
		},
		{
			name: "weekend",
			in: personaInput{
				Weekly:       [7]int{30, 5, 5, 5, 5, 5, 25},
				Hourly:       map[int]int64{12: 100},
				DaysInPeriod: 10,
			},
			want: locale.PersonaWeekdaySlacker,
		},
		{
			name: "session density alone",
			in: personaInput{
				Hourly:        map[int]int64{12: 100},
				TotalSessions: 70,
				DaysInPeriod:  10,
			},
			want: locale.PersonaNeedyOne,
		},
		{
			name: "deep think plus casual",
			in: personaInput{
				Insights:     model.PromptInsights{UltrathinkCount: 4, CasualCount: 6},
				DaysInPeriod: 10,
			},
			want: locale.PersonaHotAndCold,
		},
		{
			name: "high cost",
			in: personaInput{
				TotalCost:    250,
				DaysInPeriod: 10,
			},
			want: locale.PersonaWalkingWallet,
		},
		{
			name: "long streak",
			in: personaInput{
				StreakDays:   14,
				DaysInPeriod: 30,
			},
			want: locale.PersonaObsessiveStreaker,
		},
		{
			name: "fallback",
			in: personaInput{
				DaysInPeriod: 10,
			},
			want: locale.PersonaBoringNormie,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(t, tt.in)
			want := en.Persona(tt.want)
			if got.Title != want.Title {
				t.Fatalf("persona = %q, want %q", got.Title, want.Title)
			}
			if got.Icon == "" {
				t.Fatal("persona icon is empty")
			}
		})
	}
}

func TestPersonaTraitsCap(t *testing.T) {
	fb := model.PromptInsights{
		CasualCount:         20,
		UltrathinkCount:     10,
		CommandCount:        60,
		ThanksCount:         40,
		RetryCount:          30,
		AveragePromptLength: 10,
	}
	traits := personaTraits(fb, locale.ForTag("en"))
	if len(traits) != flavorCap {
		t.Fatalf("len(traits) = %d, want cap of %d", len(traits), flavorCap)
	}
}

func TestPersonaRoastDefaultWhenClean(t *testing.T) {
	in := personaInput{
		Insights: model.PromptInsights{
			ThanksCount:         10,
			CommandCount:        20,
			AveragePromptLength: 50,
		},
		TotalSessions: 10,
		DaysInPeriod:  10,
	}
	r := usageRatios{Weekend: 0.3, Morning: 0.2, SessionsPerDay: 1}
	roast := personaRoast(in, r, locale.ForTag("en"), locale.FirstVariant)
	if len(roast) != 1 {
		t.Fatalf("roast = %v, want exactly the default line", roast)
	}
}

func TestPersonaRoastOrderedAndCapped(t *testing.T) {
	in := personaInput{
		Insights: model.PromptInsights{
			ThanksCount:         1,
			RetryCount:          10, // > thanks*2
			AveragePromptLength: 250,
			UltrathinkCount:     15,
		},
		TotalCost:     400,
		TotalSessions: 60,
		StreakDays:    20,
		DaysInPeriod:  10,
	}
	r := usageRatios{Night: 0.7, Morning: 0.05, SessionsPerDay: 9}
	roast := personaRoast(in, r, locale.ForTag("en"), locale.FirstVariant)
	if len(roast) != flavorCap {
		t.Fatalf("len(roast) = %d, want cap of %d", len(roast), flavorCap)
	}
	// first rule in order is the complaints-vs-thanks comparison
	en := locale.ForTag("en")
	if roast[0] != en.Line(locale.RoastComplaintsOnly, locale.Args{}, locale.FirstVariant) {
		t.Fatalf("roast[0] = %q, want the complaints line first", roast[0])
	}
}

func TestPersonaHype(t *testing.T) {
	in := personaInput{
		Insights:    model.PromptInsights{UltrathinkCount: 1},
		TotalTokens: 2_000_000,
		StreakDays:  10,
	}
	r := usageRatios{SessionsPerDay: 6, Morning: 0.4}
	hype := personaHype(in, r, locale.ForTag("en"), locale.FirstVariant)
	if len(hype) != flavorCap {
		t.Fatalf("len(hype) = %d, want cap of %d", len(hype), flavorCap)
	}

	empty := personaHype(personaInput{}, usageRatios{}, locale.ForTag("en"), locale.FirstVariant)
	if len(empty) != 1 {
		t.Fatalf("hype with no signals = %v, want the default line", empty)
	}
}
