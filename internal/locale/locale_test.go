package locale

import (
	"strings"
	"testing"
)

func TestForTagFallsBackToEnglish(t *testing.T) {
	if got := ForTag("fr"); got.Tag != "en" {
		t.Fatalf("ForTag(fr) = %q, want en", got.Tag)
	}
	if got := ForTag("ja"); got.Tag != "ja" {
		t.Fatalf("ForTag(ja) = %q, want ja", got.Tag)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		cliLang string
		env     string
		want    string
	}{
		{"ja", "", "ja"},
		{"jp", "", "ja"},
		{"en", "ja_JP.UTF-8", "en"},
		{"", "ja_JP.UTF-8", "ja"},
		{"", "en_US.UTF-8", "en"},
		{"", "", "en"},
		{"klingon", "", "en"},
	}
	for _, tt := range tests {
		t.Setenv("LANG", tt.env)
		t.Setenv("LC_ALL", "")
		if got := Detect(tt.cliLang); got != tt.want {
			t.Errorf("Detect(%q) with LANG=%q = %q, want %q", tt.cliLang, tt.env, got, tt.want)
		}
	}
}

func TestTablesShareKeys(t *testing.T) {
	en, ja := ForTag("en"), ForTag("ja")

	for key := range en.Personas {
		if _, ok := ja.Personas[key]; !ok {
			t.Errorf("japanese table missing persona %q", key)
		}
	}
	for key := range en.Traits {
		if _, ok := ja.Traits[key]; !ok {
			t.Errorf("japanese table missing trait %q", key)
		}
	}
	for key := range en.Lines {
		if _, ok := ja.Lines[key]; !ok {
			t.Errorf("japanese table missing line %q", key)
		}
	}
	for key := range ja.Lines {
		if _, ok := en.Lines[key]; !ok {
			t.Errorf("english table missing line %q", key)
		}
	}
}

func TestLineInterpolation(t *testing.T) {
	en := ForTag("en")
	got := en.Line(RoastLongStreak, Args{Days: 21}, FirstVariant)
	if !strings.Contains(got, "21") {
		t.Fatalf("RoastLongStreak = %q, want day count interpolated", got)
	}
	got = en.Line(HypeHighTokens, Args{Tokens: "2.4M"}, FirstVariant)
	if !strings.Contains(got, "2.4M") {
		t.Fatalf("HypeHighTokens = %q, want token count interpolated", got)
	}
}

func TestLinePickerSelectsVariant(t *testing.T) {
	en := ForTag("en")
	first := en.Line(RoastDefault, Args{}, FirstVariant)
	second := en.Line(RoastDefault, Args{}, func(n int) int { return n - 1 })
	if first == second {
		t.Fatalf("expected distinct variants for roastDefault, both %q", first)
	}
	// out-of-range picker clamps to the first variant
	clamped := en.Line(RoastDefault, Args{}, func(int) int { return 99 })
	if clamped != first {
		t.Fatalf("out-of-range pick = %q, want %q", clamped, first)
	}
}

func TestUnknownLineIsEmpty(t *testing.T) {
	en := ForTag("en")
	if got := en.Line(LineKey("nope"), Args{}, FirstVariant); got != "" {
		t.Fatalf("unknown line = %q, want empty", got)
	}
}
