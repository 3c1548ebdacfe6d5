package locale

import "fmt"

var englishTable = &Table{
	Tag: "en",
	Personas: map[PersonaKey]PersonaText{
		PersonaInsomniacArchitect: {
			Title:    "The Insomniac Architect",
			Subtitle: "Building empires while the world sleeps",
		},
		PersonaVampireCoder: {
			Title:    "The Vampire Coder",
			Subtitle: "Sunlight is a compile error",
		},
		PersonaEarlyBird: {
			Title:    "The Annoyingly Early Bird",
			Subtitle: "Shipping before your coffee is brewed",
		},
		PersonaWeekdaySlacker: {
			Title:    "The Weekday Slacker",
			Subtitle: "Weekends are for real work, apparently",
		},
		PersonaNeedyOne: {
			Title:    "The Needy One",
			Subtitle: "Can't go five minutes without asking something",
		},
		PersonaHotAndCold: {
			Title:    "The Hot and Cold Type",
			Subtitle: "ultrathink one minute, 'lol fix it' the next",
		},
		PersonaWalkingWallet: {
			Title:    "The Walking Wallet",
			Subtitle: "Anthropic's favorite customer",
		},
		PersonaObsessiveStreaker: {
			Title:    "The Obsessive Streaker",
			Subtitle: "Missing a day is not an option",
		},
		PersonaBoringNormie: {
			Title:    "The Boring Normie",
			Subtitle: "Perfectly balanced, suspiciously normal",
		},
	},
	Traits: map[TraitKey]string{
		TraitCasualCommands:   "Treats the AI like a buddy",
		TraitUltrathinkMode:   "Reaches for ultrathink like it's free",
		TraitCommandMaster:    "Slash command power user",
		TraitPoliteGentleman:  "Says thanks more than strictly necessary",
		TraitPerfectionist:    "Never satisfied with the first answer",
		TraitShortPrompts:     "A person of few words",
		TraitVerboseExplainer: "Writes essays where a sentence would do",
	},
	Lines: map[LineKey][]Template{
		RoastNoThanks: {
			literal("Not a single thank you. The machines will remember this."),
		},
		RoastComplaintsOnly: {
			literal("You complain twice as often as you thank. Tough crowd."),
		},
		RoastRetryOverThanks: {
			literal("More retries than thanks. Maybe the problem isn't the AI."),
		},
		RoastHighCost: {
			func(a Args) string {
				return fmt.Sprintf("$%.2f?! That's not a subscription, that's a car payment.", a.Cost)
			},
			func(a Args) string {
				return fmt.Sprintf("You spent $%.2f talking to a computer. Let that sink in.", a.Cost)
			},
		},
		RoastModerateCost: {
			func(a Args) string {
				return fmt.Sprintf("$%.2f on prompts. There are cheaper hobbies.", a.Cost)
			},
		},
		RoastNightOwlExtreme: {
			literal("Over half your prompts land after dark. Have you seen the sun lately?"),
		},
		RoastNightOwl: {
			literal("Quite the night shift you're running there."),
		},
		RoastNoMorning: {
			literal("Mornings? Never heard of them, apparently."),
		},
		RoastLongPrompts: {
			literal("Your average prompt is a short novel. Claude reads it all, but still."),
		},
		RoastVerbosePrompts: {
			literal("You do like to elaborate, don't you."),
		},
		RoastNoCommands: {
			literal("Fifty-plus sessions and barely any slash commands. The docs miss you."),
		},
		RoastUltrathinkAbuse: {
			literal("ultrathink is not a seasoning. You can't sprinkle it on everything."),
		},
		RoastTooNeedy: {
			literal("You retry more than you breathe."),
		},
		RoastVeryNeedy: {
			literal("\"Try again\" is basically your catchphrase."),
		},
		RoastWeekendOnly: {
			literal("Mostly weekends. Your employer thanks you, probably."),
		},
		RoastWeekendCheater: {
			literal("Thirty-plus sessions and almost zero on weekends. Strictly business."),
		},
		RoastTooCasual: {
			literal("Three 'lol's for every thanks. Claude is not your group chat."),
		},
		RoastLongStreak: {
			func(a Args) string {
				return fmt.Sprintf("A %d-day streak. Touch grass occasionally.", a.Days)
			},
		},
		RoastDefault: {
			literal("Honestly? Nothing to roast. Which is its own kind of boring."),
			literal("You're so well-behaved there's nothing to make fun of. Disappointing."),
		},

		HypeLongStreak: {
			func(a Args) string {
				return fmt.Sprintf("%d days in a row! That's real dedication.", a.Days)
			},
		},
		HypeHighTokens: {
			func(a Args) string {
				return fmt.Sprintf("%s tokens processed. You're running a small power plant.", a.Tokens)
			},
		},
		HypeManySessions: {
			literal("Multiple sessions a day, every day. Relentless."),
		},
		HypeTechnicalTerms: {
			literal("Your vocabulary says senior engineer. Respect."),
		},
		HypeUsesUltrathink: {
			literal("You know when to bring out the big guns. ultrathink respect."),
		},
		HypeMorningPerson: {
			literal("Productive before most people wake up. Impressive."),
		},
		HypeDefault: {
			literal("Steady, consistent, getting things done. Keep it up."),
			literal("No drama, just shipping. That's the way."),
		},

		CommentShortPrompts: {
			literal("Your prompts are short and to the point. Claude appreciates the brevity."),
		},
		CommentLongPrompts: {
			literal("Detailed prompts, thorough context. Claude never has to guess."),
		},
		CommentPolite: {
			literal("You thank the AI constantly. When the robots rise, you'll be spared."),
			literal("So polite it's almost suspicious. The AI notices, you know."),
		},
		CommentImpolite: {
			literal("Barely a thank you in sight. All business."),
		},
		CommentPerfectionist: {
			literal("You ask for retries a lot. High standards or unclear prompts?"),
		},
		CommentCurious: {
			literal("Mostly questions. Endlessly curious, or endlessly lost."),
		},
		CommentUltrathinkAbuse: {
			literal("Heavy ultrathink usage. Either hard problems or trust issues."),
		},
		CommentCasual: {
			literal("Your prompts read like texts to a friend. Claude doesn't mind."),
		},
		CommentCommandUser: {
			literal("A slash command for everything. Efficiency incarnate."),
		},
		CommentNoData: {
			literal("No prompt history found for this period."),
		},
		CommentDefault: {
			literal("A balanced prompting style. Nothing unusual to report."),
		},
	},
}
