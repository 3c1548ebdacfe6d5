package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/theirongolddev/cwrapped/internal/locale"
	"github.com/theirongolddev/cwrapped/internal/model"
)

// Signal patterns are matched at most once per prompt: a prompt that
// says thanks three times still counts as one thankful prompt.
var (
	thanksRe     = regexp.MustCompile(`(?i)ありがとう|助かった|サンキュー|thanks|thank you`)
	retryRe      = regexp.MustCompile(`違う|やり直し|修正|変えて|直して|ダメ`)
	questionRe   = regexp.MustCompile(`どう|何|なぜ|いつ`)
	ultrathinkRe = regexp.MustCompile(`(?i)ultrathink|ultra\s*think`)
	casualRe     = regexp.MustCompile(`ばーか|馬鹿|うぜ|めんどい|やれ|しろ|だろ|じゃね|だな|かよ|ぞ$`)
	techTermRe   = regexp.MustCompile(`(?i)typescript|javascript|react|vue|node|python|git|api|mcp|claude|bun|npm|webpack|vite|docker|k8s|aws|gcp|azure|sql|postgres|mongodb|redis|graphql|rest|ci/cd|devops|agile|scrum|tdd|ddd`)
)

// PhraseExtractor mines recurring phrases out of the prompt corpus.
// The default implementation targets Japanese; other languages can
// plug in their own segmentation.
type PhraseExtractor interface {
	Extract(prompts []string) []model.PromptSignal
}

// JapanesePhrases mines recurring Japanese character runs, normalizing
// common verb endings so「修正して」and「修正する」count as one phrase.
type JapanesePhrases struct{}

var (
	japaneseRunRe   = regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FFF}]{2,15}`)
	phraseSuffixRe  = regexp.MustCompile(`(して|する|した|ください|くれ|てくれ)$`)
	phraseStopWords = map[string]bool{
		"して": true, "する": true, "した": true, "される": true, "された": true,
		"できる": true, "できた": true,
		"ある": true, "ない": true, "いる": true, "なる": true, "なった": true,
		"くれ": true, "ほしい": true,
		"から": true, "まで": true, "ため": true, "こと": true, "もの": true,
		"ところ": true, "とき": true,
		"それ": true, "これ": true, "あれ": true, "どれ": true,
		"そこ": true, "ここ": true, "あそこ": true,
		"その": true, "この": true, "あの": true, "どの": true,
		"そう": true, "こう": true, "ああ": true,
		"という": true, "といった": true, "ような": true, "みたいな": true, "として": true,
		"使う": true, "使って": true, "見る": true, "見て": true,
		"出す": true, "出して": true, "入れる": true, "入れて": true,
		"作る": true, "作って": true, "書く": true, "書いて": true,
	}
)

// Extract returns phrases seen at least twice, best five first.
func (JapanesePhrases) Extract(prompts []string) []model.PromptSignal {
	counts := make(map[string]int)
	for _, p := range prompts {
		for _, run := range japaneseRunRe.FindAllString(p, -1) {
			if phraseStopWords[run] || len([]rune(run)) < 3 {
				continue
			}
			normalized := phraseSuffixRe.ReplaceAllString(run, "")
			if len([]rune(normalized)) >= 2 {
				counts[normalized]++
			}
		}
	}

	var phrases []model.PromptSignal
	for phrase, count := range counts {
		if count >= 2 {
			phrases = append(phrases, model.PromptSignal{Phrase: phrase, Count: count})
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Count != phrases[j].Count {
			return phrases[i].Count > phrases[j].Count
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})
	if len(phrases) > 5 {
		phrases = phrases[:5]
	}
	return phrases
}

// analyzePrompts runs the full text-pattern pass over the filtered
// prompt log. With no prompts it returns zeroes and the no-data
// comment only.
func analyzePrompts(records []model.PromptRecord, extractor PhraseExtractor, loc *locale.Table, pick locale.Picker) model.PromptInsights {
	var prompts []string
	for _, rec := range records {
		if rec.Display != "" {
			prompts = append(prompts, rec.Display)
		}
	}
	if len(prompts) == 0 {
		return model.PromptInsights{
			Comments: []string{loc.Line(locale.CommentNoData, locale.Args{}, pick)},
		}
	}

	var insights model.PromptInsights

	totalLen := 0
	longest, shortest := prompts[0], prompts[0]
	for _, p := range prompts {
		totalLen += len([]rune(p))
		if len([]rune(p)) > len([]rune(longest)) {
			longest = p
		}
		if len([]rune(p)) <= len([]rune(shortest)) {
			shortest = p
		}
	}
	insights.AveragePromptLength = float64(totalLen) / float64(len(prompts))
	insights.LongestPrompt = model.PromptExtreme{Text: truncateRunes(longest, 100), Length: len([]rune(longest))}
	insights.ShortestPrompt = model.PromptExtreme{Text: shortest, Length: len([]rune(shortest))}

	for _, p := range prompts {
		if thanksRe.MatchString(p) {
			insights.ThanksCount++
		}
		if retryRe.MatchString(p) {
			insights.RetryCount++
		}
		if strings.Contains(p, "?") || strings.Contains(p, "？") || questionRe.MatchString(p) {
			insights.QuestionCount++
		}
		if strings.HasPrefix(p, "/") {
			insights.CommandCount++
		}
		if ultrathinkRe.MatchString(p) {
			insights.UltrathinkCount++
		}
		if casualRe.MatchString(p) {
			insights.CasualCount++
		}
	}

	insights.TechnicalTerms = topTechTerms(prompts)
	insights.TopPhrases = extractor.Extract(prompts)
	insights.Comments = promptComments(insights, len(records), loc, pick)
	return insights
}

// topTechTerms counts every technical-vocabulary hit (not once per
// prompt) and returns the ten most frequent terms, lowercased.
func topTechTerms(prompts []string) []string {
	counts := make(map[string]int)
	for _, p := range prompts {
		for _, m := range techTermRe.FindAllString(p, -1) {
			counts[strings.ToLower(m)]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > 10 {
		terms = terms[:10]
	}
	return terms
}

// promptComments builds the analyzer's running commentary. Thresholds
// are ratios of the total record count; every matching rule emits one
// line, and a fully unremarkable user gets the default.
func promptComments(in model.PromptInsights, total int, loc *locale.Table, pick locale.Picker) []string {
	line := func(key locale.LineKey) string {
		return loc.Line(key, locale.Args{}, pick)
	}
	n := float64(total)

	var comments []string
	if in.AveragePromptLength < 20 {
		comments = append(comments, line(locale.CommentShortPrompts))
	} else if in.AveragePromptLength > 100 {
		comments = append(comments, line(locale.CommentLongPrompts))
	}
	if float64(in.ThanksCount) > n*0.3 {
		comments = append(comments, line(locale.CommentPolite))
	} else if float64(in.ThanksCount) < n*0.05 {
		comments = append(comments, line(locale.CommentImpolite))
	}
	if float64(in.RetryCount) > n*0.2 {
		comments = append(comments, line(locale.CommentPerfectionist))
	}
	if float64(in.QuestionCount) > n*0.4 {
		comments = append(comments, line(locale.CommentCurious))
	}
	if in.UltrathinkCount > 5 {
		comments = append(comments, line(locale.CommentUltrathinkAbuse))
	}
	if float64(in.CasualCount) > n*0.3 {
		comments = append(comments, line(locale.CommentCasual))
	}
	if float64(in.CommandCount) > n*0.2 {
		comments = append(comments, line(locale.CommentCommandUser))
	}
	if len(comments) == 0 {
		comments = append(comments, line(locale.CommentDefault))
	}
	return comments
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
