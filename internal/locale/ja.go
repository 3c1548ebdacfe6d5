package locale

import "fmt"

var japaneseTable = &Table{
	Tag: "ja",
	Personas: map[PersonaKey]PersonaText{
		PersonaInsomniacArchitect: {
			Title:    "不眠のアーキテクト",
			Subtitle: "世界が眠る間に帝国を築く人",
		},
		PersonaVampireCoder: {
			Title:    "ヴァンパイアコーダー",
			Subtitle: "日光はコンパイルエラー",
		},
		PersonaEarlyBird: {
			Title:    "迷惑なほどの早起き",
			Subtitle: "あなたのコーヒーが入る前にリリース済み",
		},
		PersonaWeekdaySlacker: {
			Title:    "平日サボり族",
			Subtitle: "本気を出すのは週末らしい",
		},
		PersonaNeedyOne: {
			Title:    "かまってちゃん",
			Subtitle: "5分も質問せずにいられない",
		},
		PersonaHotAndCold: {
			Title:    "ツンデレタイプ",
			Subtitle: "ultrathinkの次の瞬間「てへぺろ直して」",
		},
		PersonaWalkingWallet: {
			Title:    "歩く財布",
			Subtitle: "Anthropicのお得意様",
		},
		PersonaObsessiveStreaker: {
			Title:    "連続記録の鬼",
			Subtitle: "1日でも休むなんてありえない",
		},
		PersonaBoringNormie: {
			Title:    "普通すぎる一般人",
			Subtitle: "完璧にバランスが取れていて逆に怪しい",
		},
	},
	Traits: map[TraitKey]string{
		TraitCasualCommands:   "AIを友達扱いしがち",
		TraitUltrathinkMode:   "ultrathinkを無料だと思っている",
		TraitCommandMaster:    "スラッシュコマンドの達人",
		TraitPoliteGentleman:  "必要以上にお礼を言う律儀な人",
		TraitPerfectionist:    "最初の回答では絶対に満足しない",
		TraitShortPrompts:     "言葉少なな人",
		TraitVerboseExplainer: "一文で済む話を長文で語る人",
	},
	Lines: map[LineKey][]Template{
		RoastNoThanks: {
			literal("ありがとうが一度もない。機械は覚えていますよ。"),
		},
		RoastComplaintsOnly: {
			literal("お礼の2倍も文句を言っている。厳しい客だ。"),
		},
		RoastRetryOverThanks: {
			literal("お礼よりやり直し要求のほうが多い。問題はAIじゃないのでは。"),
		},
		RoastHighCost: {
			func(a Args) string {
				return fmt.Sprintf("$%.2f?! サブスクじゃなくて車のローンでは。", a.Cost)
			},
			func(a Args) string {
				return fmt.Sprintf("コンピュータとの会話に$%.2f。よく考えてみてください。", a.Cost)
			},
		},
		RoastModerateCost: {
			func(a Args) string {
				return fmt.Sprintf("プロンプトに$%.2f。もっと安い趣味もありますよ。", a.Cost)
			},
		},
		RoastNightOwlExtreme: {
			literal("プロンプトの半分以上が夜。最近太陽を見ましたか?"),
		},
		RoastNightOwl: {
			literal("なかなかの夜勤体制ですね。"),
		},
		RoastNoMorning: {
			literal("朝?聞いたことがないようですね。"),
		},
		RoastLongPrompts: {
			literal("平均プロンプトが短編小説。Claudeは全部読みますが、それにしても。"),
		},
		RoastVerbosePrompts: {
			literal("説明がお好きなようで。"),
		},
		RoastNoCommands: {
			literal("50回以上のセッションでスラッシュコマンドほぼゼロ。ドキュメントが泣いています。"),
		},
		RoastUltrathinkAbuse: {
			literal("ultrathinkは調味料ではありません。何にでもかけないでください。"),
		},
		RoastTooNeedy: {
			literal("呼吸よりやり直し要求のほうが多い。"),
		},
		RoastVeryNeedy: {
			literal("「もう一回」がほぼ口癖になっています。"),
		},
		RoastWeekendOnly: {
			literal("ほぼ週末だけ。きっと会社が感謝しています。"),
		},
		RoastWeekendCheater: {
			literal("30回以上のセッションで週末ほぼゼロ。完全に仕事専用ですね。"),
		},
		RoastTooCasual: {
			literal("お礼1回につき「笑」が3回。ClaudeはグループLINEではありません。"),
		},
		RoastLongStreak: {
			func(a Args) string {
				return fmt.Sprintf("%d日連続。たまには外に出ましょう。", a.Days)
			},
		},
		RoastDefault: {
			literal("正直、いじるところがない。それはそれでつまらない。"),
			literal("優等生すぎてネタがない。残念です。"),
		},

		HypeLongStreak: {
			func(a Args) string {
				return fmt.Sprintf("%d日連続!本物の継続力です。", a.Days)
			},
		},
		HypeHighTokens: {
			func(a Args) string {
				return fmt.Sprintf("%sトークンを処理。小さな発電所レベルです。", a.Tokens)
			},
		},
		HypeManySessions: {
			literal("毎日何セッションも。止まらない人だ。"),
		},
		HypeTechnicalTerms: {
			literal("語彙がシニアエンジニアのそれ。リスペクト。"),
		},
		HypeUsesUltrathink: {
			literal("本気を出すタイミングを知っている。ultrathinkに敬意を。"),
		},
		HypeMorningPerson: {
			literal("みんなが起きる前に生産的。すごい。"),
		},
		HypeDefault: {
			literal("着実に、コンスタントに、仕事を進めている。その調子。"),
			literal("ドラマなし、ただ淡々とリリース。それが一番。"),
		},

		CommentShortPrompts: {
			literal("プロンプトが短く要点のみ。Claudeは簡潔さに感謝しています。"),
		},
		CommentLongPrompts: {
			literal("詳細なプロンプトと丁寧な文脈。Claudeが推測する必要がありません。"),
		},
		CommentPolite: {
			literal("AIに常にお礼を言う人。ロボットが台頭しても命は助かるでしょう。"),
			literal("丁寧すぎて逆に怪しい。AIは気づいていますよ。"),
		},
		CommentImpolite: {
			literal("お礼がほぼ見当たらない。完全にビジネスライク。"),
		},
		CommentPerfectionist: {
			literal("やり直し要求が多め。高い基準か、曖昧なプロンプトか。"),
		},
		CommentCurious: {
			literal("ほとんどが質問。果てしなく好奇心旺盛か、果てしなく迷子か。"),
		},
		CommentUltrathinkAbuse: {
			literal("ultrathinkを多用。難問続きか、信頼の問題か。"),
		},
		CommentCasual: {
			literal("プロンプトが友達へのメッセージみたい。Claudeは気にしていません。"),
		},
		CommentCommandUser: {
			literal("何にでもスラッシュコマンド。効率の権化。"),
		},
		CommentNoData: {
			literal("この期間のプロンプト履歴が見つかりませんでした。"),
		},
		CommentDefault: {
			literal("バランスの取れたプロンプトスタイル。特筆すべき点はありません。"),
		},
	},
}
