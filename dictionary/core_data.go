package dictionary

// coreSeed is the built-in hardcoded core layer from spec §4.3 (layer 1,
// always present regardless of whether a binary core dictionary was ever
// loaded). It is small and representative rather than exhaustive — it
// exists to make the analyzer usable out of the box and to anchor the
// concrete scenarios in spec §8; production deployments are expected to
// load a binary or CSV dictionary as an additional layer via
// Manager.AddUserDictionary / Manager.LoadCoreBinary.
var coreSeed = []*DictionaryEntry{
	// prefixes
	{Surface: "お", POS: Prefix, Cost: 1.0, Lemma: "お", Reading: "お", Flags: IsPrefix},
	{Surface: "ご", POS: Prefix, Cost: 1.0, Lemma: "ご", Reading: "ご", Flags: IsPrefix},

	// nouns
	{Surface: "水", POS: Noun, Cost: 2.0, Lemma: "水", Reading: "みず"},
	{Surface: "木", POS: Noun, Cost: 2.0, Lemma: "木", Reading: "き"},
	{Surface: "本", POS: Noun, Cost: 2.0, Lemma: "本", Reading: "ほん"},
	{Surface: "人", POS: Noun, Cost: 2.0, Lemma: "人", Reading: "ひと"},
	{Surface: "今日", POS: Noun, Cost: 2.0, Lemma: "今日", Reading: "きょう"},
	{Surface: "明日", POS: Noun, Cost: 2.0, Lemma: "明日", Reading: "あした"},
	{Surface: "昨日", POS: Noun, Cost: 2.0, Lemma: "昨日", Reading: "きのう"},
	{Surface: "勉強", POS: Noun, Cost: 2.0, Lemma: "勉強", Reading: "べんきょう"},
	{Surface: "開発", POS: Noun, Cost: 2.0, Lemma: "開発", Reading: "かいはつ"},
	{Surface: "学校", POS: Noun, Cost: 2.0, Lemma: "学校", Reading: "がっこう"},
	{Surface: "会社", POS: Noun, Cost: 2.0, Lemma: "会社", Reading: "かいしゃ"},
	{Surface: "仕事", POS: Noun, Cost: 2.0, Lemma: "仕事", Reading: "しごと"},
	{Surface: "時間", POS: Noun, Cost: 2.0, Lemma: "時間", Reading: "じかん"},
	{Surface: "電話", POS: Noun, Cost: 2.0, Lemma: "電話", Reading: "でんわ"},
	{Surface: "映画", POS: Noun, Cost: 2.0, Lemma: "映画", Reading: "えいが"},
	{Surface: "音楽", POS: Noun, Cost: 2.0, Lemma: "音楽", Reading: "おんがく"},
	{Surface: "料理", POS: Noun, Cost: 2.0, Lemma: "料理", Reading: "りょうり"},
	{Surface: "天気", POS: Noun, Cost: 2.0, Lemma: "天気", Reading: "てんき"},
	{Surface: "子供", POS: Noun, Cost: 2.0, Lemma: "子供", Reading: "こども"},
	{Surface: "先生", POS: Noun, Cost: 2.0, Lemma: "先生", Reading: "せんせい"},
	{Surface: "学生", POS: Noun, Cost: 2.0, Lemma: "学生", Reading: "がくせい"},
	{Surface: "友達", POS: Noun, Cost: 2.0, Lemma: "友達", Reading: "ともだち"},
	{Surface: "家", POS: Noun, Cost: 2.0, Lemma: "家", Reading: "いえ"},
	{Surface: "車", POS: Noun, Cost: 2.0, Lemma: "車", Reading: "くるま"},
	{Surface: "駅", POS: Noun, Cost: 2.0, Lemma: "駅", Reading: "えき"},
	{Surface: "店", POS: Noun, Cost: 2.0, Lemma: "店", Reading: "みせ"},
	{Surface: "国", POS: Noun, Cost: 2.0, Lemma: "国", Reading: "くに"},
	{Surface: "世界", POS: Noun, Cost: 2.0, Lemma: "世界", Reading: "せかい"},
	{Surface: "問題", POS: Noun, Cost: 2.0, Lemma: "問題", Reading: "もんだい"},
	{Surface: "情報", POS: Noun, Cost: 2.0, Lemma: "情報", Reading: "じょうほう"},
	{Surface: "研究", POS: Noun, Cost: 2.0, Lemma: "研究", Reading: "けんきゅう"},
	{Surface: "日本", POS: Noun, Cost: 2.0, Lemma: "日本", Reading: "にほん"},
	{Surface: "東京", POS: Noun, Cost: 2.0, Lemma: "東京", Reading: "とうきょう"},
	{Surface: "日本語", POS: Noun, Cost: 2.0, Lemma: "日本語", Reading: "にほんご"},
	{Surface: "英語", POS: Noun, Cost: 2.0, Lemma: "英語", Reading: "えいご"},
	{Surface: "月", POS: Noun, Cost: 2.2, Lemma: "月", Reading: "つき"},
	{Surface: "日", POS: Noun, Cost: 2.2, Lemma: "日", Reading: "ひ"},
	{Surface: "年", POS: Noun, Cost: 2.2, Lemma: "年", Reading: "とし"},
	{Surface: "円", POS: Noun, Cost: 2.2, Lemma: "円", Reading: "えん"},
	{Surface: "Web", POS: Noun, Cost: 2.0, Lemma: "Web", Reading: "web", Flags: IsFormalNoun},

	// formal (low-content) nouns
	{Surface: "こと", POS: Noun, Cost: 1.5, Lemma: "こと", Reading: "こと", Flags: IsFormalNoun},
	{Surface: "もの", POS: Noun, Cost: 1.5, Lemma: "もの", Reading: "もの", Flags: IsFormalNoun},
	{Surface: "ため", POS: Noun, Cost: 1.5, Lemma: "ため", Reading: "ため", Flags: IsFormalNoun},
	{Surface: "とき", POS: Noun, Cost: 1.5, Lemma: "とき", Reading: "とき", Flags: IsFormalNoun},
	{Surface: "ところ", POS: Noun, Cost: 1.5, Lemma: "ところ", Reading: "ところ", Flags: IsFormalNoun},
	{Surface: "わけ", POS: Noun, Cost: 1.5, Lemma: "わけ", Reading: "わけ", Flags: IsFormalNoun},
	{Surface: "はず", POS: Noun, Cost: 1.5, Lemma: "はず", Reading: "はず", Flags: IsFormalNoun},

	// pronouns
	{Surface: "これ", POS: Pronoun, Cost: 1.0, Lemma: "これ", Reading: "これ"},
	{Surface: "それ", POS: Pronoun, Cost: 1.0, Lemma: "それ", Reading: "それ"},
	{Surface: "あれ", POS: Pronoun, Cost: 1.0, Lemma: "あれ", Reading: "あれ"},
	{Surface: "どれ", POS: Pronoun, Cost: 1.0, Lemma: "どれ", Reading: "どれ"},
	{Surface: "ここ", POS: Pronoun, Cost: 1.0, Lemma: "ここ", Reading: "ここ"},
	{Surface: "そこ", POS: Pronoun, Cost: 1.0, Lemma: "そこ", Reading: "そこ"},
	{Surface: "どこ", POS: Pronoun, Cost: 1.0, Lemma: "どこ", Reading: "どこ"},
	{Surface: "私", POS: Pronoun, Cost: 1.2, Lemma: "私", Reading: "わたし"},
	{Surface: "あなた", POS: Pronoun, Cost: 1.2, Lemma: "あなた", Reading: "あなた"},
	{Surface: "彼", POS: Pronoun, Cost: 1.4, Lemma: "彼", Reading: "かれ"},
	{Surface: "彼女", POS: Pronoun, Cost: 1.4, Lemma: "彼女", Reading: "かのじょ"},
	{Surface: "誰", POS: Pronoun, Cost: 1.2, Lemma: "誰", Reading: "だれ"},
	{Surface: "何", POS: Pronoun, Cost: 1.2, Lemma: "何", Reading: "なに"},

	// determiners
	{Surface: "この", POS: Determiner, Cost: 0.8, Lemma: "この", Reading: "この"},
	{Surface: "その", POS: Determiner, Cost: 0.8, Lemma: "その", Reading: "その"},
	{Surface: "あの", POS: Determiner, Cost: 0.8, Lemma: "あの", Reading: "あの"},
	{Surface: "どの", POS: Determiner, Cost: 0.8, Lemma: "どの", Reading: "どの"},

	// particles
	{Surface: "を", POS: Particle, Cost: 0.5, Lemma: "を", Reading: "を"},
	{Surface: "は", POS: Particle, Cost: 0.5, Lemma: "は", Reading: "は"},
	{Surface: "が", POS: Particle, Cost: 0.5, Lemma: "が", Reading: "が"},
	{Surface: "に", POS: Particle, Cost: 0.5, Lemma: "に", Reading: "に"},
	{Surface: "で", POS: Particle, Cost: 0.5, Lemma: "で", Reading: "で"},
	{Surface: "と", POS: Particle, Cost: 0.5, Lemma: "と", Reading: "と"},
	{Surface: "の", POS: Particle, Cost: 0.5, Lemma: "の", Reading: "の"},
	{Surface: "も", POS: Particle, Cost: 0.5, Lemma: "も", Reading: "も"},
	{Surface: "へ", POS: Particle, Cost: 0.5, Lemma: "へ", Reading: "へ"},
	{Surface: "や", POS: Particle, Cost: 0.5, Lemma: "や", Reading: "や"},
	{Surface: "か", POS: Particle, Cost: 0.6, Lemma: "か", Reading: "か"},
	{Surface: "ね", POS: Particle, Cost: 0.6, Lemma: "ね", Reading: "ね"},
	{Surface: "よ", POS: Particle, Cost: 0.6, Lemma: "よ", Reading: "よ"},
	{Surface: "て", POS: Particle, Cost: 0.6, Lemma: "て", Reading: "て"},
	{Surface: "から", POS: Particle, Cost: 0.5, Lemma: "から", Reading: "から"},
	{Surface: "まで", POS: Particle, Cost: 0.5, Lemma: "まで", Reading: "まで"},
	{Surface: "より", POS: Particle, Cost: 0.5, Lemma: "より", Reading: "より"},
	{Surface: "だけ", POS: Particle, Cost: 0.5, Lemma: "だけ", Reading: "だけ"},
	{Surface: "しか", POS: Particle, Cost: 0.5, Lemma: "しか", Reading: "しか"},
	{Surface: "など", POS: Particle, Cost: 0.5, Lemma: "など", Reading: "など"},
	{Surface: "ので", POS: Particle, Cost: 0.5, Lemma: "ので", Reading: "ので"},
	{Surface: "のに", POS: Particle, Cost: 0.5, Lemma: "のに", Reading: "のに"},
	{Surface: "けど", POS: Particle, Cost: 0.6, Lemma: "けど", Reading: "けど"},

	// conjunctions
	{Surface: "そして", POS: Conjunction, Cost: 1.0, Lemma: "そして", Reading: "そして"},
	{Surface: "しかし", POS: Conjunction, Cost: 1.0, Lemma: "しかし", Reading: "しかし"},
	{Surface: "でも", POS: Conjunction, Cost: 1.0, Lemma: "でも", Reading: "でも"},
	{Surface: "だから", POS: Conjunction, Cost: 1.0, Lemma: "だから", Reading: "だから"},
	{Surface: "また", POS: Conjunction, Cost: 1.0, Lemma: "また", Reading: "また"},

	// adverbs
	{Surface: "とても", POS: Adverb, Cost: 1.2, Lemma: "とても", Reading: "とても"},
	{Surface: "もう", POS: Adverb, Cost: 1.2, Lemma: "もう", Reading: "もう"},
	{Surface: "まだ", POS: Adverb, Cost: 1.2, Lemma: "まだ", Reading: "まだ"},
	{Surface: "すぐ", POS: Adverb, Cost: 1.2, Lemma: "すぐ", Reading: "すぐ"},
	{Surface: "よく", POS: Adverb, Cost: 1.2, Lemma: "よく", Reading: "よく"},
	{Surface: "ちょっと", POS: Adverb, Cost: 1.2, Lemma: "ちょっと", Reading: "ちょっと"},
	{Surface: "たくさん", POS: Adverb, Cost: 1.2, Lemma: "たくさん", Reading: "たくさん"},
	{Surface: "いつも", POS: Adverb, Cost: 1.2, Lemma: "いつも", Reading: "いつも"},

	// i-adjectives and na-adjectives
	{Surface: "大きい", POS: Adjective, Cost: 2.0, Lemma: "大きい", Reading: "おおきい", ConjType: IAdjective},
	{Surface: "小さい", POS: Adjective, Cost: 2.0, Lemma: "小さい", Reading: "ちいさい", ConjType: IAdjective},
	{Surface: "高い", POS: Adjective, Cost: 2.0, Lemma: "高い", Reading: "たかい", ConjType: IAdjective},
	{Surface: "安い", POS: Adjective, Cost: 2.0, Lemma: "安い", Reading: "やすい", ConjType: IAdjective},
	{Surface: "新しい", POS: Adjective, Cost: 2.0, Lemma: "新しい", Reading: "あたらしい", ConjType: IAdjective},
	{Surface: "古い", POS: Adjective, Cost: 2.0, Lemma: "古い", Reading: "ふるい", ConjType: IAdjective},
	{Surface: "良い", POS: Adjective, Cost: 2.0, Lemma: "良い", Reading: "よい", ConjType: IAdjective},
	{Surface: "悪い", POS: Adjective, Cost: 2.0, Lemma: "悪い", Reading: "わるい", ConjType: IAdjective},
	{Surface: "楽しい", POS: Adjective, Cost: 2.0, Lemma: "楽しい", Reading: "たのしい", ConjType: IAdjective},
	{Surface: "難しい", POS: Adjective, Cost: 2.0, Lemma: "難しい", Reading: "むずかしい", ConjType: IAdjective},
	{Surface: "面白い", POS: Adjective, Cost: 2.0, Lemma: "面白い", Reading: "おもしろい", ConjType: IAdjective},
	{Surface: "早い", POS: Adjective, Cost: 2.0, Lemma: "早い", Reading: "はやい", ConjType: IAdjective},
	{Surface: "美しい", POS: Adjective, Cost: 2.0, Lemma: "美しい", Reading: "うつくしい", ConjType: IAdjective},
	{Surface: "綺麗", POS: Adjective, Cost: 2.0, Lemma: "綺麗", Reading: "きれい", ConjType: NaAdjective},
	{Surface: "静か", POS: Adjective, Cost: 2.0, Lemma: "静か", Reading: "しずか", ConjType: NaAdjective},
	{Surface: "元気", POS: Adjective, Cost: 2.0, Lemma: "元気", Reading: "げんき", ConjType: NaAdjective},
	{Surface: "簡単", POS: Adjective, Cost: 2.0, Lemma: "簡単", Reading: "かんたん", ConjType: NaAdjective},
	{Surface: "有名", POS: Adjective, Cost: 2.0, Lemma: "有名", Reading: "ゆうめい", ConjType: NaAdjective},
	{Surface: "大切", POS: Adjective, Cost: 2.0, Lemma: "大切", Reading: "たいせつ", ConjType: NaAdjective},

	// godan verbs
	{Surface: "書く", POS: Verb, Cost: 2.0, Lemma: "書く", Reading: "かく", ConjType: GodanKa},
	{Surface: "聞く", POS: Verb, Cost: 2.0, Lemma: "聞く", Reading: "きく", ConjType: GodanKa},
	{Surface: "行く", POS: Verb, Cost: 2.0, Lemma: "行く", Reading: "いく", ConjType: GodanKa},
	{Surface: "歩く", POS: Verb, Cost: 2.0, Lemma: "歩く", Reading: "あるく", ConjType: GodanKa},
	{Surface: "泳ぐ", POS: Verb, Cost: 2.0, Lemma: "泳ぐ", Reading: "およぐ", ConjType: GodanGa},
	{Surface: "急ぐ", POS: Verb, Cost: 2.0, Lemma: "急ぐ", Reading: "いそぐ", ConjType: GodanGa},
	{Surface: "話す", POS: Verb, Cost: 2.0, Lemma: "話す", Reading: "はなす", ConjType: GodanSa},
	{Surface: "出す", POS: Verb, Cost: 2.0, Lemma: "出す", Reading: "だす", ConjType: GodanSa},
	{Surface: "待つ", POS: Verb, Cost: 2.0, Lemma: "待つ", Reading: "まつ", ConjType: GodanTa},
	{Surface: "持つ", POS: Verb, Cost: 2.0, Lemma: "持つ", Reading: "もつ", ConjType: GodanTa},
	{Surface: "立つ", POS: Verb, Cost: 2.0, Lemma: "立つ", Reading: "たつ", ConjType: GodanTa},
	{Surface: "死ぬ", POS: Verb, Cost: 2.0, Lemma: "死ぬ", Reading: "しぬ", ConjType: GodanNa},
	{Surface: "遊ぶ", POS: Verb, Cost: 2.0, Lemma: "遊ぶ", Reading: "あそぶ", ConjType: GodanBa},
	{Surface: "飛ぶ", POS: Verb, Cost: 2.0, Lemma: "飛ぶ", Reading: "とぶ", ConjType: GodanBa},
	{Surface: "飲む", POS: Verb, Cost: 2.0, Lemma: "飲む", Reading: "のむ", ConjType: GodanMa},
	{Surface: "読む", POS: Verb, Cost: 2.0, Lemma: "読む", Reading: "よむ", ConjType: GodanMa},
	{Surface: "分かる", POS: Verb, Cost: 2.0, Lemma: "分かる", Reading: "わかる", ConjType: GodanRa},
	{Surface: "わかる", POS: Verb, Cost: 2.2, Lemma: "わかる", Reading: "わかる", ConjType: GodanRa},
	{Surface: "作る", POS: Verb, Cost: 2.0, Lemma: "作る", Reading: "つくる", ConjType: GodanRa},
	{Surface: "取る", POS: Verb, Cost: 2.0, Lemma: "取る", Reading: "とる", ConjType: GodanRa},
	{Surface: "知る", POS: Verb, Cost: 2.0, Lemma: "知る", Reading: "しる", ConjType: GodanRa},
	{Surface: "帰る", POS: Verb, Cost: 2.0, Lemma: "帰る", Reading: "かえる", ConjType: GodanRa},
	{Surface: "入る", POS: Verb, Cost: 2.0, Lemma: "入る", Reading: "はいる", ConjType: GodanRa},
	{Surface: "走る", POS: Verb, Cost: 2.0, Lemma: "走る", Reading: "はしる", ConjType: GodanRa},
	{Surface: "なる", POS: Verb, Cost: 2.0, Lemma: "なる", Reading: "なる", ConjType: GodanRa},
	{Surface: "ある", POS: Verb, Cost: 1.8, Lemma: "ある", Reading: "ある", ConjType: GodanRa},
	{Surface: "やる", POS: Verb, Cost: 2.2, Lemma: "やる", Reading: "やる", ConjType: GodanRa},
	{Surface: "もらう", POS: Verb, Cost: 2.0, Lemma: "もらう", Reading: "もらう", ConjType: GodanWa},
	{Surface: "言う", POS: Verb, Cost: 2.0, Lemma: "言う", Reading: "いう", ConjType: GodanWa},
	{Surface: "いう", POS: Verb, Cost: 2.2, Lemma: "いう", Reading: "いう", ConjType: GodanWa},
	{Surface: "買う", POS: Verb, Cost: 2.0, Lemma: "買う", Reading: "かう", ConjType: GodanWa},
	{Surface: "思う", POS: Verb, Cost: 2.0, Lemma: "思う", Reading: "おもう", ConjType: GodanWa},
	{Surface: "使う", POS: Verb, Cost: 2.0, Lemma: "使う", Reading: "つかう", ConjType: GodanWa},
	{Surface: "会う", POS: Verb, Cost: 2.0, Lemma: "会う", Reading: "あう", ConjType: GodanWa},
	{Surface: "飛び込む", POS: Verb, Cost: 1.5, Lemma: "飛び込む", Reading: "とびこむ", ConjType: GodanMa},

	// ichidan verbs
	{Surface: "食べる", POS: Verb, Cost: 2.0, Lemma: "食べる", Reading: "たべる", ConjType: Ichidan},
	{Surface: "見る", POS: Verb, Cost: 2.0, Lemma: "見る", Reading: "みる", ConjType: Ichidan},
	{Surface: "出る", POS: Verb, Cost: 2.0, Lemma: "出る", Reading: "でる", ConjType: Ichidan},
	{Surface: "寝る", POS: Verb, Cost: 2.0, Lemma: "寝る", Reading: "ねる", ConjType: Ichidan},
	{Surface: "起きる", POS: Verb, Cost: 2.0, Lemma: "起きる", Reading: "おきる", ConjType: Ichidan},
	{Surface: "着る", POS: Verb, Cost: 2.2, Lemma: "着る", Reading: "きる", ConjType: Ichidan},
	{Surface: "教える", POS: Verb, Cost: 2.0, Lemma: "教える", Reading: "おしえる", ConjType: Ichidan},
	{Surface: "始める", POS: Verb, Cost: 2.0, Lemma: "始める", Reading: "はじめる", ConjType: Ichidan},
	{Surface: "続ける", POS: Verb, Cost: 2.0, Lemma: "続ける", Reading: "つづける", ConjType: Ichidan},
	{Surface: "いる", POS: Verb, Cost: 1.8, Lemma: "いる", Reading: "いる", ConjType: Ichidan},
	{Surface: "できる", POS: Verb, Cost: 2.0, Lemma: "できる", Reading: "できる", ConjType: Ichidan},
	{Surface: "くれる", POS: Verb, Cost: 2.0, Lemma: "くれる", Reading: "くれる", ConjType: Ichidan},
	{Surface: "あげる", POS: Verb, Cost: 2.0, Lemma: "あげる", Reading: "あげる", ConjType: Ichidan},

	// irregular verbs
	{Surface: "する", POS: Verb, Cost: 1.5, Lemma: "する", Reading: "する", ConjType: Suru},
	{Surface: "勉強する", POS: Verb, Cost: 1.5, Lemma: "勉強する", Reading: "べんきょうする", ConjType: Suru},
	{Surface: "来る", POS: Verb, Cost: 1.5, Lemma: "来る", Reading: "くる", ConjType: Kuru},

	// auxiliaries
	{Surface: "ます", POS: Auxiliary, Cost: 0.5, Lemma: "ます", Reading: "ます"},
	{Surface: "た", POS: Auxiliary, Cost: 0.5, Lemma: "た", Reading: "た"},
	{Surface: "ない", POS: Auxiliary, Cost: 0.5, Lemma: "ない", Reading: "ない"},
	{Surface: "れる", POS: Auxiliary, Cost: 0.5, Lemma: "れる", Reading: "れる"},
	{Surface: "られる", POS: Auxiliary, Cost: 0.5, Lemma: "られる", Reading: "られる"},
	{Surface: "せる", POS: Auxiliary, Cost: 0.5, Lemma: "せる", Reading: "せる"},
	{Surface: "させる", POS: Auxiliary, Cost: 0.5, Lemma: "させる", Reading: "させる"},
	{Surface: "だ", POS: Auxiliary, Cost: 0.6, Lemma: "だ", Reading: "だ"},
	{Surface: "です", POS: Auxiliary, Cost: 0.5, Lemma: "です", Reading: "です"},
	{Surface: "でしょう", POS: Auxiliary, Cost: 0.6, Lemma: "です", Reading: "でしょう"},
	{Surface: "だろう", POS: Auxiliary, Cost: 0.6, Lemma: "だ", Reading: "だろう"},
	// contracted aspectual auxiliaries: the second halves of the
	// onbin+contraction splits (読ん+でる, 書い+とく)
	{Surface: "てる", POS: Auxiliary, Cost: 0.7, Lemma: "ている", Reading: "てる"},
	{Surface: "でる", POS: Auxiliary, Cost: 0.7, Lemma: "でいる", Reading: "でる"},
	{Surface: "とく", POS: Auxiliary, Cost: 0.7, Lemma: "ておく", Reading: "とく"},
	{Surface: "どく", POS: Auxiliary, Cost: 0.7, Lemma: "でおく", Reading: "どく"},
	{Surface: "ちゃう", POS: Auxiliary, Cost: 0.7, Lemma: "てしまう", Reading: "ちゃう"},
	{Surface: "じゃう", POS: Auxiliary, Cost: 0.7, Lemma: "でしまう", Reading: "じゃう"},

	// name suffixes
	{Surface: "さん", POS: Suffix, Cost: 0.8, Lemma: "さん", Reading: "さん"},
	{Surface: "ちゃん", POS: Suffix, Cost: 0.8, Lemma: "ちゃん", Reading: "ちゃん"},
	{Surface: "様", POS: Suffix, Cost: 0.8, Lemma: "様", Reading: "さま"},
	{Surface: "君", POS: Suffix, Cost: 0.9, Lemma: "君", Reading: "くん"},

	// punctuation
	{Surface: "。", POS: Symbol, Cost: 0.2, Lemma: "。", Reading: "。", Flags: IsLowInfo},
	{Surface: "、", POS: Symbol, Cost: 0.2, Lemma: "、", Reading: "、", Flags: IsLowInfo},
	{Surface: "！", POS: Symbol, Cost: 0.2, Lemma: "！", Reading: "！", Flags: IsLowInfo},
	{Surface: "？", POS: Symbol, Cost: 0.2, Lemma: "？", Reading: "？", Flags: IsLowInfo},
	{Surface: "・", POS: Symbol, Cost: 0.2, Lemma: "・", Reading: "・", Flags: IsLowInfo},
	{Surface: "「", POS: Symbol, Cost: 0.2, Lemma: "「", Reading: "「", Flags: IsLowInfo},
	{Surface: "」", POS: Symbol, Cost: 0.2, Lemma: "」", Reading: "」", Flags: IsLowInfo},
}

// newCoreLayer builds the trie layer backing the hardcoded core,
// expanding every conjugable entry into its conjugated surface forms
// (spec §4.3).
func newCoreLayer() *Trie {
	t := NewTrie()
	for _, e := range coreSeed {
		t.Insert(e.Surface, e)
		for _, expanded := range ExpandConjugations(e) {
			t.Insert(expanded.Surface, expanded)
		}
	}
	return t
}
