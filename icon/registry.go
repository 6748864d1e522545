package icon

// Icon identifies a symbol of the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Higher
	Lower
	Score
	Streak
	Loading
	Link
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Higher: {
		emoji:   "📈",
		nerd:    "",
		plain:   "^",
		kaomoji: "(☝ ՞ਊ ՞)☝",
		squares: "🔼",
	},
	Lower: {
		emoji:   "📉",
		nerd:    "",
		plain:   "v",
		kaomoji: "(👇 ͡° ͜ʖ ͡°)👇",
		squares: "🔽",
	},
	Score: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★ω★)",
		squares: "🟨",
	},
	Streak: {
		emoji:   "🔥",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ง •̀_•́)ง",
		squares: "🟧",
	},
	Loading: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(￣o￣) . z Z",
		squares: "⬜",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(⌐■_■)",
		squares: "🟦",
	},
}
