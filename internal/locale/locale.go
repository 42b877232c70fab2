// Package locale holds the labels shown around the board.
package locale

import (
	"strconv"

	"golang.org/x/text/language"
)

// Bundle is one language's set of labels. The mine counter is rendered
// between Remain1 and Remain2, the elapsed seconds between Timer1 and
// Timer2.
type Bundle struct {
	Lang    string `json:"lang"`
	Remain1 string `json:"remain1"`
	Remain2 string `json:"remain2"`
	Timer1  string `json:"timer1"`
	Timer2  string `json:"timer2"`
	Retry   string `json:"retry"`
	Cleared string `json:"cleared"`
}

var (
	English = Bundle{
		Lang:    "en",
		Remain1: "",
		Remain2: " mines",
		Timer1:  "time: ",
		Timer2:  "",
		Retry:   "Retry",
		Cleared: "Cleared!",
	}
	Japanese = Bundle{
		Lang:    "ja",
		Remain1: "あと",
		Remain2: "個",
		Timer1:  "",
		Timer2:  "秒経過",
		Retry:   "もう一回？",
		Cleared: "クリア！",
	}
)

// The first entry is the fallback.
var (
	bundles = []Bundle{English, Japanese}
	matcher = language.NewMatcher([]language.Tag{
		language.English,
		language.Japanese,
	})
)

// Negotiate picks a bundle for an explicit lang parameter, falling back to
// an Accept-Language header and then to English.
func Negotiate(lang, acceptLanguage string) Bundle {
	_, i := language.MatchStrings(matcher, lang, acceptLanguage)
	return bundles[i]
}

// Remaining renders the mine counter label.
func (b Bundle) Remaining(n int) string {
	return b.Remain1 + strconv.Itoa(n) + b.Remain2
}

// Elapsed renders the timer label.
func (b Bundle) Elapsed(n int) string {
	return b.Timer1 + strconv.Itoa(n) + b.Timer2
}
