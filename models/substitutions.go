package models

// defaultSubstitutions is the curated complex-to-simple word table used by
// the suggestion generator. Keys are lowercase as they appear after word
// cleaning. The table is configuration: a config file can extend or
// override individual pairs without touching the scoring logic.
func defaultSubstitutions() map[string]string {
	return map[string]string{
		"accomplish":     "do",
		"accordingly":    "so",
		"additional":     "more",
		"address":        "deal with",
		"advantageous":   "helpful",
		"aggregate":      "total",
		"ameliorate":     "improve",
		"anticipate":     "expect",
		"approximately":  "about",
		"ascertain":      "find out",
		"assistance":     "help",
		"attempt":        "try",
		"cognizant":      "aware",
		"collaborate":    "work together",
		"commence":       "start",
		"communicate":    "tell",
		"compensate":     "pay",
		"component":      "part",
		"comprehend":     "understand",
		"comprise":       "include",
		"conclusion":     "end",
		"consequently":   "so",
		"considerable":   "large",
		"constitute":     "make up",
		"construct":      "build",
		"demonstrate":    "show",
		"designate":      "name",
		"determine":      "decide",
		"disseminate":    "spread",
		"eliminate":      "end",
		"elucidate":      "explain",
		"emphasize":      "stress",
		"endeavor":       "try",
		"enumerate":      "list",
		"equitable":      "fair",
		"equivalent":     "equal",
		"establish":      "set up",
		"evaluate":       "check",
		"evident":        "clear",
		"exclusively":    "only",
		"expedite":       "speed up",
		"expenditure":    "cost",
		"facilitate":     "help",
		"formulate":      "plan",
		"fundamental":    "basic",
		"generate":       "create",
		"implement":      "carry out",
		"inception":      "start",
		"incorporate":    "include",
		"indicate":       "show",
		"individuals":    "people",
		"initial":        "first",
		"initiate":       "start",
		"innumerable":    "many",
		"legislation":    "law",
		"leverage":       "use",
		"magnitude":      "size",
		"methodology":    "method",
		"modification":   "change",
		"necessitate":    "require",
		"numerous":       "many",
		"objective":      "goal",
		"obtain":         "get",
		"optimal":        "best",
		"participate":    "take part",
		"peruse":         "read",
		"possess":        "have",
		"predominant":    "main",
		"prioritize":     "rank",
		"procure":        "get",
		"promulgate":     "announce",
		"purchase":       "buy",
		"regarding":      "about",
		"remainder":      "rest",
		"remuneration":   "pay",
		"requirement":    "need",
		"residence":      "home",
		"stipulate":      "require",
		"subsequent":     "next",
		"subsequently":   "later",
		"substantial":    "large",
		"sufficient":     "enough",
		"terminate":      "end",
		"transmit":       "send",
		"transparency":   "openness",
		"utilization":    "use",
		"utilize":        "use",
	}
}
