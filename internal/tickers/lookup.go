package tickers

// DefaultLookup maps lowercase company names to ticker symbols.
// Restaurant/QSR names first (fnb feed), then large-cap tech (tech feed).
// Names must start and end with a letter or digit so word boundaries hold.
var DefaultLookup = map[string]string{
	// QSR / restaurants
	"mcdonald's":                      "MCD",
	"mcdonalds":                       "MCD",
	"starbucks":                       "SBUX",
	"chipotle":                        "CMG",
	"domino's":                        "DPZ",
	"dominos":                         "DPZ",
	"wendy's":                         "WEN",
	"yum brands":                      "YUM",
	"taco bell":                       "YUM",
	"kfc":                             "YUM",
	"pizza hut":                       "YUM",
	"restaurant brands international": "QSR",
	"burger king":                     "QSR",
	"tim hortons":                     "QSR",
	"popeyes":                         "QSR",
	"papa john's":                     "PZZA",
	"shake shack":                     "SHAK",
	"wingstop":                        "WING",
	"darden":                          "DRI",
	"olive garden":                    "DRI",
	"texas roadhouse":                 "TXRH",
	"cava":                            "CAVA",
	"sweetgreen":                      "SG",
	"dutch bros":                      "BROS",
	"jack in the box":                 "JACK",
	"cracker barrel":                  "CBRL",
	"dine brands":                     "DIN",
	"applebee's":                      "DIN",
	"ihop":                            "DIN",
	"bloomin brands":                  "BLMN",
	"coca-cola":                       "KO",
	"pepsico":                         "PEP",
	"doordash":                        "DASH",

	// Tech
	"apple":           "AAPL",
	"microsoft":       "MSFT",
	"alphabet":        "GOOGL",
	"amazon":          "AMZN",
	"nvidia":          "NVDA",
	"meta platforms":  "META",
	"salesforce":      "CRM",
	"oracle":          "ORCL",
	"tesla":           "TSLA",
	"uber":            "UBER",
	"ford motor":      "F",
}

// DefaultStopWords are all-caps tokens that look like tickers but are not
var DefaultStopWords = []string{
	// 2 letters
	"AI", "AN", "AS", "AT", "BE", "BY", "DO", "EU", "GO", "IN", "IS", "IT",
	"NO", "OF", "ON", "OR", "SO", "TO", "UK", "UP", "US", "WE",
	// 3+ letters
	"ALL", "AND", "ANY", "ARE", "BUT", "CAN", "CEO", "CFO", "CMO", "COO",
	"CTO", "EPS", "ETF", "FDA", "FOR", "GDP", "HAD", "HAS", "HER", "IPO",
	"KDS", "LTO", "NEW", "NOT", "NOW", "ONE", "OUR", "OUT", "SEC", "THE",
	"USA", "USD", "WAS", "YOU", "YOY",
	"FROM", "INTO", "JUST", "MORE", "MOST", "NEWS", "OVER", "THAN", "THAT",
	"THEM", "THEY", "THIS", "WHAT", "WHEN", "WILL", "WITH", "YEAR",
	"ABOUT", "AFTER", "WHICH",
}
