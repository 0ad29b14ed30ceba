package books

// displayNames maps language code -> book key -> localized name.
var displayNames = map[string]map[string]string{
	"en": {
		"genesis":         "Genesis",
		"exodus":          "Exodus",
		"leviticus":       "Leviticus",
		"numbers":         "Numbers",
		"deuteronomy":     "Deuteronomy",
		"joshua":          "Joshua",
		"judges":          "Judges",
		"ruth":            "Ruth",
		"1samuel":         "1 Samuel",
		"2samuel":         "2 Samuel",
		"1kings":          "1 Kings",
		"2kings":          "2 Kings",
		"1chronicles":     "1 Chronicles",
		"2chronicles":     "2 Chronicles",
		"ezra":            "Ezra",
		"nehemiah":        "Nehemiah",
		"esther":          "Esther",
		"job":             "Job",
		"psalms":          "Psalms",
		"proverbs":        "Proverbs",
		"ecclesiastes":    "Ecclesiastes",
		"song-of-solomon": "Song of Solomon",
		"isaiah":          "Isaiah",
		"jeremiah":        "Jeremiah",
		"lamentations":    "Lamentations",
		"ezekiel":         "Ezekiel",
		"daniel":          "Daniel",
		"hosea":           "Hosea",
		"joel":            "Joel",
		"amos":            "Amos",
		"obadiah":         "Obadiah",
		"jonah":           "Jonah",
		"micah":           "Micah",
		"nahum":           "Nahum",
		"habakkuk":        "Habakkuk",
		"zephaniah":       "Zephaniah",
		"haggai":          "Haggai",
		"zechariah":       "Zechariah",
		"malachi":         "Malachi",
		"matthew":         "Matthew",
		"mark":            "Mark",
		"luke":            "Luke",
		"john":            "John",
		"acts":            "Acts",
		"romans":          "Romans",
		"1corinthians":    "1 Corinthians",
		"2corinthians":    "2 Corinthians",
		"galatians":       "Galatians",
		"ephesians":       "Ephesians",
		"philippians":     "Philippians",
		"colossians":      "Colossians",
		"1thessalonians":  "1 Thessalonians",
		"2thessalonians":  "2 Thessalonians",
		"1timothy":        "1 Timothy",
		"2timothy":        "2 Timothy",
		"titus":           "Titus",
		"philemon":        "Philemon",
		"hebrews":         "Hebrews",
		"james":           "James",
		"1peter":          "1 Peter",
		"2peter":          "2 Peter",
		"1john":           "1 John",
		"2john":           "2 John",
		"3john":           "3 John",
		"jude":            "Jude",
		"revelation":      "Revelation",
	},
	"ro": {
		"genesis":         "Geneza",
		"exodus":          "Exod",
		"leviticus":       "Levitic",
		"numbers":         "Numeri",
		"deuteronomy":     "Deuteronom",
		"joshua":          "Iosua",
		"judges":          "Judecători",
		"ruth":            "Rut",
		"1samuel":         "1 Samuel",
		"2samuel":         "2 Samuel",
		"1kings":          "1 Regi",
		"2kings":          "2 Regi",
		"1chronicles":     "1 Cronici",
		"2chronicles":     "2 Cronici",
		"ezra":            "Ezra",
		"nehemiah":        "Neemia",
		"esther":          "Estera",
		"job":             "Iov",
		"psalms":          "Psalmi",
		"proverbs":        "Proverbe",
		"ecclesiastes":    "Eclesiastul",
		"song-of-solomon": "Cântarea Cântărilor",
		"isaiah":          "Isaia",
		"jeremiah":        "Ieremia",
		"lamentations":    "Plângerile lui Ieremia",
		"ezekiel":         "Ezechiel",
		"daniel":          "Daniel",
		"hosea":           "Osea",
		"joel":            "Ioel",
		"amos":            "Amos",
		"obadiah":         "Obadia",
		"jonah":           "Iona",
		"micah":           "Mica",
		"nahum":           "Naum",
		"habakkuk":        "Habacuc",
		"zephaniah":       "Țefania",
		"haggai":          "Hagai",
		"zechariah":       "Zaharia",
		"malachi":         "Maleahi",
		"matthew":         "Matei",
		"mark":            "Marcu",
		"luke":            "Luca",
		"john":            "Ioan",
		"acts":            "Faptele Apostolilor",
		"romans":          "Romani",
		"1corinthians":    "1 Corinteni",
		"2corinthians":    "2 Corinteni",
		"galatians":       "Galateni",
		"ephesians":       "Efeseni",
		"philippians":     "Filipeni",
		"colossians":      "Coloseni",
		"1thessalonians":  "1 Tesaloniceni",
		"2thessalonians":  "2 Tesaloniceni",
		"1timothy":        "1 Timotei",
		"2timothy":        "2 Timotei",
		"titus":           "Tit",
		"philemon":        "Filimon",
		"hebrews":         "Evrei",
		"james":           "Iacov",
		"1peter":          "1 Petru",
		"2peter":          "2 Petru",
		"1john":           "1 Ioan",
		"2john":           "2 Ioan",
		"3john":           "3 Ioan",
		"jude":            "Iuda",
		"revelation":      "Apocalipsa",
	},
}
