// Package books holds the canonical 66-book index: the fixed ordering used
// for all range and sort operations, plus per-language display names. The
// tables are frozen at init and have no mutation API.
package books

import "errors"

var ErrUnknownBook = errors.New("unknown book")

type Book struct {
	Key   string
	Order int
}

// canon lists every recognized book key in canonical order. Order values are
// assigned from position so they stay a bijection onto 1..66 by construction.
var canon = []string{
	// Old Testament
	"genesis",
	"exodus",
	"leviticus",
	"numbers",
	"deuteronomy",
	"joshua",
	"judges",
	"ruth",
	"1samuel",
	"2samuel",
	"1kings",
	"2kings",
	"1chronicles",
	"2chronicles",
	"ezra",
	"nehemiah",
	"esther",
	"job",
	"psalms",
	"proverbs",
	"ecclesiastes",
	"song-of-solomon",
	"isaiah",
	"jeremiah",
	"lamentations",
	"ezekiel",
	"daniel",
	"hosea",
	"joel",
	"amos",
	"obadiah",
	"jonah",
	"micah",
	"nahum",
	"habakkuk",
	"zephaniah",
	"haggai",
	"zechariah",
	"malachi",
	// New Testament
	"matthew",
	"mark",
	"luke",
	"john",
	"acts",
	"romans",
	"1corinthians",
	"2corinthians",
	"galatians",
	"ephesians",
	"philippians",
	"colossians",
	"1thessalonians",
	"2thessalonians",
	"1timothy",
	"2timothy",
	"titus",
	"philemon",
	"hebrews",
	"james",
	"1peter",
	"2peter",
	"1john",
	"2john",
	"3john",
	"jude",
	"revelation",
}

var orderByKey = make(map[string]int, len(canon))

func init() {
	for i, key := range canon {
		orderByKey[key] = i + 1
	}
}

// Order returns the canonical position (1..66) of a book key.
func Order(key string) (int, error) {
	order, ok := orderByKey[key]
	if !ok {
		return 0, ErrUnknownBook
	}
	return order, nil
}

func IsValid(key string) bool {
	_, ok := orderByKey[key]
	return ok
}

// DisplayName returns the book's name in the given language, falling back to
// the key itself when no name is registered. Display is best-effort and never
// fails.
func DisplayName(key, lang string) string {
	names, ok := displayNames[lang]
	if !ok {
		return key
	}
	name, ok := names[key]
	if !ok {
		return key
	}
	return name
}

// All returns the canonical book list in order.
func All() []Book {
	list := make([]Book, len(canon))
	for i, key := range canon {
		list[i] = Book{Key: key, Order: i + 1}
	}
	return list
}
