package analysis

var bannedWords = [...]string{
	"küfür",
	"hakaret",
	"kötü",
	"aptal",
	"salak",
	"ahmak",
	"gerizekalı",
	"mal",
	"dangalak",
}

// DefaultBannedWords returns a copy of the built-in banned-word list.
func DefaultBannedWords() []string {
	words := make([]string, len(bannedWords))
	copy(words, bannedWords[:])
	return words
}
