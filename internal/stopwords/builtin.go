package stopwords

var builtin = map[string][]string{
	"nl": {
		"de", "het", "en", "een", "in", "van", "met", "op", "te", "dat", "die",
		"is", "was", "bij", "als", "maar", "ook", "niet", "wel", "om", "voor",
		"naar", "uit", "aan", "door", "tot", "over", "onder", "hij", "zij", "ze",
		"hun", "zijn", "haar", "we", "wij", "jij", "je", "u", "ik",
	},
	"en": {
		"a", "an", "the", "and", "or", "but", "of", "to", "in", "on", "for",
		"with", "as", "at", "by", "from", "is", "are", "was", "were", "be",
		"been", "has", "have", "had", "it", "its", "this", "that", "no", "not",
		"he", "she", "they", "we", "i", "you", "his", "her", "their",
	},
}
