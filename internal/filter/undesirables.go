// Package filter decides which tokens carry no content for scoring.
package filter

// IsNoise reports whether a lowercased lemma is a stop word, punctuation,
// whitespace or a single-letter parser artifact.
func IsNoise(lemma string) bool {
	if lemma == "" {
		return true
	}
	_, ok := undesirables[lemma]
	return ok
}

var undesirables = buildSet(closedClassWords, specialCharacters)

var closedClassWords = []string{
	// articles
	"the", "a", "an", "not",

	// auxiliaries
	"be", "is", "am", "are", "was", "were", "being", "been", "do", "did", "doing", "done", "does",
	"have", "had", "having", "has",

	// conjunctions
	"after", "although", "and", "as", "as far as", "as how", "as if", "as long as", "as soon as",
	"as though", "as well as", "because", "before", "both", "but", "either", "even if", "even",
	"though", "for", "how", "however", "if only", "in case", "in order that", "neither", "nor",
	"now", "once", "only", "or", "provided", "rather", "than", "since", "so", "so that", "that",
	"till", "unless", "until", "when", "whenever", "where", "whereas", "wherever", "whether",
	"while", "yet",

	// determiners
	"my", "his", "her", "our", "your", "its", "their", "what", "whose", "which", "these", "some",
	"a few", "a little", "all", "another", "any", "each", "enough", "every", "few", "fewer",
	"less", "little", "many", "more", "most", "much", "no", "other", "several",

	// modals
	"can", "can't", "could", "couldn't", "may", "might", "mightn't", "must", "mustn't", "shall",
	"shan't", "should", "shouldn't", "will", "won't", "would", "wouldn't", "ought", "oughtn't",
	"dare", "daren't", "need", "needen't", "had better", "used to",

	// prepositions
	"aboard", "about", "above", "across", "against", "along", "amid", "among", "anti", "around",
	"at", "behind", "below", "beneath", "beside", "besides", "between", "beyond", "by",
	"concerning", "considering", "despite", "down", "during", "except", "excepting", "excluding",
	"following", "from", "in", "inside", "into", "like", "minus", "near", "of", "off", "on", "onto",
	"opposite", "outside", "over", "past", "per", "plus", "regarding", "round", "save", "through",
	"to", "toward", "towards", "under", "underneath", "unlike", "up", "upon", "versus", "via",
	"with", "within", "without", "out", "away",

	// pronouns
	"none", "everything", "anybody", "anyone", "anything", "nothing", "one", "somebody", "someone",
	"something", "others", "you", "yours", "yourself", "yourselves", "i", "me", "them", "they",
	"she", "he", "him", "us", "we", "it", "whatever", "whichever", "who", "whoever", "whom",
	"whomever", "herself", "himself", "itself", "myself", "each other", "everybody", "everyone",
	"hers", "mine", "no one", "nobody", "one another", "ours", "ourselves", "theirs", "themselves",
	"this", "those", "why",

	// contraction fragments and honorifics
	"n't", "''", "`", "'s", "mr", "mrs", "miss", "mister",
}

var specialCharacters = []string{
	// full stops
	".", "۔", "܁", "܂", "︒", "﹒", "．", "｡",

	// single letters are parser artifacts
	"b", "c", "d", "e", "f", "g", "h", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	"u", "v", "w", "x", "y", "z",

	"!", "?", ",", ":", ";", "_", "%", "$", "#", "@", "^", "&", "*", "(", ")", "[", "{", "]", "}",
	"<", ">", "/", "\\", "=", "+", "|", "\"",

	// single quotes
	"'", "ʼ", "՚", "ߴ", "ߵ", "’", "＇", "‘", "‚", "‛",
	"❛", "❜",

	// double quotes
	"“", "”", "„", "‟", "‹", "›", "❝", "❮", "❠", "❯",

	// hyphens
	"-", "⁻", "₋", "﹣", "－",

	// whitespace
	" ", "\t", "\r", "\n", "\u0008", "\ufeff", "\u303f", "\u3000", "\u2420", "\u2408", "\u202f",
	"\u205f", "\u2000", "\u2002", "\u2003", "\u2004", "\u2005", "\u2006", "\u2007", "\u2008",
	"\u2009", "\u200a", "\u200b",
}

func buildSet(lists ...[]string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, words := range lists {
		for _, w := range words {
			m[w] = struct{}{}
		}
	}
	return m
}
