package chat

import "strings"

// Filler openings and closings the models like to pad answers with.
var fillerPhrases = []string{
	"I'm happy to help you with that.",
	"I'd be glad to assist you.",
	"Thank you for your question.",
	"I hope this helps.",
	"Please let me know if you need anything else.",
	"Is there anything else you'd like to know?",
}

const maxSentences = 5

// normalizeAnswer strips filler phrases and trims rambling answers down to
// their first and last two sentences.
func normalizeAnswer(answer string) string {
	result := answer
	for _, phrase := range fillerPhrases {
		result = strings.ReplaceAll(result, phrase, "")
	}

	var sentences []string
	for _, s := range strings.Split(result, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	if len(sentences) > maxSentences {
		sentences = append(sentences[:2], sentences[len(sentences)-2:]...)
	}

	result = strings.Join(sentences, ". ")
	if !strings.HasSuffix(result, ".") {
		result += "."
	}
	return strings.TrimSpace(result)
}
