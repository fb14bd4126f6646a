package content

import "fmt"

const systemPrompt = `You are a Swedish language teacher writing material for an English-speaking beginner.
Use everyday vocabulary and short, natural sentences. Swedish text must use correct spelling including å, ä and ö.`

func wordsPrompt(theme string, n int) string {
	return fmt.Sprintf(`Generate a list of %d simple Swedish words for a beginner flashcard app, based on the theme of %q.
For each word, provide its English translation and a simple example sentence in both Swedish and English using the word.
Do not repeat words.`, n, theme)
}

func funFactPrompt(theme string) string {
	return fmt.Sprintf(`Generate one short, interesting, and fun fact about Sweden related to the topic of %q.
The fact should be a single sentence and not enclosed in quotes.`, theme)
}

func sentencesPrompt(n int) string {
	return fmt.Sprintf(`Create %d simple, unique, beginner-level Swedish sentences.
Each sentence should be between 3 and 7 words long. For each, provide the English translation.`, n)
}

func grammarPrompt(n int) string {
	return fmt.Sprintf(`Create %d unique quiz objects about Swedish grammar.
The question must test a grammar concept from the sentence, but the answer must not be directly visible in the sentence itself.

Good example:
- Sentence: "Jag ser en röd bil." (I see a red car.)
- Question: "How would you correctly say 'the red car' (definite form)?"
- Options: ["den röd bil", "den röda bilen", "en röd bilen"]

For each quiz object provide:
1. swedishSentence: a simple Swedish sentence (3-7 words).
2. englishSentence: the English translation.
3. question: a multiple-choice question following the rule above. Focus on V2 word order, negation, noun gender, definite/indefinite forms and adjective endings.
4. options: three plausible options, one correct.
5. correctAnswer: the correct option, copied exactly.
6. explanation: a concise explanation in the form "Swedish: [rule]. English: [comparison]."`, n)
}
