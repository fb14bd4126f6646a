package content

// Themes are the daily topics, one picked at random per fetch.
var Themes = []string{
	"Food and Drink",
	"Travel",
	"Animals",
	"Common Verbs",
	"Adjectives",
	"Household Items",
	"Emotions",
	"Weather",
	"Professions",
	"Hobbies",
	"Nature",
	"Family",
	"Clothing",
	"Numbers",
}

const (
	// DefaultFunFact is shown with the fallback word set.
	DefaultFunFact = "Sweden is the third-largest country in the European Union by area."

	// FallbackWarning is surfaced to the learner when generation failed.
	FallbackWarning = "Could not generate new content. Using the default set."

	fallbackTheme = "Everyday Basics"
)

// FallbackWords is the built-in beginner set.
var FallbackWords = []Word{
	{"Hej", "Hello", "Hej, hur mår du?", "Hello, how are you?"},
	{"Tack", "Thank you", "Tack så mycket för hjälpen.", "Thank you very much for the help."},
	{"Ja", "Yes", "Ja, jag vill ha en kopp kaffe.", "Yes, I want a cup of coffee."},
	{"Nej", "No", "Nej, jag är inte trött.", "No, I am not tired."},
	{"God morgon", "Good morning", "God morgon! Sov du gott?", "Good morning! Did you sleep well?"},
	{"God kväll", "Good evening", "God kväll, välkommen hem.", "Good evening, welcome home."},
	{"Vatten", "Water", "Kan jag få ett glas vatten?", "Can I have a glass of water?"},
	{"Mat", "Food", "Maten är klar om fem minuter.", "The food will be ready in five minutes."},
	{"Hus", "House", "De bor i ett stort gult hus.", "They live in a big yellow house."},
	{"Bil", "Car", "Min bil är gammal men pålitlig.", "My car is old but reliable."},
	{"Vän", "Friend", "Jag ska träffa en vän i stan.", "I am going to meet a friend in town."},
	{"Familj", "Family", "Min familj kommer från Sverige.", "My family comes from Sweden."},
	{"Älska", "To love", "Jag älskar att resa.", "I love to travel."},
	{"Skola", "School", "Barnen går i skolan nu.", "The children are at school now."},
	{"Bok", "Book", "Hon läser en spännande bok.", "She is reading an exciting book."},
	{"Sverige", "Sweden", "Sverige är känt för sin vackra natur.", "Sweden is known for its beautiful nature."},
	{"Prata", "To speak", "Kan du prata lite långsammare?", "Can you speak a little slower?"},
	{"Förstå", "To understand", "Jag förstår inte frågan.", "I do not understand the question."},
	{"Hjälp", "Help", "Behöver du hjälp med väskorna?", "Do you need help with the bags?"},
	{"Ursäkta", "Excuse me", "Ursäkta, var ligger stationen?", "Excuse me, where is the station?"},
}

// fallbackDaily builds the static day for date.
func fallbackDaily(date string) Daily {
	words := make([]Word, len(FallbackWords))
	copy(words, FallbackWords)
	return Daily{
		Date:     date,
		Theme:    fallbackTheme,
		Words:    words,
		FunFact:  DefaultFunFact,
		Fallback: true,
		Warning:  FallbackWarning,
	}
}
