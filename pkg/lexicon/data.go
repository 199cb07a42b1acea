package lexicon

// bundled is the built-in English lexicon. Keys are uppercased normal forms.
// Candidate order matters: the first tag is the default reading, later tags
// are the readings the contextual rules may promote.
var bundled = map[string][]string{
	// Determiners
	"THE": {"DT"}, "A": {"DT"}, "AN": {"DT"}, "THIS": {"DT"}, "THAT": {"DT", "IN", "WDT"},
	"THESE": {"DT"}, "THOSE": {"DT"}, "EACH": {"DT"}, "EVERY": {"DT"}, "SOME": {"DT"},
	"ANY": {"DT"}, "NO": {"DT"}, "BOTH": {"DT"}, "ALL": {"DT"}, "ANOTHER": {"DT"},
	"SUCH": {"JJ"}, "EITHER": {"DT", "CC"}, "NEITHER": {"DT", "CC"},

	// Personal pronouns
	"I": {"PRP"}, "YOU": {"PRP"}, "HE": {"PRP"}, "SHE": {"PRP"}, "IT": {"PRP"},
	"WE": {"PRP"}, "THEY": {"PRP"}, "ME": {"PRP"}, "HIM": {"PRP"}, "US": {"PRP"},
	"THEM": {"PRP"}, "MYSELF": {"PRP"}, "YOURSELF": {"PRP"}, "HIMSELF": {"PRP"},
	"HERSELF": {"PRP"}, "ITSELF": {"PRP"}, "OURSELVES": {"PRP"}, "THEMSELVES": {"PRP"},
	"SOMEONE": {"NN"}, "EVERYONE": {"NN"}, "ANYONE": {"NN"}, "NOTHING": {"NN"},
	"SOMETHING": {"NN"}, "EVERYTHING": {"NN"}, "ANYTHING": {"NN"},

	// Possessive pronouns
	"MY": {"PRP$"}, "YOUR": {"PRP$"}, "HIS": {"PRP$"}, "ITS": {"PRP$"},
	"OUR": {"PRP$"}, "THEIR": {"PRP$"}, "HER": {"PRP$", "PRP"},
	"MINE": {"PRP"}, "YOURS": {"PRP"}, "HERS": {"PRP"}, "OURS": {"PRP"}, "THEIRS": {"PRP"},

	// Wh words
	"WHO": {"WP"}, "WHOM": {"WP"}, "WHAT": {"WDT", "WP"}, "WHOSE": {"WP$"},
	"WHICH": {"WDT"}, "WHERE": {"WRB"}, "WHEN": {"WRB", "IN"}, "WHY": {"WRB"}, "HOW": {"WRB"},

	// Prepositions and subordinating conjunctions
	"IN": {"IN"}, "ON": {"IN"}, "AT": {"IN"}, "BY": {"IN"}, "FOR": {"IN"},
	"FROM": {"IN"}, "OF": {"IN"}, "WITH": {"IN"}, "ABOUT": {"IN"}, "AGAINST": {"IN"},
	"BETWEEN": {"IN"}, "INTO": {"IN"}, "THROUGH": {"IN"}, "DURING": {"IN"},
	"BEFORE": {"IN"}, "AFTER": {"IN"}, "ABOVE": {"IN"}, "BELOW": {"IN"},
	"UNDER": {"IN"}, "OVER": {"IN", "RB"}, "UPON": {"IN"}, "WITHIN": {"IN"},
	"WITHOUT": {"IN"}, "ACROSS": {"IN"}, "BEHIND": {"IN"}, "BEYOND": {"IN"},
	"NEAR": {"IN"}, "SINCE": {"IN"}, "UNTIL": {"IN"}, "WHILE": {"IN"},
	"BECAUSE": {"IN"}, "ALTHOUGH": {"IN"}, "THOUGH": {"IN"}, "IF": {"IN"},
	"UNLESS": {"IN"}, "WHETHER": {"IN"}, "PER": {"IN"}, "AMONG": {"IN"},
	"AROUND": {"IN", "RB"}, "TOWARD": {"IN"}, "TOWARDS": {"IN"}, "ALONG": {"IN"},
	"INSIDE": {"IN"}, "OUTSIDE": {"IN"}, "EXCEPT": {"IN"}, "DESPITE": {"IN"},

	"TO": {"TO"},

	// Coordinating conjunctions
	"AND": {"CC"}, "OR": {"CC"}, "BUT": {"CC"}, "NOR": {"CC"}, "PLUS": {"CC"},

	// Modals
	"CAN": {"MD"}, "COULD": {"MD"}, "WILL": {"MD"}, "WOULD": {"MD"},
	"SHALL": {"MD"}, "SHOULD": {"MD"}, "MAY": {"MD"}, "MIGHT": {"MD"},
	"MUST": {"MD"}, "OUGHT": {"MD"},

	// Be / have / do
	"BE": {"VB"}, "AM": {"VBP"}, "IS": {"VBZ"}, "ARE": {"VBP"},
	"WAS": {"VBD"}, "WERE": {"VBD"}, "BEEN": {"VBN"}, "BEING": {"VBG"},
	"HAVE": {"VBP", "VB"}, "HAS": {"VBZ"}, "HAD": {"VBD", "VBN"}, "HAVING": {"VBG"},
	"DO": {"VB", "VBP"}, "DOES": {"VBZ"}, "DID": {"VBD"}, "DONE": {"VBN"}, "DOING": {"VBG"},

	// Adverbs (closed set; open -ly adverbs come from the suffix heuristics)
	"NOT": {"RB"}, "NOW": {"RB"}, "THEN": {"RB"}, "JUST": {"RB"}, "ONLY": {"RB"},
	"ALSO": {"RB"}, "VERY": {"RB"}, "TOO": {"RB"}, "QUITE": {"RB"}, "RATHER": {"RB"},
	"ALWAYS": {"RB"}, "NEVER": {"RB"}, "OFTEN": {"RB"}, "SOMETIMES": {"RB"},
	"HERE": {"RB"}, "AGAIN": {"RB"}, "STILL": {"RB"}, "ALREADY": {"RB"},
	"SOON": {"RB"}, "EVEN": {"RB"}, "YET": {"RB"}, "SO": {"RB"}, "WELL": {"RB"},
	"ONCE": {"RB"}, "PERHAPS": {"RB"}, "MAYBE": {"RB"}, "ELSE": {"RB"}, "AGO": {"RB"},

	"THERE": {"EX"},

	// Cardinals
	"ZERO": {"CD"}, "ONE": {"CD"}, "TWO": {"CD"}, "THREE": {"CD"}, "FOUR": {"CD"},
	"FIVE": {"CD"}, "SIX": {"CD"}, "SEVEN": {"CD"}, "EIGHT": {"CD"}, "NINE": {"CD"},
	"TEN": {"CD"}, "DOZEN": {"CD"}, "HUNDRED": {"CD"}, "THOUSAND": {"CD"}, "MILLION": {"CD"},

	// Adjectives
	"SIMPLE": {"JJ"}, "SHARP": {"JJ"}, "POLITE": {"JJ"}, "GOOD": {"JJ"},
	"NEW": {"JJ"}, "OLD": {"JJ"}, "GREAT": {"JJ"}, "SMALL": {"JJ"}, "BIG": {"JJ"},
	"HIGH": {"JJ"}, "LOW": {"JJ"}, "LONG": {"JJ"}, "SHORT": {"JJ"}, "EARLY": {"JJ"},
	"LATE": {"JJ"}, "YOUNG": {"JJ"}, "OWN": {"JJ"}, "SAME": {"JJ"}, "ABLE": {"JJ"},
	"BAD": {"JJ"}, "FREE": {"JJ"}, "REAL": {"JJ"}, "SURE": {"JJ"}, "LAST": {"JJ"},
	"NEXT": {"JJ"}, "FIRST": {"JJ"}, "FULL": {"JJ"}, "WHOLE": {"JJ"}, "DARK": {"JJ"},
	"EVERYDAY": {"JJ"}, "AFRICAN": {"JJ"}, "NATIONAL": {"JJ"}, "MANY": {"JJ"},
	"MUCH": {"JJ"}, "FEW": {"JJ"}, "OTHER": {"JJ"}, "MOST": {"JJS"},
	"BEST": {"JJS", "RB"}, "BETTER": {"JJR", "RBR"}, "WORSE": {"JJR"}, "WORST": {"JJS"},
	"MORE": {"JJR", "RBR"}, "LESS": {"JJR", "RBR"},

	// Noun/verb ambiguous content words
	"LIKE": {"IN", "VB", "VBP", "JJ"}, "LIVE": {"VB", "VBP", "JJ"},
	"EAT": {"VB", "VBP"}, "BEAR": {"NN", "VB"}, "FISH": {"NN", "VB"},
	"FISHES": {"NNS", "VBZ"}, "POINT": {"NN", "VB"}, "TIME": {"NN", "VB"},
	"TIMES": {"NNS"}, "FLIES": {"VBZ", "NNS"}, "WALK": {"VB", "VBP", "NN"},
	"WORK": {"NN", "VB", "VBP"}, "PLAY": {"VB", "VBP", "NN"}, "RUN": {"VB", "VBP", "NN"},
	"CROSS": {"VB", "NN"}, "BREAK": {"VB", "NN"}, "RIDE": {"VB", "NN"},
	"CHANGE": {"NN", "VB"}, "HELP": {"VB", "VBP", "NN"}, "CALL": {"VB", "VBP", "NN"},
	"NEED": {"VB", "VBP", "NN"}, "WANT": {"VB", "VBP"}, "USE": {"VB", "VBP", "NN"},

	// Verbs
	"GO": {"VB", "VBP"}, "GOES": {"VBZ"}, "WENT": {"VBD"}, "GONE": {"VBN"},
	"COME": {"VB", "VBP"}, "CAME": {"VBD"}, "GET": {"VB", "VBP"},
	"GOT": {"VBD", "VBN"}, "GOTTEN": {"VBN"}, "GIVE": {"VB", "VBP"}, "GAVE": {"VBD"},
	"GIVEN": {"VBN"}, "TAKE": {"VB", "VBP"}, "TOOK": {"VBD"}, "TAKEN": {"VBN"},
	"MAKE": {"VB", "VBP"}, "MADE": {"VBD", "VBN"}, "SAY": {"VB", "VBP"},
	"SAID": {"VBD"}, "SAYS": {"VBZ"}, "SEE": {"VB", "VBP"}, "SAW": {"VBD"},
	"SEEN": {"VBN"}, "KNOW": {"VB", "VBP"}, "KNEW": {"VBD"}, "KNOWN": {"VBN"},
	"MEET": {"VB", "VBP"}, "MET": {"VBD", "VBN"}, "BELIEVE": {"VB", "VBP"},
	"TRY": {"VB", "VBP"}, "TRIED": {"VBD", "VBN"}, "FIND": {"VB", "VBP"},
	"FOUND": {"VBD", "VBN"}, "THINK": {"VB", "VBP"}, "THOUGHT": {"VBD", "VBN"},
	"TELL": {"VB", "VBP"}, "TOLD": {"VBD", "VBN"}, "KEEP": {"VB", "VBP"},
	"KEPT": {"VBD", "VBN"}, "LEAVE": {"VB", "VBP"}, "LEFT": {"VBN", "VBD"},
	"FEEL": {"VB", "VBP"}, "FELT": {"VBD", "VBN"}, "SPEAK": {"VB", "VBP"},
	"SPOKE": {"VBD"}, "SPOKEN": {"VBN"}, "WRITE": {"VB", "VBP"}, "WROTE": {"VBD"},
	"WRITTEN": {"VBN"}, "READ": {"VB", "VBP", "VBD", "VBN"}, "BROKEN": {"VBN", "JJ"},
	"RIDDEN": {"VBN"}, "CROSSED": {"VBD", "VBN"}, "EARNED": {"VBD", "VBN"},
	"EARN": {"VB", "VBP"}, "CREATED": {"VBD", "VBN"}, "CREATE": {"VB", "VBP"},
	"BRING": {"VB", "VBP"}, "BROUGHT": {"VBD", "VBN"}, "BUY": {"VB", "VBP"},
	"BOUGHT": {"VBD", "VBN"}, "CATCH": {"VB", "VBP"}, "CAUGHT": {"VBD", "VBN"},
	"HOLD": {"VB", "VBP"}, "HELD": {"VBD", "VBN"}, "PUT": {"VB", "VBP", "VBD", "VBN"},
	"LET": {"VB", "VBP"}, "BEGIN": {"VB", "VBP"}, "BEGAN": {"VBD"}, "BEGUN": {"VBN"},
	"SEND": {"VB", "VBP"}, "SENT": {"VBD", "VBN"}, "LOSE": {"VB", "VBP"},
	"LOST": {"VBD", "VBN"}, "FORGET": {"VB", "VBP"}, "FORGOT": {"VBD"},
	"FORGOTTEN": {"VBN"}, "ASK": {"VB", "VBP"}, "ASKED": {"VBD", "VBN"},
	"SEEM": {"VB", "VBP"}, "SEEMS": {"VBZ"}, "SEEMED": {"VBD"},
	"ATE": {"VBD"}, "EATEN": {"VBN"}, "EATS": {"VBZ"},

	// Nouns
	"SENTENCE": {"NN"}, "HORSE": {"NN"}, "HORSES": {"NNS"}, "WEEK": {"NN"},
	"WEEKS": {"NNS"}, "BANANA": {"NN"}, "TEA": {"NN"}, "LAKE": {"NN"},
	"ROAD": {"NN"}, "EXPENSE": {"NN"}, "EXPENSES": {"NNS"}, "PENCIL": {"NN"},
	"UNIVERSE": {"NN"}, "BONUS": {"NN"}, "QUARTER": {"NN"}, "FOOD": {"NN"},
	"GEM": {"NN"}, "FRIEND": {"NN"}, "FRIENDS": {"NNS"}, "LEADER": {"NN"},
	"PEOPLE": {"NNS"}, "MAN": {"NN"}, "MEN": {"NNS"}, "WOMAN": {"NN"},
	"WOMEN": {"NNS"}, "CHILD": {"NN"}, "CHILDREN": {"NNS"}, "DAY": {"NN"},
	"DAYS": {"NNS"}, "YEAR": {"NN"}, "YEARS": {"NNS"}, "MONTH": {"NN"},
	"MONTHS": {"NNS"}, "WORLD": {"NN"}, "HOUSE": {"NN"}, "WATER": {"NN"},
	"SCHOOL": {"NN"}, "ORGANIZATION": {"NN"}, "COUNTRY": {"NN"}, "CITY": {"NN"},
	"NAME": {"NN"}, "PART": {"NN"}, "PLACE": {"NN", "VB"}, "CASE": {"NN"},
	"COMPANY": {"NN"}, "GROUP": {"NN"}, "PROBLEM": {"NN"}, "FACT": {"NN"},
	"HAND": {"NN"}, "EYE": {"NN"}, "LIFE": {"NN"}, "NIGHT": {"NN"},
	"THING": {"NN"}, "THINGS": {"NNS"}, "WAY": {"NN"}, "END": {"NN", "VB"},
	"HOME": {"NN"}, "TODAY": {"NN"}, "YESTERDAY": {"NN"}, "TOMORROW": {"NN"},
	"MONEY": {"NN"}, "BOOK": {"NN"}, "WORD": {"NN"}, "WORDS": {"NNS"},
	"QUESTION": {"NN"}, "ANSWER": {"NN", "VB"}, "IDEA": {"NN"}, "STORY": {"NN"},
	"PAPER": {"NN"}, "DOG": {"NN"}, "CAT": {"NN"}, "TREE": {"NN"}, "CAR": {"NN"},

	// Proper nouns
	"INDIA": {"NNP"}, "CONGRESS": {"NNP"}, "LONDON": {"NNP"}, "PARIS": {"NNP"},
	"MONDAY": {"NNP"}, "TUESDAY": {"NNP"}, "WEDNESDAY": {"NNP"}, "THURSDAY": {"NNP"},
	"FRIDAY": {"NNP"}, "SATURDAY": {"NNP"}, "SUNDAY": {"NNP"},
	"JANUARY": {"NNP"}, "FEBRUARY": {"NNP"}, "MARCH": {"NNP", "NN", "VB"},
	"APRIL": {"NNP"}, "JUNE": {"NNP"}, "JULY": {"NNP"}, "AUGUST": {"NNP"},
	"SEPTEMBER": {"NNP"}, "OCTOBER": {"NNP"}, "NOVEMBER": {"NNP"}, "DECEMBER": {"NNP"},

	// Interjections
	"OH": {"UH"}, "HEY": {"UH"}, "YES": {"UH"}, "OK": {"UH"}, "OKAY": {"UH"}, "PLEASE": {"UH"},
}
