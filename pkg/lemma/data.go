package lemma

// bundled holds the built-in irregular forms. Regular identity lemmas
// (eat/VB → eat) are not stored; Resolve falls back to the normal form for
// any eligible tag, which also covers words like "being" and "people" whose
// observed lemma is the surface form itself.
var bundled = map[Key]string{
	// be
	{"am", "VBP"}: "be", {"is", "VBZ"}: "be", {"are", "VBP"}: "be",
	{"was", "VBD"}: "be", {"were", "VBD"}: "be", {"been", "VBN"}: "be",

	// have
	{"has", "VBZ"}: "have", {"had", "VBD"}: "have", {"had", "VBN"}: "have",
	{"having", "VBG"}: "have",

	// do
	{"does", "VBZ"}: "do", {"did", "VBD"}: "do", {"done", "VBN"}: "do",
	{"doing", "VBG"}: "do",

	// modals
	{"would", "MD"}: "will", {"could", "MD"}: "can",
	{"might", "MD"}: "may", {"should", "MD"}: "shall",

	// irregular verbs
	{"went", "VBD"}: "go", {"gone", "VBN"}: "go", {"goes", "VBZ"}: "go",
	{"going", "VBG"}: "go", {"came", "VBD"}: "come", {"coming", "VBG"}: "come",
	{"got", "VBD"}: "get", {"got", "VBN"}: "get", {"gotten", "VBN"}: "get",
	{"getting", "VBG"}: "get", {"gave", "VBD"}: "give", {"given", "VBN"}: "give",
	{"giving", "VBG"}: "give", {"took", "VBD"}: "take", {"taken", "VBN"}: "take",
	{"taking", "VBG"}: "take", {"made", "VBD"}: "make", {"made", "VBN"}: "make",
	{"making", "VBG"}: "make", {"said", "VBD"}: "say", {"says", "VBZ"}: "say",
	{"saw", "VBD"}: "see", {"seen", "VBN"}: "see", {"seeing", "VBG"}: "see",
	{"knew", "VBD"}: "know", {"known", "VBN"}: "know",
	{"met", "VBD"}: "meet", {"met", "VBN"}: "meet",
	{"left", "VBD"}: "leave", {"left", "VBN"}: "leave", {"leaving", "VBG"}: "leave",
	{"felt", "VBD"}: "feel", {"felt", "VBN"}: "feel", {"feeling", "VBG"}: "feel",
	{"kept", "VBD"}: "keep", {"kept", "VBN"}: "keep",
	{"told", "VBD"}: "tell", {"told", "VBN"}: "tell",
	{"found", "VBD"}: "find", {"found", "VBN"}: "find",
	{"thought", "VBD"}: "think", {"thought", "VBN"}: "think",
	{"brought", "VBD"}: "bring", {"brought", "VBN"}: "bring",
	{"bought", "VBD"}: "buy", {"bought", "VBN"}: "buy",
	{"caught", "VBD"}: "catch", {"caught", "VBN"}: "catch",
	{"held", "VBD"}: "hold", {"held", "VBN"}: "hold",
	{"sent", "VBD"}: "send", {"sent", "VBN"}: "send",
	{"lost", "VBD"}: "lose", {"lost", "VBN"}: "lose",
	{"began", "VBD"}: "begin", {"begun", "VBN"}: "begin",
	{"wrote", "VBD"}: "write", {"written", "VBN"}: "write",
	{"spoke", "VBD"}: "speak", {"spoken", "VBN"}: "speak",
	{"broke", "VBD"}: "break", {"broken", "VBN"}: "break",
	{"rode", "VBD"}: "ride", {"ridden", "VBN"}: "ride", {"riding", "VBG"}: "ride",
	{"ran", "VBD"}: "run", {"running", "VBG"}: "run",
	{"forgot", "VBD"}: "forget", {"forgotten", "VBN"}: "forget",
	{"flew", "VBD"}: "fly", {"flown", "VBN"}: "fly", {"flies", "VBZ"}: "fly",
	{"ate", "VBD"}: "eat", {"eaten", "VBN"}: "eat", {"eats", "VBZ"}: "eat",

	// regular inflections of the bundled lexicon verbs
	{"crossed", "VBD"}: "cross", {"crossed", "VBN"}: "cross",
	{"earned", "VBD"}: "earn", {"earned", "VBN"}: "earn",
	{"created", "VBD"}: "create", {"created", "VBN"}: "create",
	{"asked", "VBD"}: "ask", {"asked", "VBN"}: "ask",
	{"walked", "VBD"}: "walk", {"walked", "VBN"}: "walk", {"walking", "VBG"}: "walk",
	{"tried", "VBD"}: "try", {"tried", "VBN"}: "try", {"trying", "VBG"}: "try",
	{"lived", "VBD"}: "live", {"lives", "VBZ"}: "live", {"living", "VBG"}: "live",
	{"liked", "VBD"}: "like", {"likes", "VBZ"}: "like", {"liking", "VBG"}: "like",
	{"seemed", "VBD"}: "seem", {"seems", "VBZ"}: "seem",
	{"believes", "VBZ"}: "believe", {"believed", "VBD"}: "believe",
	{"wanted", "VBD"}: "want", {"wants", "VBZ"}: "want",
	{"needed", "VBD"}: "need", {"needs", "VBZ"}: "need",
	{"used", "VBD"}: "use", {"used", "VBN"}: "use", {"uses", "VBZ"}: "use",

	// irregular and bundled plural nouns
	{"horses", "NNS"}: "horse", {"weeks", "NNS"}: "week", {"fishes", "NNS"}: "fish",
	{"flies", "NNS"}: "fly", {"expenses", "NNS"}: "expense", {"days", "NNS"}: "day",
	{"years", "NNS"}: "year", {"months", "NNS"}: "month", {"times", "NNS"}: "time",
	{"things", "NNS"}: "thing", {"words", "NNS"}: "word", {"friends", "NNS"}: "friend",
	{"men", "NNS"}: "man", {"women", "NNS"}: "woman", {"children", "NNS"}: "child",
	{"feet", "NNS"}: "foot", {"teeth", "NNS"}: "tooth", {"mice", "NNS"}: "mouse",
	{"geese", "NNS"}: "goose", {"lives", "NNS"}: "life", {"leaves", "NNS"}: "leaf",

	// graded adjectives
	{"best", "JJS"}: "good", {"better", "JJR"}: "good",
	{"worst", "JJS"}: "bad", {"worse", "JJR"}: "bad",
	{"most", "JJS"}: "much", {"more", "JJR"}: "much", {"less", "JJR"}: "little",
}
