package lexicon

var baseVagueTerms = []string{
	"fast", "quick", "quickly", "slow", "easy", "easily", "simple", "simply",
	"user-friendly", "user friendly", "robust", "efficient", "efficiently",
	"better", "best", "good", "nice", "intuitive", "seamless", "seamlessly",
	"flexible", "modern", "clean", "smooth", "responsive", "optimal", "optimized",
	"sufficient", "minimal", "adequate performance", "high performance",
	"state of the art", "as soon as possible", "asap", "soon", "timely",
	"etc", "and so on", "reasonable", "normally", "usually", "approximately",
	"powerful", "lightweight", "convenient",
}

var quantityTerms = []string{
	"many", "few", "some", "several", "various", "multiple", "numerous",
	"a lot of", "lots of", "large number of", "a large number of", "a number of",
	"plenty of", "a bunch of", "countless", "a majority of",
}

var successTerms = []string{
	"successfully", "properly", "correctly", "as expected", "works well",
	"work well", "appropriately", "appropriate", "adequately", "satisfactorily",
	"as intended", "as needed", "as required", "without issues", "without problems",
}

var indefiniteSubjects = []string{
	"someone", "somebody", "anyone", "anybody", "everyone", "everybody",
	"no one", "nobody", "whoever",
}

var benefitTerms = []string{
	"save", "saves", "saving", "reduce", "reduces", "reducing", "increase",
	"increases", "improve", "improves", "improving", "revenue", "cost", "costs",
	"time", "efficiency", "productivity", "faster", "avoid", "prevent", "ensure",
	"track", "comply", "compliance", "profit", "sales", "conversion", "retention",
	"satisfaction", "accuracy", "errors", "risk", "decision", "decisions",
	"visibility", "insight", "insights", "secure", "access", "manage",
}

var roleNouns = []string{
	"user", "admin", "administrator", "customer", "client", "manager", "operator",
	"guest", "visitor", "member", "system", "service", "owner", "employee",
	"developer", "analyst", "editor", "author", "reviewer", "approver", "buyer",
	"seller", "vendor", "supplier", "student", "teacher", "patient", "doctor",
	"agent", "subscriber", "moderator", "auditor", "accountant", "shopper",
	"tester", "supervisor", "staff", "stakeholder", "application",
}

var objectNouns = []string{
	"account", "profile", "password", "email", "data", "file", "document",
	"report", "dashboard", "order", "product", "item", "invoice", "payment",
	"message", "notification", "record", "transaction", "cart", "ticket",
	"comment", "post", "image", "photo", "setting", "preference",
	"task", "project", "appointment", "booking", "reservation", "schedule",
	"balance", "statement", "receipt", "catalog", "category", "review",
	"address", "session", "token", "permission", "role", "log",
}

var stopwords = []string{
	"i", "me", "my", "we", "us", "our", "you", "your", "he", "she", "it", "its",
	"they", "them", "their", "a", "an", "the", "this", "that", "these", "those",
	"and", "or", "but", "nor", "so", "to", "of", "in", "on", "at", "by", "for",
	"with", "from", "into", "onto", "about", "as", "than", "then", "if", "else",
	"when", "while", "where", "which", "who", "whom", "whose", "what", "how",
	"is", "are", "was", "were", "be", "been", "being", "am", "do", "does", "did",
	"have", "has", "had", "can", "could", "should", "would", "will", "shall",
	"must", "may", "might", "need", "needs", "want", "wants", "able", "not",
	"no", "all", "any", "each", "every", "some", "such", "only", "also", "very",
	"up", "out", "within", "without", "after", "before", "via", "per", "using",
	"there", "here", "again", "because", "until", "unless", "otherwise",
}

var determiners = []string{
	"a", "an", "the", "my", "our", "your", "his", "her", "its", "their", "this",
	"that", "these", "those", "all", "each", "every", "any", "some", "new",
	"existing", "own",
}

var baseVerbs = []string{
	"create", "add", "update", "edit", "modify", "delete", "remove", "view",
	"see", "display", "show", "list", "search", "find", "filter", "sort",
	"browse", "login", "logout", "register", "submit", "send", "receive",
	"upload", "download", "export", "import", "generate", "process", "validate",
	"verify", "approve", "reject", "assign", "transfer", "pay", "purchase",
	"buy", "book", "cancel", "reset", "change", "manage", "track", "monitor",
	"notify", "share", "save", "print", "schedule", "access", "configure",
	"select", "check", "review", "sync", "store", "calculate", "compare",
	"archive", "restore", "subscribe", "unsubscribe", "rate", "read", "write",
	"open", "close", "authenticate", "authorize", "invite", "publish", "refund",
	"log", "sign", "enter", "retrieve", "query", "checkout", "confirm",
}

// eventVerbs happen to things; they end an object phrase but are never actions
var eventVerbs = []string{
	"fail", "succeed", "expire", "occur", "happen", "exist", "appear",
	"disappear", "arrive", "become", "remain", "seem",
}

// irregularVerbs covers forms the suffix rules get wrong
var irregularVerbs = map[string]string{
	"submitted": "submit", "submitting": "submit",
	"logged": "log", "logging": "log",
	"signed": "sign", "signing": "sign",
	"paid": "pay", "saw": "see", "seen": "see", "found": "find",
	"sent": "send", "bought": "buy", "read": "read", "wrote": "write",
	"written": "write", "shown": "show",
	"transferred": "transfer", "transferring": "transfer",
	"cancelled": "cancel", "cancelling": "cancel", "canceled": "cancel",
	"logs": "log", "signs": "sign",
	"logins": "login", "logouts": "logout",
}
