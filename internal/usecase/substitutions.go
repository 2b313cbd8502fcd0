package usecase

// substitutionTable maps a normalized ingredient key to ingredients that can
// stand in for it. The table is curated out of band and treated as
// symmetric in effect: the resolver also walks it in reverse, so listing
// "scallion" under "spring onion" is enough to match both directions.
// Keys and values must already be in normalized form.
var substitutionTable = map[string][]string{
	// Alliums
	"spring onion": {"scallion", "green onion"},
	"shallot":      {"onion"},
	"leek":         {"onion", "spring onion"},

	// Herbs
	"cilantro":    {"coriander", "fresh coriander"},
	"coriander":   {"cilantro"},
	"parsley":     {"flat-leaf parsley", "italian parsley"},
	"basil":       {"thai basil"},
	"oregano":     {"marjoram"},
	"chives":      {"spring onion", "scallion"},

	// Produce with regional names
	"eggplant":     {"aubergine"},
	"zucchini":     {"courgette"},
	"bell pepper":  {"capsicum", "sweet pepper"},
	"beet":         {"beetroot"},
	"arugula":      {"rocket"},
	"snow pea":     {"mangetout"},
	"corn":         {"sweetcorn", "maize"},
	"romaine":      {"cos lettuce"},

	// Legumes
	"chickpea":    {"garbanzo bean", "garbanzo"},
	"green bean":  {"string bean", "french bean"},
	"fava bean":   {"broad bean"},

	// Proteins
	"shrimp":        {"prawn"},
	"ground beef":   {"minced beef", "beef mince"},
	"ground pork":   {"minced pork", "pork mince"},
	"chicken stock": {"chicken broth"},
	"beef stock":    {"beef broth"},
	"vegetable stock": {"vegetable broth"},

	// Dairy and fats
	"heavy cream":    {"double cream", "heavy whipping cream"},
	"half and half":  {"single cream"},
	"butter":         {"margarine"},
	"yogurt":         {"yoghurt", "greek yogurt"},
	"sour cream":     {"creme fraiche"},

	// Baking
	"powdered sugar":    {"icing sugar", "confectioner sugar"},
	"cornstarch":        {"corn flour", "cornflour"},
	"all-purpose flour": {"plain flour"},
	"baking soda":       {"bicarbonate of soda", "sodium bicarbonate"},
	"molasses":          {"treacle"},
	"semisweet chocolate": {"dark chocolate"},

	// Pantry
	"soy sauce":    {"tamari"},
	"tomato paste": {"tomato puree"},
	"canned tomato": {"tinned tomato", "chopped tomato"},
	"chili flakes": {"red pepper flakes", "crushed red pepper"},
	"chili":        {"chile", "chilli"},
	"olive oil":    {"extra virgin olive oil"},
	"white wine vinegar": {"white vinegar"},
	"ketchup":      {"tomato ketchup", "catsup"},
	"oatmeal":      {"rolled oats", "porridge oats"},
}
