package resolver

// Fixed prefix tokens of the form-key vocabulary.
const (
	femalePrefix = "fem"
	malePrefix   = "male"
	megaPrefix   = "m"
	megaXPrefix  = "mx"
	megaYPrefix  = "my"
	// genericRegionalPrefix marks a regional form without naming its
	// region; the target is looked up in the per-creature regional side
	// table built by the roster importer.
	genericRegionalPrefix = "r"
)

// megaSuffixes maps the three mega prefixes to their name suffixes. Each
// bucket elects its own canonical representative.
var megaSuffixes = map[string]string{
	megaPrefix:  "-Mega",
	megaXPrefix: "-Mega-X",
	megaYPrefix: "-Mega-Y",
}

// megaExclusions lists creatures whose "m"-family prefixes are literal
// alphabet form codes, not power-up markers. Unown's letter forms are the
// known case.
var megaExclusions = map[string]bool{
	"201": true,
}

// regionPrefixSuffixes maps the explicit regional prefixes straight to
// their region suffix.
var regionPrefixSuffixes = map[string]string{
	"al": "-Alola",
	"ga": "-Galar",
	"hi": "-Hisui",
	"pa": "-Paldea",
}

// regionCodeSuffixes maps the side-table region codes (derived from roster
// names) to suffixes, used when resolving the generic regional prefix. The
// sevii mapping is unconfirmed domain data; it is kept here as configuration
// so correcting it is a data change.
var regionCodeSuffixes = map[string]string{
	"alola":  "-Alola",
	"galar":  "-Galar",
	"hisui":  "-Hisui",
	"paldea": "-Paldea",
	"sevii":  "-Sevii",
}

// duplicateMarkers are key substrings denoting redundant renders that must
// never receive independent names: aggregate sheets and, per creature,
// known generation-specific duplicates.
var duplicateMarkers = []string{"(all)"}

var duplicateMarkersByID = map[string][]string{
	"133": {"(gen8)"},
}

// canonicalOverrides maps a creature id to the prefix of its in-game
// default form, for roster members whose default is not the plain sprite.
// Domain data reproduced from the sprite sources, not inferred.
var canonicalOverrides = map[string]string{
	"201": "a",    // Unown A
	"386": "n",    // Deoxys Normal Forme
	"421": "o",    // Cherrim Overcast
	"550": "rs",   // Basculin Red-Striped
	"555": "st",   // Darmanitan Standard Mode
	"585": "sp",   // Deerling Spring
	"586": "sp",   // Sawsbuck Spring
	"641": "in",   // Tornadus Incarnate
	"642": "in",   // Thundurus Incarnate
	"645": "in",   // Landorus Incarnate
	"647": "or",   // Keldeo Ordinary
	"648": "ar",   // Meloetta Aria
	"666": "me",   // Vivillon Meadow
	"669": "red",  // Flabebe Red Flower
	"670": "red",  // Floette Red Flower
	"671": "red",  // Florges Red Flower
	"676": "na",   // Furfrou Natural Trim
	"678": "male", // Meowstic Male
	"710": "av",   // Pumpkaboo Average Size
	"711": "av",   // Gourgeist Average Size
	"718": "50",   // Zygarde 50% Forme
	"741": "ba",   // Oricorio Baile Style
	"745": "md",   // Lycanroc Midday
	"746": "so",   // Wishiwashi Solo
	"774": "mt",   // Minior Meteor
	"778": "di",   // Mimikyu Disguised
	"849": "am",   // Toxtricity Amped
	"875": "i",    // Eiscue Ice Face
	"876": "male", // Indeedee Male
	"877": "fb",   // Morpeko Full Belly
	"892": "ss",   // Urshifu Single Strike
	"905": "in",   // Enamorus Incarnate
}

// suffixRule scopes one prefix-to-suffix mapping to a fixed set of
// creature ids.
type suffixRule struct {
	ids    []string
	suffix string
}

// specialSuffixes maps short form-key prefixes to named alternate forms,
// each scoped to the creatures that actually carry the form. Checked before
// the generic regional and capitalized fallbacks. Domain data, same caveat
// as canonicalOverrides.
var specialSuffixes = map[string][]suffixRule{
	"at":    {{ids: []string{"386"}, suffix: "-Attack"}},
	"de":    {{ids: []string{"386"}, suffix: "-Defense"}},
	"sp":    {{ids: []string{"386"}, suffix: "-Speed"}},
	"s":     {{ids: []string{"421"}, suffix: "-Sunshine"}},
	"e":     {{ids: []string{"422", "423"}, suffix: "-East"}},
	"h":     {{ids: []string{"479"}, suffix: "-Heat"}},
	"w":     {{ids: []string{"479"}, suffix: "-Wash"}, {ids: []string{"646"}, suffix: "-White"}},
	"fr":    {{ids: []string{"479"}, suffix: "-Frost"}},
	"fa":    {{ids: []string{"479"}, suffix: "-Fan"}},
	"mo":    {{ids: []string{"479"}, suffix: "-Mow"}},
	"o":     {{ids: []string{"487"}, suffix: "-Origin"}, {ids: []string{"669", "670", "671"}, suffix: "-Orange"}},
	"sky":   {{ids: []string{"492"}, suffix: "-Sky"}},
	"bs":    {{ids: []string{"550"}, suffix: "-Blue-Striped"}},
	"ws":    {{ids: []string{"550"}, suffix: "-White-Striped"}},
	"z":     {{ids: []string{"555"}, suffix: "-Zen"}},
	"su":    {{ids: []string{"585", "586"}, suffix: "-Summer"}, {ids: []string{"710", "711"}, suffix: "-Super"}},
	"au":    {{ids: []string{"585", "586"}, suffix: "-Autumn"}},
	"wi":    {{ids: []string{"585", "586"}, suffix: "-Winter"}},
	"t":     {{ids: []string{"641", "642", "645", "905"}, suffix: "-Therian"}},
	"b":     {{ids: []string{"646"}, suffix: "-Black"}, {ids: []string{"669", "670", "671"}, suffix: "-Blue"}},
	"re":    {{ids: []string{"647"}, suffix: "-Resolute"}},
	"p":     {{ids: []string{"648"}, suffix: "-Pirouette"}},
	"fancy": {{ids: []string{"666"}, suffix: "-Fancy"}},
	"pb":    {{ids: []string{"666"}, suffix: "-Poke-Ball"}},
	"y":     {{ids: []string{"669", "670", "671"}, suffix: "-Yellow"}},
	"wh":    {{ids: []string{"669", "670", "671"}, suffix: "-White"}},
	"he":    {{ids: []string{"676"}, suffix: "-Heart"}},
	"st":    {{ids: []string{"676"}, suffix: "-Star"}},
	"di":    {{ids: []string{"676"}, suffix: "-Diamond"}},
	"sm":    {{ids: []string{"710", "711"}, suffix: "-Small"}},
	"l":     {{ids: []string{"710", "711"}, suffix: "-Large"}},
	"10":    {{ids: []string{"718"}, suffix: "-10"}},
	"c":     {{ids: []string{"718"}, suffix: "-Complete"}, {ids: []string{"774"}, suffix: "-Core"}},
	"u":     {{ids: []string{"720"}, suffix: "-Unbound"}, {ids: []string{"800"}, suffix: "-Ultra"}},
	"pom":   {{ids: []string{"741"}, suffix: "-Pom-Pom"}},
	"pau":   {{ids: []string{"741"}, suffix: "-Pau"}},
	"sen":   {{ids: []string{"741"}, suffix: "-Sensu"}},
	"mn":    {{ids: []string{"745"}, suffix: "-Midnight"}},
	"d":     {{ids: []string{"745"}, suffix: "-Dusk"}},
	"sc":    {{ids: []string{"746"}, suffix: "-School"}},
	"dm":    {{ids: []string{"800"}, suffix: "-Dusk-Mane"}},
	"dw":    {{ids: []string{"800"}, suffix: "-Dawn-Wings"}},
	"lk":    {{ids: []string{"849"}, suffix: "-Low-Key"}},
	"n":     {{ids: []string{"875"}, suffix: "-Noice"}},
	"hg":    {{ids: []string{"877"}, suffix: "-Hangry"}},
	"rsk":   {{ids: []string{"892"}, suffix: "-Rapid-Strike"}},
	"ir":    {{ids: []string{"898"}, suffix: "-Ice-Rider"}},
	"sr":    {{ids: []string{"898"}, suffix: "-Shadow-Rider"}},
}

// specialSuffix looks up the id-scoped suffix for prefix, if any.
func specialSuffix(creatureID, prefix string) (string, bool) {
	for _, rule := range specialSuffixes[prefix] {
		for _, id := range rule.ids {
			if id == creatureID {
				return rule.suffix, true
			}
		}
	}
	return "", false
}

// isDuplicateRender reports whether a raw key denotes a redundant render
// that is filtered out before naming.
func isDuplicateRender(creatureID, rawKey string) bool {
	for _, marker := range duplicateMarkers {
		if containsFold(rawKey, marker) {
			return true
		}
	}
	for _, marker := range duplicateMarkersByID[creatureID] {
		if containsFold(rawKey, marker) {
			return true
		}
	}
	return false
}
