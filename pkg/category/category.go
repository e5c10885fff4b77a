// Package category maps merchant names to a fixed set of spending
// categories using a static keyword table.
package category

import "strings"

// Other is returned when no keyword from the table matches.
const Other = "Other"

type entry struct {
	keyword  string
	category string
}

// storeCategories is scanned top to bottom and the first keyword contained
// in the lowercased input wins. Overlapping keywords ("restoran" vs "park",
// "bazar" vs "bozor") make the order load-bearing: do not reorder entries
// and do not convert this to a map.
var storeCategories = []entry{
	// Food / Grocery
	{"korzinka", "Food"}, {"makro", "Food"}, {"macro", "Food"},
	{"havas", "Food"}, {"carrefour", "Food"}, {"magnum", "Food"},
	{"magnit", "Food"}, {"oqtepa", "Food"}, {"evos", "Food"},
	{"burger", "Food"}, {"restaurant", "Food"}, {"restoran", "Food"},
	{"cafe", "Food"}, {"coffee", "Food"}, {"kofe", "Food"},
	{"stolovaya", "Food"}, {"oshxona", "Food"}, {"lavash", "Food"},
	{"choyxona", "Food"}, {"bazar", "Food"}, {"supermarket", "Food"},
	{"minimarket", "Food"}, {"produkti", "Food"}, {"bakkaleja", "Food"},
	{"non", "Food"}, {"go'sht", "Food"}, {"meva", "Food"},

	// Transport
	{"yandex go", "Transport"}, {"yandex taxi", "Transport"},
	{"uber", "Transport"}, {"mycar", "Transport"},
	{"uzairways", "Transport"}, {"avto", "Transport"},
	{"benzin", "Transport"}, {"toplivo", "Transport"},
	{"zapravka", "Transport"}, {"gaz station", "Transport"},
	{"metro", "Transport"}, {"taksi", "Transport"},

	// Utilities / Telecom
	{"beeline", "Utilities"}, {"ucell", "Utilities"},
	{"mobiuz", "Utilities"}, {"uzmobile", "Utilities"},
	{"turon telecom", "Utilities"}, {"uztelecom", "Utilities"},
	{"elektr", "Utilities"}, {"kommunal", "Utilities"},
	{"issiqlik", "Utilities"}, {"suv", "Utilities"},
	{"internet", "Utilities"}, {"suvokava", "Utilities"},

	// Shopping
	{"mediapark", "Shopping"}, {"texnomart", "Shopping"},
	{"zara", "Shopping"}, {"lcwaikiki", "Shopping"},
	{"samsung", "Shopping"}, {"apple", "Shopping"},
	{"kiyim", "Shopping"}, {"poyabzal", "Shopping"},
	{"mebel", "Shopping"}, {"bozor", "Shopping"},

	// Health
	{"apteka", "Health"}, {"dorixona", "Health"},
	{"pharmacy", "Health"}, {"klinika", "Health"},
	{"hospital", "Health"}, {"poliklinika", "Health"},
	{"stomatolog", "Health"}, {"labaratoriya", "Health"},

	// Entertainment
	{"kinoteatr", "Entertainment"}, {"cinema", "Entertainment"},
	{"magic city", "Entertainment"}, {"aquapark", "Entertainment"},
	{"park", "Entertainment"}, {"konsert", "Entertainment"},

	// Education
	{"kitob", "Education"}, {"book", "Education"},
	{"kurs", "Education"}, {"talim", "Education"},
	{"universitet", "Education"}, {"maktab", "Education"},
	{"repetitor", "Education"},

	// Housing
	{"ijara", "Housing"}, {"arenda", "Housing"}, {"kvartira", "Housing"},
}

// Guess returns the category for a merchant name, or Other when no keyword
// matches. Matching is case-insensitive substring containment, first table
// entry wins. No scoring, no edit distance.
func Guess(merchant string) string {
	if merchant == "" {
		return Other
	}
	name := strings.ToLower(strings.TrimSpace(merchant))
	for _, e := range storeCategories {
		if strings.Contains(name, e.keyword) {
			return e.category
		}
	}
	return Other
}
