package riot

// PlatformByRegion maps user-facing region codes to Riot platform hosts.
var PlatformByRegion = map[string]string{
	"na":   "na1",
	"euw":  "euw1",
	"eune": "eun1",
	"kr":   "kr",
	"br":   "br1",
	"la1":  "la1",
	"la2":  "la2",
	"oc1":  "oc1",
	"tr":   "tr1",
	"ru":   "ru",
}

// RegionByPlatform maps platform hosts to the regional routing host used by
// the account and match-v5 APIs.
var RegionByPlatform = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"kr":   "asia",
	"jp1":  "asia",
}

// Route resolves a region code into its platform and regional routing hosts.
// ok is false when the region is not recognized.
func Route(region string) (platform, regional string, ok bool) {
	platform, ok = PlatformByRegion[region]
	if !ok {
		return "", "", false
	}
	regional, ok = RegionByPlatform[platform]
	if !ok {
		return "", "", false
	}
	return platform, regional, true
}
