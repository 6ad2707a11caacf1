package stations

import "github.com/pkg/errors"

// Name takes a National Rail Computer Reservation System (CRS) code and
// returns the station's display name if known, otherwise an error.
// This information is derived from the StationCodes dataset published by
// National Rail Enquiries. It changes very infrequently, so a static map
// was considered preferable to fetching and caching the dataset.
// The map is not exhaustive; an unknown code is not proof that a station
// does not exist, and the web service remains the authority.
func Name(crsCode string) (string, error) {
	name := crsToName[crsCode]
	if name == "" {
		return "", errors.Errorf("unknown CRS code %q", crsCode)
	}

	return name, nil
}

// IsValid reports whether a CRS code is well formed: exactly three
// upper-case letters. It does not check that a station with that code
// exists.
func IsValid(crsCode string) bool {
	if len(crsCode) != 3 {
		return false
	}

	for _, r := range crsCode {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

var crsToName = map[string]string{
	"ABD": "Aberdeen",
	"AFK": "Ashford International",
	"BHM": "Birmingham New Street",
	"BMO": "Birmingham Moor Street",
	"BON": "Bolton",
	"BRI": "Bristol Temple Meads",
	"BTN": "Brighton",
	"CAR": "Carlisle",
	"CBG": "Cambridge",
	"CDF": "Cardiff Central",
	"CHX": "London Charing Cross",
	"CLJ": "Clapham Junction",
	"COV": "Coventry",
	"CRE": "Crewe",
	"DBY": "Derby",
	"DEE": "Dundee",
	"DHM": "Durham",
	"DON": "Doncaster",
	"EDB": "Edinburgh Waverley",
	"ECR": "East Croydon",
	"EUS": "London Euston",
	"EXD": "Exeter St Davids",
	"GLC": "Glasgow Central",
	"GLQ": "Glasgow Queen Street",
	"GTW": "Gatwick Airport",
	"HUD": "Huddersfield",
	"HUL": "Hull",
	"INV": "Inverness",
	"IPS": "Ipswich",
	"KGX": "London Kings Cross",
	"LBG": "London Bridge",
	"LDS": "Leeds",
	"LEI": "Leicester",
	"LIV": "Liverpool Lime Street",
	"LST": "London Liverpool Street",
	"MAN": "Manchester Piccadilly",
	"MBR": "Middlesbrough",
	"MCO": "Manchester Oxford Road",
	"MCV": "Manchester Victoria",
	"MIA": "Manchester Airport",
	"MKC": "Milton Keynes Central",
	"MYB": "London Marylebone",
	"NCL": "Newcastle",
	"NRW": "Norwich",
	"NOT": "Nottingham",
	"OXF": "Oxford",
	"PAD": "London Paddington",
	"PBO": "Peterborough",
	"PLY": "Plymouth",
	"PRE": "Preston",
	"RDG": "Reading",
	"SHF": "Sheffield",
	"SOU": "Southampton Central",
	"SPT": "Stockport",
	"STP": "London St Pancras International",
	"SWA": "Swansea",
	"SWI": "Swindon",
	"VIC": "London Victoria",
	"WAT": "London Waterloo",
	"WGN": "Wigan North Western",
	"WVH": "Wolverhampton",
	"YRK": "York",
}
