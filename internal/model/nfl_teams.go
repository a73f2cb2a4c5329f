package model

import "strings"

// TeamFA marks players without a current team assignment.
const TeamFA = "FA"

// nflTeams maps the canonical abbreviation to the full team name.
var nflTeams = map[string]string{
	// NFC
	"ARI": "Arizona Cardinals",
	"ATL": "Atlanta Falcons",
	"CAR": "Carolina Panthers",
	"CHI": "Chicago Bears",
	"DAL": "Dallas Cowboys",
	"DET": "Detroit Lions",
	"GB":  "Green Bay Packers",
	"LA":  "Los Angeles Rams",
	"MIN": "Minnesota Vikings",
	"NO":  "New Orleans Saints",
	"NYG": "New York Giants",
	"PHI": "Philadelphia Eagles",
	"SF":  "San Francisco 49ers",
	"SEA": "Seattle Seahawks",
	"TB":  "Tampa Bay Buccaneers",
	"WAS": "Washington Commanders",
	// AFC
	"BAL": "Baltimore Ravens",
	"BUF": "Buffalo Bills",
	"CIN": "Cincinnati Bengals",
	"CLE": "Cleveland Browns",
	"DEN": "Denver Broncos",
	"HOU": "Houston Texans",
	"IND": "Indianapolis Colts",
	"JAX": "Jacksonville Jaguars",
	"KC":  "Kansas City Chiefs",
	"LV":  "Las Vegas Raiders",
	"LAC": "Los Angeles Chargers",
	"MIA": "Miami Dolphins",
	"NE":  "New England Patriots",
	"NYJ": "New York Jets",
	"PIT": "Pittsburgh Steelers",
	"TEN": "Tennessee Titans",
}

// teamAliases covers relocations and alternate abbreviations that still show
// up in older stat rows and third-party feeds.
var teamAliases = map[string]string{
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LA",
	"LAR": "LA",
	"WSH": "WAS",
	"JAC": "JAX",
	"GBP": "GB",
	"KCC": "KC",
	"NOS": "NO",
	"SFO": "SF",
	"TBB": "TB",
}

// NormalizeTeam maps any team string from an upstream source to the canonical
// abbreviation. Unknown or empty values become TeamFA.
func NormalizeTeam(team string) string {
	t := strings.ToUpper(strings.TrimSpace(team))
	if t == "" || t == "N/A" || t == "FA" || t == "FA*" {
		return TeamFA
	}
	if alias, ok := teamAliases[t]; ok {
		return alias
	}
	if _, ok := nflTeams[t]; ok {
		return t
	}
	// RETIRED flows through untouched so downstream scoring can zero it out.
	if t == "RETIRED" {
		return t
	}
	return TeamFA
}

// TeamName returns the full name for a canonical abbreviation, or the
// abbreviation itself when it is not a real club (FA, RETIRED).
func TeamName(abbr string) string {
	if name, ok := nflTeams[NormalizeTeam(abbr)]; ok {
		return name
	}
	return abbr
}
