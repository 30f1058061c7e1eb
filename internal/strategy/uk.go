package strategy

import "github.com/heartmarshall/visaletter-backend/internal/domain"

var ukExplanation = variant{
	key:       Key{domain.CountryUnitedKingdom, domain.LetterTypeExplanation},
	document:  "Student Visa Personal Statement",
	authority: "a UK Visas and Immigration (UKVI) entry clearance officer",
	words:     domain.WordRange{Min: 600, Max: 1000},
	sections: []string{
		"The course, the sponsoring university and the CAS details given",
		"Academic progression from previous qualifications",
		"Why the UK and this university",
		"Career plans after graduation",
		"Maintenance funds and accommodation arrangements",
	},
	guidance: []string{
		"Write so the statement supports a credibility interview: specific, consistent, and verifiable.",
	},
}
