package strategy

import "github.com/heartmarshall/visaletter-backend/internal/domain"

var canadaExplanation = variant{
	key:       Key{domain.CountryCanada, domain.LetterTypeExplanation},
	document:  "Study Permit Letter of Explanation",
	authority: "an Immigration, Refugees and Citizenship Canada (IRCC) visa officer",
	words:     domain.WordRange{Min: 800, Max: 1200},
	sections: []string{
		"Introduction and the program and Designated Learning Institution applied to",
		"Academic and professional background",
		"Why this program in Canada, and why not in the home country",
		"Financial support for tuition and living expenses",
		"Ties to the home country and plans to return after studies",
	},
	guidance: []string{
		"Officers must be satisfied the applicant will leave Canada at the end of the authorised stay; make home ties concrete.",
	},
}
