package strategy

import "github.com/heartmarshall/visaletter-backend/internal/domain"

var australiaExplanation = variant{
	key:       Key{domain.CountryAustralia, domain.LetterTypeExplanation},
	document:  "Genuine Student Statement",
	authority: "the Australian Department of Home Affairs (Student visa subclass 500)",
	words:     domain.WordRange{Min: 1000, Max: 1500},
	sections: []string{
		"Current circumstances: family, community, employment and economic ties in the home country",
		"Why this course, and how it relates to previous study or work",
		"Why this provider and why Australia rather than the home country",
		"How the course will benefit the applicant's future, with concrete career plans",
		"Explanation of any gaps in study or employment and any previous visa refusals",
		"Intention to comply with visa conditions",
	},
	guidance: []string{
		"Address each Genuine Student criterion explicitly; the case officer assesses them one by one.",
	},
}

var australiaFinancial = variant{
	key:       Key{domain.CountryAustralia, domain.LetterTypeFinancial},
	document:  "Financial Capacity Explanation",
	authority: "the Australian Department of Home Affairs",
	words:     domain.WordRange{Min: 500, Max: 800},
	sections: []string{
		"Summary of total funds available against tuition, living costs and travel",
		"Source of each fund and relationship of any sponsor",
		"Origin and history of large deposits or loans",
		"Plan for funding subsequent years of study",
	},
	guidance: []string{
		"Only cite figures present in the profile and state currencies exactly as given.",
	},
}
