package metro2

import "github.com/credlogic/metro2/internal/model"

// CommentFieldName is the Metro 2 field identifier for special comments.
const CommentFieldName = "Special Comment (Field 19)"

var specialCommentCodes = map[string]model.SpecialComment{
	"AB": {Code: "AB", Description: "Debt being paid through insurance", Category: "payment", CRRGSection: "CRRG 2025, Field 19"},
	"AC": {Code: "AC", Description: "Account closed at consumer's request", Category: "closure", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"AH": {Code: "AH", Description: "Purchased by another lender", Category: "transfer", CRRGSection: "CRRG 2025, Field 19"},
	"AI": {Code: "AI", Description: "Recalled to active military duty", Category: "military", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"AM": {Code: "AM", Description: "Account payments assured by wage garnishment", Category: "payment", CRRGSection: "CRRG 2025, Field 19"},
	"AN": {Code: "AN", Description: "Account acquired from another lender", Category: "transfer", CRRGSection: "CRRG 2025, Field 19"},
	"AO": {Code: "AO", Description: "Voluntarily surrendered", Category: "derogatory", CRRGSection: "CRRG 2025, Field 19"},
	"AP": {Code: "AP", Description: "Credit line suspended", Category: "status", CRRGSection: "CRRG 2025, Field 19"},
	"AS": {Code: "AS", Description: "Account closed due to refinance", Category: "closure", CRRGSection: "CRRG 2025, Field 19"},
	"AT": {Code: "AT", Description: "Account closed due to transfer", Category: "closure", CRRGSection: "CRRG 2025, Field 19"},
	"AU": {Code: "AU", Description: "Authorized user of this account", Category: "relationship", CRRGSection: "CRRG 2025, Field 19"},
	"AV": {Code: "AV", Description: "Affected by identity theft, under investigation", Category: "dispute", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"AW": {Code: "AW", Description: "Account information disputed by consumer", Category: "dispute", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"AZ": {Code: "AZ", Description: "Redeemed repossession", Category: "derogatory", CRRGSection: "CRRG 2025, Field 19"},
	"B":  {Code: "B", Description: "Account closed by consumer", Category: "closure", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"BA": {Code: "BA", Description: "Transferred to recovery", Category: "derogatory", CRRGSection: "CRRG 2025, Field 19"},
	"DA": {Code: "DA", Description: "Dispute investigation in progress (FCRA direct dispute)", Category: "dispute", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
	"ID": {Code: "ID", Description: "Consumer disputes account information", Category: "dispute", ConsumerFavorable: true, CRRGSection: "CRRG 2025, Field 19"},
}
