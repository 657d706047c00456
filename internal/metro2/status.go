// Package metro2 holds the CRRG 2025 reference tables: account status codes,
// payment rating codes, special comment codes, compliance condition codes and
// the per-category 2025 required-field sets. Tables are populated in their
// declarations and never mutated; callers go through the copy-returning
// accessors in lookup.go.
package metro2

import "github.com/credlogic/metro2/internal/model"

// ValidStatusRange is cited in invalid-code violations.
const ValidStatusRange = "05, 11, 13, 61-97"

// StatusFieldName is the Metro 2 field identifier for account status.
const StatusFieldName = "Account Status (Field 17A)"

var accountStatusCodes = map[string]model.StatusCode{
	"05": {Code: "05", Description: "Account transferred", Category: "transfer", CRRGSection: "CRRG 2025, Field 17A"},
	"11": {Code: "11", Description: "Current account (0-29 days past due)", Category: "current", CRRGSection: "CRRG 2025, Field 17A"},
	"13": {Code: "13", Description: "Paid or closed account, zero balance", Category: "closed", CRRGSection: "CRRG 2025, Field 17A"},
	"61": {Code: "61", Description: "Account 30-59 days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"62": {Code: "62", Description: "Account 60-89 days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"63": {Code: "63", Description: "Account 90-119 days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"64": {Code: "64", Description: "Account 120-149 days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"65": {Code: "65", Description: "Account 150-179 days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"71": {Code: "71", Description: "Account 180 or more days past due", Category: "delinquent", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"78": {Code: "78", Description: "Voluntary surrender", Category: "derogatory", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"80": {Code: "80", Description: "Account assigned to collections", Category: "collection", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"82": {Code: "82", Description: "Account charged off to bad debt", Category: "chargeoff", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"83": {Code: "83", Description: "Bankruptcy Chapter 7", Category: "bankruptcy", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 7)"},
	"84": {Code: "84", Description: "Bankruptcy Chapter 11", Category: "bankruptcy", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 11)"},
	"85": {Code: "85", Description: "Bankruptcy Chapter 12", Category: "bankruptcy", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 12)"},
	"86": {Code: "86", Description: "Bankruptcy Chapter 13", Category: "bankruptcy", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Bankruptcy Reporting (Ch. 13)"},
	"88": {Code: "88", Description: "Claim filed with government", Category: "derogatory", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"89": {Code: "89", Description: "Deed received in lieu of foreclosure", Category: "derogatory", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"93": {Code: "93", Description: "Merchandise repossessed", Category: "derogatory", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"94": {Code: "94", Description: "Account sold to another furnisher", Category: "transfer", CRRGSection: "CRRG 2025, Field 17A"},
	"95": {Code: "95", Description: "Foreclosure started", Category: "derogatory", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
	"96": {Code: "96", Description: "Account closed at consumer's request", Category: "closed", CRRGSection: "CRRG 2025, Field 17A"},
	"97": {Code: "97", Description: "Unpaid balance reported as a loss (charge-off)", Category: "chargeoff", IsDerogatory: true, RequiresDOFD: true, CRRGSection: "CRRG 2025, Field 17A"},
}

// statusPaymentCompatibility maps each status code to the payment rating
// codes allowed in the most recent position of the payment history.
var statusPaymentCompatibility = map[string][]string{
	"05": {"0", "1", "2", "3", "4", "5", "6", "B", "D", "E", ""},
	"11": {"0", "", "E", "B", "D"},
	"13": {"0", "", "E", "B", "D"},
	"61": {"1", "B", "D"},
	"62": {"2", "B", "D"},
	"63": {"3", "B", "D"},
	"64": {"4", "B", "D"},
	"65": {"5", "B", "D"},
	"71": {"6", "B", "D"},
	"78": {"4", "5", "6", "B", "D"},
	"80": {"4", "5", "6", "B", "D"},
	"82": {"5", "6", "B", "D"},
	"83": {"0", "1", "2", "3", "4", "5", "6", "B", "D", ""},
	"84": {"0", "1", "2", "3", "4", "5", "6", "B", "D", ""},
	"85": {"0", "1", "2", "3", "4", "5", "6", "B", "D", ""},
	"86": {"0", "1", "2", "3", "4", "5", "6", "B", "D", ""},
	"88": {"4", "5", "6", "B", "D"},
	"89": {"4", "5", "6", "B", "D"},
	"93": {"4", "5", "6", "B", "D"},
	"94": {"0", "1", "2", "3", "4", "5", "6", "B", "D", "E", ""},
	"95": {"4", "5", "6", "B", "D"},
	"96": {"0", "", "E", "B", "D"},
	"97": {"6", "B", "D"},
}

// bankruptcyStatusCodes maps bankruptcy status codes to their chapter.
var bankruptcyStatusCodes = map[string]string{
	"83": "7",
	"84": "11",
	"85": "12",
	"86": "13",
}
