package metro2

import "github.com/credlogic/metro2/internal/model"

// ConditionFieldName is the Metro 2 field identifier for compliance conditions.
const ConditionFieldName = "Compliance Condition Code (Field 20)"

var complianceConditionCodes = map[string]model.ComplianceCondition{
	"XA": {Code: "XA", Description: "Forbearance granted due to natural or declared disaster", Category: "disaster", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XB": {Code: "XB", Description: "Account affected by disaster, payments deferred", Category: "disaster", ConsumerProtection: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XC": {Code: "XC", Description: "Account current under disaster relief arrangement", Category: "disaster", ConsumerProtection: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XD": {Code: "XD", Description: "Account was delinquent prior to disaster declaration", Category: "disaster", ConsumerProtection: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XE": {Code: "XE", Description: "Disaster relief period ended", Category: "disaster", ConsumerProtection: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XF": {Code: "XF", Description: "Forbearance, payments deferred", Category: "forbearance", ConsumerProtection: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XG": {Code: "XG", Description: "Forbearance, partial payment arrangement", Category: "forbearance", ConsumerProtection: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XH": {Code: "XH", Description: "Declared disaster area, account status frozen", Category: "disaster", ConsumerProtection: true, Enhanced2025: true, CRRGSection: "CRRG 2025, Field 20 (Disaster)"},
	"XJ": {Code: "XJ", Description: "Consumer on active military duty", Category: "military", ConsumerProtection: true, SCRAProtected: true, MLAProtected: true, CRRGSection: "CRRG 2025, Field 20 (SCRA/MLA)"},
	"XK": {Code: "XK", Description: "SCRA relief, interest rate benefit active", Category: "military", ConsumerProtection: true, SCRAProtected: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (SCRA/MLA)"},
	"XM": {Code: "XM", Description: "Forbearance, hardship program", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XN": {Code: "XN", Description: "Forbearance, federal relief program", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XO": {Code: "XO", Description: "Forbearance, mortgage servicing arrangement", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XP": {Code: "XP", Description: "Forbearance, student loan relief", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XQ": {Code: "XQ", Description: "Forbearance, trial modification period", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
	"XR": {Code: "XR", Description: "Forbearance exited, repayment plan active", Category: "forbearance", ConsumerProtection: true, Enhanced2025: true, RequiresEndDate: true, CRRGSection: "CRRG 2025, Field 20 (Forbearance)"},
}

// forbearanceConditionCodes are the condition codes that satisfy the
// is_forbearance presence check.
var forbearanceConditionCodes = []string{"XF", "XG", "XM", "XN", "XO", "XP", "XQ", "XR"}

// disasterConditionCodes are the condition codes that satisfy the
// is_disaster_affected presence check.
var disasterConditionCodes = []string{"XA", "XB", "XC", "XD", "XE", "XH"}
