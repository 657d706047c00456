package metro2

import "github.com/credlogic/metro2/internal/model"

// PatternFieldName is the Metro 2 field identifier for payment history.
const PatternFieldName = "Payment History Profile (Field 18)"

var paymentRatingCodes = map[string]model.PaymentRating{
	"0": {Code: "0", Description: "Current (0-29 days past due)", IsCurrent: true, CRRGSection: "CRRG 2025, Field 18"},
	"1": {Code: "1", Description: "30-59 days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"2": {Code: "2", Description: "60-89 days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"3": {Code: "3", Description: "90-119 days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"4": {Code: "4", Description: "120-149 days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"5": {Code: "5", Description: "150-179 days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"6": {Code: "6", Description: "180 or more days past due", IsDerogatory: true, CRRGSection: "CRRG 2025, Field 18"},
	"B": {Code: "B", Description: "No payment history available prior to this period", IsSpecial: true, CRRGSection: "CRRG 2025, Field 18"},
	"D": {Code: "D", Description: "No payment history available this period", IsSpecial: true, CRRGSection: "CRRG 2025, Field 18"},
	"E": {Code: "E", Description: "Zero balance and current account", IsCurrent: true, CRRGSection: "CRRG 2025, Field 18"},
	"":  {Code: "", Description: "No history reported for this period", IsCurrent: true, CRRGSection: "CRRG 2025, Field 18"},
}
