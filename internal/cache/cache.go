// Package cache stores compliance reports keyed by the content hash of the
// account file they were audited from. Audits are deterministic over their
// input bytes, so an unchanged account file maps to an unchanged report.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/credlogic/metro2/internal/model"
)

// ReportKey derives a cache key from the raw bytes of an account file.
func ReportKey(contents []byte) string {
	hash := sha256.Sum256(contents)
	return "metro2:report:v1:" + hex.EncodeToString(hash[:])
}

// EncodeReport serializes a compliance report for storage.
func EncodeReport(report *model.ComplianceReport) ([]byte, error) {
	return json.Marshal(report)
}

// DecodeReport deserializes a cached compliance report. A decode failure is
// treated as a miss by callers, never an audit failure.
func DecodeReport(data []byte) (*model.ComplianceReport, error) {
	var report model.ComplianceReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
