package analyzer

import (
	"bytescope/internal/signatures"
)

// StandardsComplianceOf scores the detected selector set against every known
// standard. Only standards with compliance above zero are reported; the
// percentage is always within [0,100].
func StandardsComplianceOf(detected map[signatures.Selector]struct{}) []StandardCompliance {
	var out []StandardCompliance
	for i := range signatures.Standards() {
		std := &signatures.Standards()[i]

		matched := 0
		missing := []string{}
		for _, sel := range std.Required {
			if _, ok := detected[sel]; ok {
				matched++
			} else {
				missing = append(missing, std.NameOf(sel))
			}
		}
		if matched == 0 {
			continue
		}

		extra := []string{}
		for _, sel := range std.Optional {
			if _, ok := detected[sel]; ok {
				extra = append(extra, std.NameOf(sel))
			}
		}

		percent := float64(matched) / float64(len(std.Required)) * 100
		if percent > 100 {
			percent = 100
		}
		out = append(out, StandardCompliance{
			Standard:          std.Name,
			CompliancePercent: percent,
			MissingFunctions:  missing,
			ExtraFunctions:    extra,
		})
	}
	return out
}
