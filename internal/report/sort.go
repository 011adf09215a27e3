package report

import "sort"

// SortFindings sorts findings by severity (HIGH > MEDIUM > LOW),
// then by pipeline category order.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		oi := findings[i].Severity.order()
		oj := findings[j].Severity.order()
		if oi != oj {
			return oi < oj
		}
		return findings[i].Category.order() < findings[j].Category.order()
	})
}
