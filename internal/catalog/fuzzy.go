package catalog

import "strings"

// Matches：模糊匹配谓词
// 规则：忽略大小写；target 包含整个 query 即命中，否则按空白切词，任一 query 词是任一 target 词的子串即命中。
// 约束：空 query 命中一切；不对称，Matches(a, b) 不蕴含 Matches(b, a)；不做编辑距离或读音比较。
func Matches(query, target string) bool {
	q := strings.ToLower(query)
	t := strings.ToLower(target)
	if strings.Contains(t, q) {
		return true
	}
	targetTokens := strings.Fields(t)
	for _, qt := range strings.Fields(q) {
		for _, tt := range targetTokens {
			if strings.Contains(tt, qt) {
				return true
			}
		}
	}
	return false
}

// matchesAny：任一字段命中即命中
func matchesAny(query string, fields []string) bool {
	for _, f := range fields {
		if Matches(query, f) {
			return true
		}
	}
	return false
}
