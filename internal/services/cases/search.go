package cases

import (
	"strings"

	textcases "golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"blacklist/internal/domain"
)

// normalizeName folds width (NFKC: full-width latin, half-width kana),
// removes every whitespace rune and case-folds, so "ヤマダ　タロウ" and
// "ﾔﾏﾀﾞﾀﾛｳ" compare equal.
func normalizeName(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Join(strings.Fields(s), "")
	// Casers are stateful, so one per call.
	return textcases.Fold().String(s)
}

func matchesName(c domain.Case, q string) bool {
	if strings.Contains(normalizeName(c.FullName), q) {
		return true
	}
	return c.FullNameKana != nil && strings.Contains(normalizeName(*c.FullNameKana), q)
}
