package service

import (
	"regexp"
	"strings"
)

// разделители в свободном поле веса паттерна: "DK / Worsted",
// "Sport, DK", "DK or Worsted". "or" только как отдельное слово,
// иначе порежем "Worsted" и "Sport".
var reWeightSep = regexp.MustCompile(`(?i)(?:/|,|\bor\b)`)

// ParseRequiredWeights разбирает свободный текст требования на допустимые
// классы. Мусор и пустые куски выбрасываются; пустой результат ниже по
// конвейеру гарантирует no-match, ошибок здесь не бывает.
func ParseRequiredWeights(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := reWeightSep.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
