// Подбор реальных имён колонок в выгрузках: заголовки гуляют от сервиса к
// сервису ("Yards"/"Yardage"/"Yardage Needed"), поэтому ключи маппинга
// поддерживают альтернативы через "|" и частичные совпадения.
package loader

import (
	"regexp"
	"strings"
)

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: нижний регистр, NBSP → пробел, служебные символы → пробел,
// схлопнутые пробелы.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey ищет в записи реальный ключ по желаемому имени.
// Поддерживает варианты "Weight|Yarn Weight", нормализованное равенство
// и contains в обе стороны для составных заголовков.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	// точное совпадение как есть
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	var nWantAll []string
	for _, a := range alts {
		nWantAll = append(nWantAll, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWantAll {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWantAll {
			if n != "" && (strings.Contains(nk, n) || strings.Contains(n, nk)) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		// частые колонки каталога поднимаем выше частичных совпадений
		for _, hot := range [...]string{"weight", "yard", "gram", "name"} {
			if strings.Contains(nWantAll[0], hot) && strings.Contains(nk, hot) {
				score += 100
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// looksLikeHeaderMap отсекает повторно попавшие в данные строки-шапки
// (бывает при склейке нескольких листов в один файл).
func looksLikeHeaderMap(rec map[string]string) bool {
	cnt := 0
	for _, v := range rec {
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "name" || s == "weight" || s == "grams" ||
			strings.Contains(s, "yardage") || strings.Contains(s, "yarn name") ||
			strings.Contains(s, "yarn weight") {
			cnt++
		}
	}
	return cnt >= 2
}
