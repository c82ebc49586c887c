package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)
	// запятая перед ровно тремя цифрами — разделитель тысяч ("1,234")
	rxThousands = regexp.MustCompile(`,\d{3}(\D|$)`)
)

// ParseQuantity терпимо разбирает количества из выгрузок каталогов:
// "1,234.50", "1 234,50", "400 yds", "250m", NBSP/узкие пробелы и т.п.
// Второе значение false — числа в ячейке нет.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// неразрывные/узкие пробелы — разделители тысяч, режем
	s = strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "").Replace(s)
	// запятая двусмысленна: при точке или группе из трёх цифр это тысячи
	// ("1,234", "1,234.50"), иначе десятичный разделитель ("1234,50", "3,5")
	if strings.Contains(s, ".") || rxThousands.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	// срезаем всё, кроме цифр, точки и минуса (единицы, валюту, мусор)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
