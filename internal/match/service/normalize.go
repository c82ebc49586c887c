package service

import (
	"regexp"
	"strings"
)

// хвостовая пометка "(14 wpi)" — в каталоге классы хранятся вместе с ней.
// Диапазоны вида "(5-6 wpi)" намеренно НЕ срезаются: так ведёт себя вся
// существующая база, а "Super Bulky" ловится шагом подстроки в Resolve.
var reWPI = regexp.MustCompile(`\s*\(\d+\s*wpi\)`)

// Normalize — нижний регистр + срез хвостового "(N wpi)".
// Чистая, тотальная, идемпотентная; незнакомые форматы проходят как есть.
// Все сравнения меток в пакете идут только через неё.
func Normalize(label string) string {
	return strings.TrimSpace(reWPI.ReplaceAllString(strings.ToLower(label), ""))
}
