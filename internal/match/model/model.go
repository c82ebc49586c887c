package model

// InventoryItem — позиция из стэша пользователя. Weight — метка класса
// толщины как она хранится в каталоге ("Fingering (14 wpi)", "dk" и т.п.);
// сравнивать метки можно только через service.Normalize.
type InventoryItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Weight  string  `json:"weight"`
	Yardage float64 `json:"yardage"`
	Grams   float64 `json:"grams"`
}

// Requirement — потребность паттерна в пряже. Weights — допустимые классы,
// уже разобранные из свободного текста (см. service.ParseRequiredWeights).
// Границы по граммам справочные: на решение match/no-match не влияют.
type Requirement struct {
	PatternID  string   `json:"patternId"`
	Name       string   `json:"name"`
	Weights    []string `json:"weights"`
	YardageMin *float64 `json:"yardageMin,omitempty"`
	YardageMax *float64 `json:"yardageMax,omitempty"`
	GramsMin   *float64 `json:"gramsMin,omitempty"`
	GramsMax   *float64 `json:"gramsMax,omitempty"`
}

// HeldStrandRule — «2 нити класса X ведут себя как класс Y».
// Factor — типизированный множитель количества (0.5 для двух нитей),
// описание больше не парсится текстом.
type HeldStrandRule struct {
	Target      string  `yaml:"target"`
	Description string  `yaml:"description"`
	Factor      float64 `yaml:"factor"`
}

// Outcome — результат сверки пары меток (stash, pattern).
type Outcome struct {
	Matched    bool
	Reason     string
	HeldStrand bool
	Factor     float64 // 1 для прямого совпадения, 0.5 для двух нитей
}

// Contribution — вклад одной позиции стэша в требование.
// Yardage/Grams уже умножены на Factor правила.
type Contribution struct {
	Item    InventoryItem `json:"item"`
	Reason  string        `json:"reason"`
	Held    bool          `json:"held"`
	Yardage float64       `json:"yardage"`
	Grams   float64       `json:"grams"`
}

type MatchResult struct {
	Matched       bool           `json:"matched"`
	TotalYardage  float64        `json:"totalYardage"`
	TotalGrams    float64        `json:"totalGrams"`
	Contributions []Contribution `json:"contributions"`
}
