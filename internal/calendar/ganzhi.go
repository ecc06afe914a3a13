package calendar

// Sexagenary cycle constants.
const (
	// CycleLength is the period of the stem-branch cycle.
	CycleLength = 60

	// ReferenceYear is a year at cycle position 0 (甲子). Year 4 of the
	// proleptic calendar is the conventional anchor; 1984 and 2044 fall on the
	// same position.
	ReferenceYear = 4
)

var heavenlyStems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var earthlyBranches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var zodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龍", "蛇", "馬", "羊", "猴", "雞", "狗", "豬"}

// StemBranch is a heavenly stem paired with an earthly branch.
type StemBranch struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// String returns the two-character label, e.g. 甲子.
func (sb StemBranch) String() string {
	return sb.Stem + sb.Branch
}

// Index returns the position of the pair in the 60-year cycle, or -1 if the
// pair is not a valid combination.
func (sb StemBranch) Index() int {
	s, b := indexOf(heavenlyStems[:], sb.Stem), indexOf(earthlyBranches[:], sb.Branch)
	if s < 0 || b < 0 || s%2 != b%2 {
		return -1
	}
	for i := 0; i < CycleLength; i++ {
		if i%10 == s && i%12 == b {
			return i
		}
	}
	return -1
}

// CycleIndex returns the 0-59 position of a year in the sexagenary cycle.
// Negative years are normalized to a non-negative residue.
func CycleIndex(year int) int {
	return mod(year-ReferenceYear, CycleLength)
}

// YearGanZhi returns the stem-branch designation of a year. Defined for any
// integer year.
func YearGanZhi(year int) StemBranch {
	offset := year - ReferenceYear
	return StemBranch{
		Stem:   heavenlyStems[mod(offset, len(heavenlyStems))],
		Branch: earthlyBranches[mod(offset, len(earthlyBranches))],
	}
}

// Zodiac returns the zodiac animal of a year. Defined for any integer year.
func Zodiac(year int) string {
	return zodiacAnimals[mod(year-ReferenceYear, len(zodiacAnimals))]
}

// HeavenlyStems returns the ten heavenly stems in cycle order.
func HeavenlyStems() []string {
	return append([]string(nil), heavenlyStems[:]...)
}

// EarthlyBranches returns the twelve earthly branches in cycle order.
func EarthlyBranches() []string {
	return append([]string(nil), earthlyBranches[:]...)
}

// ZodiacAnimals returns the twelve zodiac animals, aligned with
// EarthlyBranches.
func ZodiacAnimals() []string {
	return append([]string(nil), zodiacAnimals[:]...)
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func indexOf(set []string, s string) int {
	for i, v := range set {
		if v == s {
			return i
		}
	}
	return -1
}
