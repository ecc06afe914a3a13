package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

var englishZodiac = map[string]string{
	"鼠": "Rat",
	"牛": "Ox",
	"虎": "Tiger",
	"兔": "Rabbit",
	"龍": "Dragon",
	"蛇": "Snake",
	"馬": "Horse",
	"羊": "Goat",
	"猴": "Monkey",
	"雞": "Rooster",
	"狗": "Dog",
	"豬": "Pig",
}

var englishFestivals = map[calendar.Festival]string{
	calendar.FestivalSpring:     "Spring Festival",
	calendar.FestivalLantern:    "Lantern Festival",
	calendar.FestivalDragonBoat: "Dragon Boat Festival",
	calendar.FestivalQixi:       "Qixi Festival",
	calendar.FestivalGhost:      "Ghost Festival",
	calendar.FestivalMidAutumn:  "Mid-Autumn Festival",
	calendar.FestivalDoubleNine: "Double Ninth Festival",
	calendar.FestivalLaba:       "Laba Festival",
	calendar.FestivalNewYearEve: "New Year's Eve",
}

var chineseWeekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

func init() {
	mustRegister(buildCatalog())
}

type entry struct {
	tag   language.Tag
	key   string
	value string
}

func buildCatalog() []entry {
	en := language.English
	zh := language.TraditionalChinese

	var entries []entry
	for k, v := range englishZodiac {
		entries = append(entries, entry{en, k, v})
	}
	for k, v := range englishFestivals {
		entries = append(entries, entry{en, string(k), v})
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		entries = append(entries, entry{zh, wd.String(), chineseWeekdays[wd]})
	}
	for m := 1; m <= 12; m++ {
		entries = append(entries,
			entry{en, calendar.MonthName(m, false), fmt.Sprintf("Month %d", m)},
			entry{en, calendar.MonthName(m, true), fmt.Sprintf("Leap Month %d", m)},
		)
	}
	for d := 1; d <= 30; d++ {
		entries = append(entries, entry{en, calendar.DayName(d), fmt.Sprintf("Day %d", d)})
	}
	entries = append(entries, entry{en, labelFormat, "%[3]s of %[2]s, %[1]s year"})
	return entries
}

func mustRegister(entries []entry) {
	for _, e := range entries {
		if err := message.SetString(e.tag, e.key, e.value); err != nil {
			panic(fmt.Sprintf("register %s %q: %v", e.tag, e.key, err))
		}
	}
}
