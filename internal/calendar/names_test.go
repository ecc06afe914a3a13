package calendar

import "testing"

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		leap  bool
		want  string
	}{
		{1, false, "正月"},
		{2, true, "閏二月"},
		{11, false, "冬月"},
		{12, false, "臘月"},
		{0, false, ""},
		{13, false, ""},
	}
	for _, tt := range tests {
		if got := MonthName(tt.month, tt.leap); got != tt.want {
			t.Errorf("MonthName(%d, %v) = %q, want %q", tt.month, tt.leap, got, tt.want)
		}
	}
}

func TestDayName(t *testing.T) {
	tests := map[int]string{
		1:  "初一",
		9:  "初九",
		10: "初十",
		11: "十一",
		15: "十五",
		20: "二十",
		21: "廿一",
		29: "廿九",
		30: "三十",
		0:  "",
		31: "",
	}
	for day, want := range tests {
		if got := DayName(day); got != want {
			t.Errorf("DayName(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestLunarDate_Label(t *testing.T) {
	d := LunarDate{Year: 2023, Month: 2, Day: 1, IsLeapMonth: true}
	if got, want := d.Label(), "癸卯年閏二月初一"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if got, want := d.String(), "2023-L02-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOptions(t *testing.T) {
	years := YearOptions()
	if len(years) != MaxYear-MinYear+1 {
		t.Fatalf("len(YearOptions()) = %d, want %d", len(years), MaxYear-MinYear+1)
	}
	if got, want := years[1984-MinYear].Label, "1984年 (甲子鼠年)"; got != want {
		t.Errorf("YearOptions()[1984] = %q, want %q", got, want)
	}

	months := MonthOptions()
	if got, want := months[0].Label, "正月 (1月)"; got != want {
		t.Errorf("MonthOptions()[0] = %q, want %q", got, want)
	}

	days, err := DayOptions(2023, 2, false)
	if err != nil {
		t.Fatalf("DayOptions() error = %v", err)
	}
	if len(days) != 30 || days[29].Label != "30日" {
		t.Errorf("DayOptions(2023, 2) len = %d, want 30 ending in 30日", len(days))
	}

	leapDays, err := DayOptions(2023, 2, true)
	if err != nil {
		t.Fatalf("DayOptions(leap) error = %v", err)
	}
	if len(leapDays) != 29 {
		t.Errorf("DayOptions(2023, 2, leap) len = %d, want 29", len(leapDays))
	}

	if _, err := DayOptions(2024, 2, true); err == nil {
		t.Error("DayOptions(2024, 2, leap) expected error")
	}
}
