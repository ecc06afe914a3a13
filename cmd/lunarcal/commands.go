package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/i18n"
)

type options struct {
	lang   string
	format string
}

func (o *options) localizer() (*i18n.Localizer, error) {
	if o.lang == "" {
		return i18n.NewLocalizer(i18n.Default()), nil
	}
	tag, ok := i18n.ParseTag(o.lang)
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", o.lang)
	}
	return i18n.NewLocalizer(tag), nil
}

func (o *options) validate() error {
	switch o.format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("--format must be text or json, got %q", o.format)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "lunarcal",
		Short:        "Convert dates between the solar and Chinese lunar calendars (1900-2100)",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.validate()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "Label language: zh-Hant or en")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "Output format: text|json")

	cmd.AddCommand(
		toLunarCmd(opts),
		toSolarCmd(opts),
		yearCmd(opts),
		verifyCmd(),
	)
	return cmd
}

func toLunarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "to-lunar [YYYY-MM-DD]",
		Short: "Convert a solar date to its lunar date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.SolarDateOf(time.Now())
			if len(args) == 1 {
				var err error
				if date, err = calendar.ParseDateString(args[0]); err != nil {
					return err
				}
			}

			info, err := calendar.Describe(date)
			if err != nil {
				return err
			}
			return printDay(cmd.OutOrStdout(), opts, info)
		},
	}
}

func toSolarCmd(opts *options) *cobra.Command {
	var leap bool

	c := &cobra.Command{
		Use:   "to-solar YEAR MONTH DAY",
		Short: "Convert a lunar date to its solar date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiAll(args, "year", "month", "day")
			if err != nil {
				return err
			}

			info, err := calendar.DescribeLunar(calendar.LunarDate{
				Year: nums[0], Month: nums[1], Day: nums[2], IsLeapMonth: leap,
			})
			if err != nil {
				return err
			}
			return printDay(cmd.OutOrStdout(), opts, info)
		},
	}

	c.Flags().BoolVar(&leap, "leap", false, "The month is the year's leap month")
	return c
}

func yearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Show a lunar year's layout and festivals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiAll(args, "year")
			if err != nil {
				return err
			}

			info, err := calendar.DescribeYear(nums[0])
			if err != nil {
				return err
			}
			festivals, err := calendar.Festivals(nums[0])
			if err != nil {
				return err
			}

			loc, err := opts.localizer()
			if err != nil {
				return err
			}
			info = loc.Year(info)
			festivals = loc.Festivals(festivals)

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, map[string]any{"year": info, "festivals": festivals})
			}

			fmt.Fprintf(out, "%d %s (%s)\n", info.Year, info.GanZhi, info.Zodiac)
			fmt.Fprintf(out, "New year:   %s\n", info.NewYear)
			fmt.Fprintf(out, "Total days: %d\n", info.TotalDays)
			if info.LeapMonth != 0 {
				fmt.Fprintf(out, "Leap month: %s (%d days)\n", loc.T(calendar.MonthName(info.LeapMonth, true)), info.LeapMonthDays)
			}
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for m, days := range info.MonthDays {
				fmt.Fprintf(tw, "%s\t%d\n", loc.T(calendar.MonthName(m+1, false)), days)
			}
			fmt.Fprintln(tw)
			for _, f := range festivals {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Festival, f.Solar, loc.T(f.Solar.Weekday().String()))
			}
			return tw.Flush()
		},
	}
}

// sweepResult counts the dates checked by verify.
type sweepResult struct {
	Checked    int      `json:"checked"`
	Mismatches []string `json:"mismatches,omitempty"`
}

func verifyCmd() *cobra.Command {
	var from, to int

	c := &cobra.Command{
		Use:   "verify",
		Short: "Round-trip every solar date in the given lunar years through both conversions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := sweep(from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range res.Mismatches {
				fmt.Fprintln(out, "MISMATCH", m)
			}
			fmt.Fprintf(out, "checked %d dates, %d mismatches\n", res.Checked, len(res.Mismatches))

			if len(res.Mismatches) > 0 {
				return fmt.Errorf("%d round-trip mismatches", len(res.Mismatches))
			}
			return nil
		},
	}

	c.Flags().IntVar(&from, "from", calendar.MinYear, "First lunar year")
	c.Flags().IntVar(&to, "to", calendar.MaxYear, "Last lunar year")
	return c
}

// sweep converts each solar day of lunar years [from, to] to lunar and back,
// and checks that consecutive solar days map to consecutive lunar days.
func sweep(from, to int) (*sweepResult, error) {
	if from > to {
		return nil, fmt.Errorf("--from %d is after --to %d", from, to)
	}
	start, err := calendar.CalculateSpringFestival(from)
	if err != nil {
		return nil, err
	}
	end, err := calendar.CalculateNewYearEve(to)
	if err != nil {
		return nil, err
	}

	res := &sweepResult{}
	var prev calendar.LunarDate
	for d := start; !d.After(end); d = d.AddDays(1) {
		lunar, err := calendar.SolarToLunarDate(d)
		if err != nil {
			return nil, fmt.Errorf("to lunar %s: %w", d, err)
		}
		back, err := calendar.LunarToSolarDate(lunar)
		if err != nil {
			return nil, fmt.Errorf("to solar %s: %w", lunar, err)
		}
		if back != d {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("%s -> %s -> %s", d, lunar, back))
		}
		if res.Checked > 0 && !follows(prev, lunar) {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("%s -> %s does not follow %s", d, lunar, prev))
		}
		prev = lunar
		res.Checked++
	}
	return res, nil
}

// follows reports whether next is the lunar day after prev.
func follows(prev, next calendar.LunarDate) bool {
	if next.Day != 1 {
		return next.Year == prev.Year && next.Month == prev.Month &&
			next.IsLeapMonth == prev.IsLeapMonth && next.Day == prev.Day+1
	}
	switch {
	case next.Month == 1 && !next.IsLeapMonth:
		return next.Year == prev.Year+1 && prev.Month == 12
	case next.IsLeapMonth:
		return next.Year == prev.Year && next.Month == prev.Month && !prev.IsLeapMonth
	default:
		return next.Year == prev.Year && next.Month == prev.Month+1
	}
}

func printDay(w io.Writer, opts *options, info *calendar.DayInfo) error {
	loc, err := opts.localizer()
	if err != nil {
		return err
	}
	info = loc.Day(info)

	if opts.format == "json" {
		return writeJSON(w, info)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Solar:\t%s (%s)\n", info.Solar, info.Weekday)
	fmt.Fprintf(tw, "Lunar:\t%s\n", info.Lunar)
	fmt.Fprintf(tw, "Label:\t%s\n", info.Label)
	fmt.Fprintf(tw, "Year:\t%s (%s)\n", info.GanZhi, info.Zodiac)
	if info.Festival != "" {
		fmt.Fprintf(tw, "Festival:\t%s\n", info.Festival)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func atoiAll(args []string, names ...string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", names[i], a)
		}
		out[i] = n
	}
	return out, nil
}
