package main

import (
	"benritz/fixedincome/internal/calendar"
	"benritz/fixedincome/internal/config"
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/log"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	v          = config.New()
	cfg        *config.Config
	configFile string

	from     string
	to       string
	weekends bool
)

var rootCmd = &cobra.Command{
	Use:   "holidays",
	Short: "List the holidays of a calendar",
	Long: `Lists every non business day of a calendar between two dates inclusive,
with the reason for each. The range defaults to the current year.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(v, configFile); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return log.SetLevel(cfg.Log.Level)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()

		cal, err := calendar.ParseCalendar(cfg.Pricing.Calendar)
		if err != nil {
			return err
		}

		start, end, err := dateRange(time.Now().Year())
		if err != nil {
			return err
		}

		log.L().Debug("listing holidays",
			zap.Stringer("calendar", cal),
			zap.Stringer("from", start),
			zap.Stringer("to", end),
		)

		return printHolidays(cmd.OutOrStdout(), cal, start, end)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path (default: ./config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("calendar", "", "holiday calendar (basic, uk)")
	flags.StringVar(&from, "from", "", "first date (YYYY-MM-DD), defaults to 1 January")
	flags.StringVar(&to, "to", "", "last date (YYYY-MM-DD), defaults to 31 December")
	flags.BoolVar(&weekends, "weekends", false, "include weekends")

	for key, flag := range map[string]string{
		"log.level":        "log-level",
		"pricing.calendar": "calendar",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func dateRange(year int) (date.Date, date.Date, error) {
	start, err := date.FromParts(1, date.January, year)
	if err != nil {
		return date.Date{}, date.Date{}, err
	}

	end, err := date.FromParts(31, date.December, year)
	if err != nil {
		return date.Date{}, date.Date{}, err
	}

	if from != "" {
		if start, err = date.Parse(from); err != nil {
			return date.Date{}, date.Date{}, fmt.Errorf("invalid from date: %w", err)
		}
	}

	if to != "" {
		if end, err = date.Parse(to); err != nil {
			return date.Date{}, date.Date{}, fmt.Errorf("invalid to date: %w", err)
		}
	}

	return start, end, nil
}

func printHolidays(out io.Writer, cal calendar.Calendar, start, end date.Date) error {
	fmt.Fprintf(out, "%s holidays %s to %s\n", cal.Name(), start, end)

	for _, d := range cal.Holidays(start, end) {
		if !weekends && d.Weekday().IsWeekend() {
			continue
		}
		reason, _ := cal.Holiday(d)
		if _, err := fmt.Fprintf(out, "%s\t%-9s\t%s\n", d, d.Weekday(), reason); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
