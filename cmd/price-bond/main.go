package main

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/cashflow"
	"benritz/fixedincome/internal/config"
	"benritz/fixedincome/internal/date"
	"benritz/fixedincome/internal/log"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	v          = config.New()
	cfg        *config.Config
	configFile string

	issueDate    string
	maturityDate string
	today        string
	faceValue    float64
	principal    float64
	couponRate   float64
	interval     string
	rate         float64
)

var rootCmd = &cobra.Command{
	Use:   "price-bond",
	Short: "Price a fixed coupon bond",
	Long: `Builds a fixed coupon bond and prints its cash flows, present value,
dirty price, clean price and accrued interest as of a valuation date.`,
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
		return run(cmd.OutOrStdout())
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path (default: ./config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("calendar", "", "holiday calendar (basic, uk)")
	flags.String("day-count", "", "day count convention (ACT/360, ACT/365F, ACT/ACT, 30/360)")
	flags.String("adjustment", "", "business day adjustment (unadjusted, following, preceding, mf, mp)")
	flags.String("interest-type", "", "discounting for the present value (simple, compound, continuous)")

	flags.StringVar(&issueDate, "issue", "2006-05-26", "issue date (YYYY-MM-DD)")
	flags.StringVar(&maturityDate, "maturity", "2009-05-26", "maturity date (YYYY-MM-DD)")
	flags.StringVar(&today, "today", "2006-07-14", "valuation date (YYYY-MM-DD)")
	flags.Float64Var(&faceValue, "face", 98, "face value")
	flags.Float64Var(&principal, "principal", 100, "principal repaid at maturity")
	flags.Float64Var(&couponRate, "coupon", 0.055, "coupon rate per interval as a fraction, e.g. 0.055")
	flags.StringVar(&interval, "interval", "12M", "coupon interval, e.g. 6M, 1Y or 30D")
	flags.Float64Var(&rate, "rate", 0.0544, "discount rate / yield as a fraction")

	for key, flag := range map[string]string{
		"log.level":             "log-level",
		"pricing.calendar":      "calendar",
		"pricing.day_count":     "day-count",
		"pricing.adjustment":    "adjustment",
		"pricing.interest_type": "interest-type",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func parseDate(name, s string) (date.Date, error) {
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid %s date %q: %w", name, s, err)
	}
	return d, nil
}

func round(f float64, places int32) string {
	return decimal.NewFromFloat(f).StringFixed(places)
}

func run(out io.Writer) error {
	pricing, err := cfg.Pricing.Resolve()
	if err != nil {
		return err
	}

	issue, err := parseDate("issue", issueDate)
	if err != nil {
		return err
	}

	maturity, err := parseDate("maturity", maturityDate)
	if err != nil {
		return err
	}

	valuation, err := parseDate("valuation", today)
	if err != nil {
		return err
	}

	period, err := date.ParsePeriod(interval)
	if err != nil {
		return fmt.Errorf("invalid coupon interval: %w", err)
	}

	coupons := cashflow.Fixed(couponRate, period)

	b, err := bond.New(bond.Terms{
		Calendar:     pricing.Calendar,
		DayCount:     pricing.DayCount,
		Adjustment:   pricing.Adjustment,
		IssueDate:    issue,
		MaturityDate: maturity,
		FaceValue:    faceValue,
		Principal:    principal,
		Coupons:      &coupons,
	})
	if err != nil {
		return err
	}

	log.L().Debug("pricing bond",
		zap.Stringer("bond", b),
		zap.Stringer("today", valuation),
		zap.Float64("rate", rate),
	)

	flows, err := b.CashFlows()
	if err != nil {
		return err
	}

	paymentDates, err := b.PaymentDates()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, b)
	fmt.Fprintln(out)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Date", "Payment Date", "Amount", "Present Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, cf := range flows {
		pv := "-"
		if !cf.Date.Before(valuation) {
			value, err := cf.PresentValue(valuation, rate, pricing.DayCount, pricing.InterestType)
			if err != nil {
				return err
			}
			pv = round(value, 6)
		}
		table.Append([]string{cf.Date.String(), paymentDates[i].String(), round(cf.Value, 6), pv})
	}
	table.Render()

	pv, err := b.PresentValue(rate, valuation, pricing.InterestType)
	if err != nil {
		return err
	}

	dirty, err := b.DirtyPrice(rate, valuation)
	if err != nil {
		return err
	}

	accrued, err := b.AccruedInterest(valuation)
	if err != nil {
		return err
	}

	clean, err := b.CleanPrice(rate, valuation)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Valuation Date: %s\n", valuation)
	fmt.Fprintf(out, "Rate: %s%%\n", round(rate*100, 4))
	fmt.Fprintf(out, "Present Value (%s): %s\n", pricing.InterestType, round(pv, 6))
	fmt.Fprintf(out, "Dirty Price: %s\n", round(dirty, 6))
	fmt.Fprintf(out, "Accrued Interest: %s\n", round(accrued, 6))
	fmt.Fprintf(out, "Clean Price: %s\n", round(clean, 6))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
