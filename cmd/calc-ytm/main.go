package main

import (
	"benritz/fixedincome/internal/config"
	"benritz/fixedincome/internal/log"
	"benritz/fixedincome/internal/types"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	v          = config.New()
	cfg        *config.Config
	configFile string

	coupon         float64
	faceValue      float64
	cleanPrice     float64
	dirtyPrice     float64
	ytm            float64
	settlementDate string
	maturityDate   string
)

var rootCmd = &cobra.Command{
	Use:   "calc-ytm",
	Short: "Calculate the yield to maturity or price of a UK gilt",
	Long: `Completes a UK gilt from its coupon, maturity date and either a clean price,
a dirty price or a yield to maturity.`,
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

		flags := cmd.Flags()

		if !flags.Changed("coupon") {
			return errors.New("--coupon flag is required")
		}

		if !flags.Changed("cleanprice") && !flags.Changed("dirtyprice") && !flags.Changed("ytm") {
			return errors.New("--cleanprice, --dirtyprice or --ytm flag is required")
		}

		if maturityDate == "" {
			return errors.New("--maturitydate flag is required")
		}

		gilt, err := newGilt(time.Now())
		if err != nil {
			return err
		}

		if err := types.CompleteGilt(gilt, cfg.Yield.SolverOptions()); err != nil {
			return fmt.Errorf("error completing gilt: %w", err)
		}

		printGilt(cmd.OutOrStdout(), gilt)

		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path (default: ./config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Float64("tolerance", 0, "yield solver tolerance")
	flags.Int("max-iterations", 0, "yield solver iteration limit")

	flags.Float64Var(&coupon, "coupon", 0.0, "Coupon rate (%) of the gilt")
	flags.Float64Var(&faceValue, "facevalue", 100, "Face value of the gilt")
	flags.Float64Var(&cleanPrice, "cleanprice", 0.0, "Clean price of the gilt")
	flags.Float64Var(&dirtyPrice, "dirtyprice", 0.0, "Dirty price of the gilt")
	flags.Float64Var(&ytm, "ytm", 0.0, "Yield to maturity (%) of the gilt")
	flags.StringVar(&settlementDate, "settlementdate", "", "Settlement date of the gilt (YYYY-MM-DD), defaults to today")
	flags.StringVar(&maturityDate, "maturitydate", "", "Maturity date of the gilt (YYYY-MM-DD)")

	for key, flag := range map[string]string{
		"log.level":            "log-level",
		"yield.tolerance":      "tolerance",
		"yield.max_iterations": "max-iterations",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", s)
}

func newGilt(now time.Time) (*types.Gilt, error) {
	settlement, err := parseDate(settlementDate, now)
	if err != nil {
		return nil, fmt.Errorf("invalid settlement date: %w", err)
	}

	maturity, err := parseDate(maturityDate, now)
	if err != nil {
		return nil, fmt.Errorf("invalid maturity date: %w", err)
	}

	if maturity.Before(settlement) {
		return nil, errors.New("maturity date cannot be before settlement date")
	}

	if coupon < 0.0 || coupon > 100.0 {
		return nil, errors.New("coupon rate must be between 0.0 and 100.0")
	}

	if faceValue <= 0.0 {
		return nil, errors.New("face value must be greater than 0.0")
	}

	if cleanPrice < 0.0 || dirtyPrice < 0.0 {
		return nil, errors.New("price must be greater than or equal to 0.0")
	}

	if ytm < 0.0 {
		return nil, errors.New("yield to maturity must be greater than or equal to 0.0")
	}

	gilt := types.NewUKGilt("cli", settlement)
	gilt.FacePrice = faceValue
	gilt.Coupon = coupon
	gilt.MaturityDate = maturity
	gilt.CleanPrice = cleanPrice
	gilt.DirtyPrice = dirtyPrice
	gilt.YieldToMaturity = ytm

	return gilt, nil
}

func fixed(f float64, places int32) string {
	return decimal.NewFromFloat(f).StringFixed(places)
}

func printGilt(out io.Writer, gilt *types.Gilt) {
	fmt.Fprintf(out, "Gilt Details:\n")
	fmt.Fprintf(out, "\tType: %s\n", gilt.Type)
	fmt.Fprintf(out, "\tFace Value: %s\n", fixed(gilt.FacePrice, 3))
	fmt.Fprintf(out, "\tCoupon Rate: %s%%\n", fixed(gilt.Coupon, 3))
	fmt.Fprintf(out, "\tSettlement Date: %s\n", gilt.SettlementDate.Format("2006-01-02"))
	fmt.Fprintf(out, "\tMaturity Date: %s\n", gilt.MaturityDate.Format("2006-01-02"))
	fmt.Fprintf(out, "\tClean Price: %s\n", fixed(gilt.CleanPrice, 3))
	fmt.Fprintf(out, "\tDirty Price: %s\n", fixed(gilt.DirtyPrice, 3))
	fmt.Fprintf(out, "\tRemaining Days: %d\n", gilt.RemainingDays)
	fmt.Fprintf(out, "\tAccrued Days: %d\n", gilt.AccruedDays)
	fmt.Fprintf(out, "\tAccrued Amount: %s\n", fixed(gilt.AccruedAmount, 3))
	fmt.Fprintf(out, "\tCoupon Period Days: %d\n", gilt.CouponPeriodDays)
	fmt.Fprintf(out, "\tCoupon Periods: %d\n", gilt.CouponPeriods)
	fmt.Fprintf(out, "\tNext Coupon Date: %s\n", gilt.NextCouponDate.Format("2006-01-02"))
	fmt.Fprintf(out, "\tPrevious Coupon Date: %s\n", gilt.PrevCouponDate.Format("2006-01-02"))
	fmt.Fprintf(out, "\tMaturity Years: %d\n", gilt.MaturityYears)
	fmt.Fprintf(out, "\tMaturity Days: %d\n", gilt.MaturityDays)
	fmt.Fprintf(out, "\tYield to Maturity: %s%%\n", fixed(gilt.YieldToMaturity, 6))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
