package main

import (
	"benritz/fixedincome/internal/collect"
	"benritz/fixedincome/internal/config"
	"benritz/fixedincome/internal/log"
	"benritz/fixedincome/internal/types"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/pbnjay/grate/xls"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	v          = config.New()
	cfg        *config.Config
	configFile string
	dateStr    string
)

var rootCmd = &cobra.Command{
	Use:   "collect-data <destination>",
	Short: "Collect gilt prices and store them as parquet",
	Long: `Collects gilt prices for a date, completes their yields and accrued
interest and stores them under <destination>, a local directory or an
s3://bucket/prefix URL.`,
	Args:         cobra.ExactArgs(1),
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
		return run(cmd.Context(), args[0])
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file path (default: ./config.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("profile", "", "the AWS profile to use")
	flags.String("source", "", "data source (dmo, dividenddata)")
	flags.Int("workers", 0, "number of gilts completed concurrently")
	flags.StringVar(&dateStr, "date", "", "settlement date (YYYY-MM-DD), defaults to today")

	for key, flag := range map[string]string{
		"log.level":       "log-level",
		"aws.profile":     "profile",
		"collect.source":  "source",
		"collect.workers": "workers",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func getAwsConfig(ctx context.Context, profile string) (aws.Config, error) {
	if profile == "" || profile == "default" {
		return awsconfig.LoadDefaultConfig(ctx)
	}
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithSharedConfigProfile(profile))
}

func storeToS3(
	ctx context.Context,
	collected *collect.CollectedGilts,
	profile string,
	s3Path *collect.S3Path,
) (string, error) {
	awsCfg, err := getAwsConfig(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg)

	outPath, err := collect.StoreToS3(ctx, collected, s3Client, s3Path)
	if err != nil {
		return "", fmt.Errorf("failed to store data to S3: %w", err)
	}

	return outPath, nil
}

func settlementDate() (time.Time, error) {
	if dateStr == "" {
		y, m, d := time.Now().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", dateStr)
}

func run(ctx context.Context, dst string) error {
	logger := log.L()

	date, err := settlementDate()
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	collector, err := collect.NewCollector(cfg.Collect.Source, cfg.Yield.SolverOptions(), cfg.Collect.Workers)
	if err != nil {
		return err
	}

	collected, err := collector.Collect(ctx, date)
	if err != nil {
		if errors.Is(err, types.ErrDataUnavailable) {
			logger.Warn("data unavailable",
				zap.String("source", collector.Source()),
				zap.Time("date", date),
			)
		}
		return fmt.Errorf("failed to collect data: %w", err)
	}

	for _, f := range collected.Failures {
		logger.Debug("skipped gilt",
			zap.String("isin", f.Gilt.ISIN),
			zap.String("desc", f.Gilt.Desc),
			zap.Error(f.Err),
		)
	}

	var outPath string
	if s3Path, _ := collect.ParseS3(dst); s3Path != nil {
		outPath, err = storeToS3(ctx, collected, cfg.AWS.Profile, s3Path)
	} else {
		outPath, err = collect.StoreToPath(ctx, collected, dst)
	}

	if err != nil {
		return fmt.Errorf("failed to store data: %w", err)
	}

	fmt.Printf("Stored to %s\n", outPath)

	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
