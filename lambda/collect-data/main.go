package main

import (
	"benritz/fixedincome/internal/collect"
	"benritz/fixedincome/internal/config"
	"benritz/fixedincome/internal/log"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/pbnjay/grate/xls"
	"go.uber.org/zap"
)

// collectData runs the configured collector for today and stores the result
// under FIXEDINCOME_AWS_BUCKET / FIXEDINCOME_AWS_PREFIX.
func collectData(ctx context.Context, cfg *config.Config) error {
	if cfg.AWS.Bucket == "" {
		return fmt.Errorf("%s_AWS_BUCKET is not set", config.EnvPrefix)
	}

	path := &collect.S3Path{
		Bucket: cfg.AWS.Bucket,
		Prefix: cfg.AWS.Prefix,
	}

	collector, err := collect.NewCollector(cfg.Collect.Source, cfg.Yield.SolverOptions(), cfg.Collect.Workers)
	if err != nil {
		return err
	}

	y, m, d := time.Now().Date()

	collected, err := collector.Collect(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg)

	if _, err := collect.StoreToS3(ctx, collected, s3Client, path); err != nil {
		return err
	}

	return nil
}

func responseWithFailure(rec events.SQSMessage) events.SQSEventResponse {
	return events.SQSEventResponse{
		BatchItemFailures: []events.SQSBatchItemFailure{
			{
				ItemIdentifier: rec.MessageId,
			},
		},
	}
}

func handler(ctx context.Context, request events.SQSEvent) (events.SQSEventResponse, error) {
	defer log.Sync()

	cfg, err := config.Load(config.New(), "")
	if err == nil {
		err = log.SetLevel(cfg.Log.Level)
	}
	if err == nil {
		err = collectData(ctx, cfg)
	}

	if err != nil {
		log.L().Error("failed to collect data", zap.Int("records", len(request.Records)), zap.Error(err))

		if len(request.Records) > 0 {
			// should just have a single record, ignore the rest
			rec := request.Records[0]
			return responseWithFailure(rec), fmt.Errorf("failed to collect data: %w", err)
		}
	}

	return events.SQSEventResponse{}, nil
}

func main() {
	lambda.Start(handler)
}
