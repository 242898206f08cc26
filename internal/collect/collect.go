package collect

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/log"
	"benritz/fixedincome/internal/types"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/parquet-go/parquet-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidRow    = fmt.Errorf("invalid row")
	ErrUnknownSource = fmt.Errorf("unknown source")
	ErrInvalidS3Path = fmt.Errorf("path must start with s3://")
	ErrMissingBucket = fmt.Errorf("missing bucket")
)

type CollectedGilt struct {
	Gilt *types.Gilt
	Err  error
}

// SetError records err unless an earlier error was already recorded.
func (c *CollectedGilt) SetError(err error) {
	if c.Err == nil {
		c.Err = err
	}
}

type CollectedGilts struct {
	Gilts          []*types.Gilt
	Failures       []*CollectedGilt
	Source         string
	SettlementDate time.Time
}

func (c *CollectedGilts) AddGilt(cg *CollectedGilt) {
	if cg.Err == nil {
		c.Gilts = append(c.Gilts, cg.Gilt)
	} else {
		c.Failures = append(c.Failures, cg)
	}
}

func NewCollectedGilts(source string, date time.Time) *CollectedGilts {
	return &CollectedGilts{
		Source:         source,
		SettlementDate: date,
		Gilts:          []*types.Gilt{},
		Failures:       []*CollectedGilt{},
	}
}

// Complete runs types.CompleteGilt over every collected gilt using at most
// workers goroutines. Gilts that fail to complete move to Failures, keeping
// the order of both lists.
func (c *CollectedGilts) Complete(ctx context.Context, opts bond.SolverOptions, workers int) error {
	pending := c.Gilts
	errs := make([]error, len(pending))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, gilt := range pending {
		i, gilt := i, gilt
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[i] = types.CompleteGilt(gilt, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	c.Gilts = make([]*types.Gilt, 0, len(pending))

	for i, gilt := range pending {
		if errs[i] != nil {
			log.L().Warn("failed to complete gilt",
				zap.String("source", c.Source),
				zap.String("isin", gilt.ISIN),
				zap.String("ticker", gilt.Ticker),
				zap.Error(errs[i]),
			)
		}
		c.AddGilt(&CollectedGilt{Gilt: gilt, Err: errs[i]})
	}

	return nil
}

type Collector interface {
	Collect(ctx context.Context, date time.Time) (*CollectedGilts, error)
	Source() string
}

// NewCollector returns the collector for a source name, matched case
// insensitively.
func NewCollector(source string, opts bond.SolverOptions, workers int) (Collector, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case strings.ToLower(SourceDMO):
		return NewDMOCollector(opts, workers), nil
	case strings.ToLower(SourceDividendData):
		return NewDividendDataCollector(opts, workers), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
}

func writeGilts(gilts []*types.Gilt, output io.Writer) error {
	writer := parquet.NewGenericWriter[*types.Gilt](output)

	if _, err := writer.Write(gilts); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}

// ReadGilts reads gilts previously stored with StoreToPath or StoreToS3.
func ReadGilts(input io.ReaderAt, size int64) ([]types.Gilt, error) {
	gilts, err := parquet.Read[types.Gilt](input, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return gilts, nil
}

func ReadGiltsFromPath(path string) ([]types.Gilt, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return ReadGilts(file, stat.Size())
}

func StoreToPath(ctx context.Context, collected *CollectedGilts, basepath string) (string, error) {
	date := collected.SettlementDate.UTC()

	path := filepath.Join(
		basepath,
		fmt.Sprintf("%04d", date.Year()),
		fmt.Sprintf("%02d", date.Month()),
		fmt.Sprintf("%02d", date.Day()),
	)

	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return "", err
	}

	outPath := filepath.Join(path, collected.Source+".parquet")

	file, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeGilts(collected.Gilts, file); err != nil {
		return "", err
	}

	log.L().Info("stored gilts",
		zap.String("path", outPath),
		zap.Int("gilts", len(collected.Gilts)),
		zap.Int("failures", len(collected.Failures)),
	)

	return outPath, nil
}

type S3Path struct {
	Bucket string
	Prefix string
}

func (p *S3Path) String() string {
	if p.Prefix == "" {
		return "s3://" + p.Bucket
	}
	return "s3://" + p.Bucket + "/" + p.Prefix
}

func ParseS3(path string) (*S3Path, error) {
	if !strings.HasPrefix(path, "s3://") {
		return nil, ErrInvalidS3Path
	}

	path = strings.TrimPrefix(path, "s3://")
	parts := strings.SplitN(path, "/", 2)

	bucket := parts[0]
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	var prefix string
	if len(parts) > 1 {
		prefix = strings.TrimSuffix(parts[1], "/")
	}

	return &S3Path{
		Bucket: bucket,
		Prefix: prefix,
	}, nil
}

// S3Key is the object key for a collection under dst, laid out as
// [prefix/]YYYY/MM/DD/source.parquet.
func S3Key(collected *CollectedGilts, dst *S3Path) string {
	date := collected.SettlementDate.UTC()

	key := fmt.Sprintf(
		"%04d/%02d/%02d/%s.parquet",
		date.Year(),
		date.Month(),
		date.Day(),
		collected.Source,
	)

	if dst.Prefix != "" {
		key = dst.Prefix + "/" + key
	}

	return key
}

// ObjectPutter is the part of *s3.Client used to store collections.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func StoreToS3(ctx context.Context, collected *CollectedGilts, client ObjectPutter, dst *S3Path) (string, error) {
	tmp, err := os.CreateTemp("", "gilt-*.parquet")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmp.Close()
	defer os.Remove(tmp.Name())

	if err := writeGilts(collected.Gilts, tmp); err != nil {
		return "", err
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek to start of file: %w", err)
	}

	key := S3Key(collected, dst)

	input := &s3.PutObjectInput{
		Bucket: aws.String(dst.Bucket),
		Key:    aws.String(key),
		Body:   tmp,
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload file to s3://%s/%s: %w", dst.Bucket, key, err)
	}

	outPath := fmt.Sprintf("s3://%s/%s", dst.Bucket, key)

	log.L().Info("stored gilts",
		zap.String("path", outPath),
		zap.Int("gilts", len(collected.Gilts)),
		zap.Int("failures", len(collected.Failures)),
	)

	return outPath, nil
}
