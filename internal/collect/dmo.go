package collect

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/log"
	"benritz/fixedincome/internal/types"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pbnjay/grate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const SourceDMO = "DMO"

const dmoExportURL = "https://www.dmo.gov.uk/umbraco/surface/DataExport/GetDataExport"

// D10B report columns
const (
	dmoColISIN         = 0
	dmoColDesc         = 1
	dmoColCleanPrice   = 2
	dmoColDirtyPrice   = 3
	dmoColMaturityDate = 7
)

type DMOCollector struct {
	client  *http.Client
	opts    bond.SolverOptions
	workers int
}

func NewDMOCollector(opts bond.SolverOptions, workers int) *DMOCollector {
	return &DMOCollector{
		client:  &http.Client{Timeout: time.Minute},
		opts:    opts,
		workers: workers,
	}
}

func (c *DMOCollector) Collect(ctx context.Context, date time.Time) (*CollectedGilts, error) {
	// The DMO website has a number of reports that can be used to collect gilt data.
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D1A
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D9D
	// https://www.dmo.gov.uk/data/pdfdatareport?reportCode=D10B

	params := fmt.Sprintf("&Trade Date=%02d-%02d-%04d", date.Day(), date.Month(), date.Year())
	reportURL := dmoExportURL + "?reportCode=D10B&exportFormatValue=xls&parameters=" + url.QueryEscape(params)

	logger := log.L().With(zap.String("source", SourceDMO))
	logger.Info("fetching report", zap.String("url", reportURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reportURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get data: http %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "gilt-*.xls")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	size, err := io.Copy(tmp, resp.Body)
	tmp.Close()
	if err != nil {
		return nil, err
	}

	logger.Debug("downloaded report", zap.Int64("bytes", size), zap.String("path", tmp.Name()))

	wb, err := grate.Open(tmp.Name())
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	collected := NewCollectedGilts(SourceDMO, date)
	parsed := 0

	sheets, err := wb.List()
	if err != nil {
		return nil, err
	}

	for _, sheetName := range sheets {
		sheet, err := wb.Get(sheetName)
		if err != nil {
			return nil, err
		}

		for sheet.Next() {
			cg, err := c.parseRow(date, sheet.Strings())
			if err != nil {
				continue
			}
			collected.AddGilt(cg)
			parsed++
		}
	}

	if parsed == 0 {
		return nil, types.ErrDataUnavailable
	}

	if err := collected.Complete(ctx, c.opts, c.workers); err != nil {
		return nil, err
	}

	logger.Info("collected gilts",
		zap.Int("gilts", len(collected.Gilts)),
		zap.Int("failures", len(collected.Failures)),
	)

	return collected, nil
}

func (c *DMOCollector) Source() string {
	return SourceDMO
}

// parseRow reads one D10B row. Rows that are not gilts return ErrInvalidRow
// and index-linked gilts return types.ErrUnsupportedGilt. Field errors are
// recorded on the returned CollectedGilt.
func (c *DMOCollector) parseRow(date time.Time, row []string) (*CollectedGilt, error) {
	if len(row) <= dmoColMaturityDate {
		return nil, ErrInvalidRow
	}

	isin := strings.TrimSpace(row[dmoColISIN])

	if !strings.HasPrefix(isin, "GB") {
		return nil, ErrInvalidRow
	}

	g := types.NewUKGilt(SourceDMO, date)
	g.ISIN = isin
	g.Desc = strings.TrimSpace(row[dmoColDesc])

	if strings.Contains(strings.ToLower(g.Desc), "index-linked") {
		return nil, types.ErrUnsupportedGilt
	}

	cg := &CollectedGilt{Gilt: g}

	if coupon, err := parseCouponPercentage(g.Desc); err == nil {
		g.Coupon = coupon
	} else {
		cg.SetError(types.ErrInvalidCoupon)
	}

	if cleanPrice, err := strconv.ParseFloat(strings.TrimSpace(row[dmoColCleanPrice]), 64); err == nil {
		g.CleanPrice = cleanPrice
	} else {
		cg.SetError(types.ErrInvalidCleanPrice)
	}

	if dirtyPrice, err := strconv.ParseFloat(strings.TrimSpace(row[dmoColDirtyPrice]), 64); err == nil {
		g.DirtyPrice = dirtyPrice
	} else {
		cg.SetError(types.ErrInvalidDirtyPrice)
	}

	if ts, err := time.Parse("02-Jan-2006", strings.TrimSpace(row[dmoColMaturityDate])); err == nil {
		g.MaturityDate = ts
	} else {
		cg.SetError(types.ErrInvalidMaturityDate)
	}

	return cg, nil
}

var couponRe = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?[¼½¾⅛⅜⅝⅞]?)%`)

var couponGlyphs = map[rune]decimal.Decimal{
	'¼': decimal.RequireFromString("0.25"),
	'½': decimal.RequireFromString("0.5"),
	'¾': decimal.RequireFromString("0.75"),
	'⅛': decimal.RequireFromString("0.125"),
	'⅜': decimal.RequireFromString("0.375"),
	'⅝': decimal.RequireFromString("0.625"),
	'⅞': decimal.RequireFromString("0.875"),
}

// parseCouponPercentage reads the coupon from the start of a gilt
// description, e.g.
//
//	0 5/8% Treasury Gilt 2025
//	2% Treasury Gilt 2025
//	3½% Treasury Gilt 2025
//	4.25% Treasury Gilt 2055
func parseCouponPercentage(desc string) (float64, error) {
	match := couponRe.FindStringSubmatch(desc)
	if match == nil {
		return 0, types.ErrInvalidCoupon
	}

	m := []rune(match[1])
	coupon := decimal.Zero

	if frac, ok := couponGlyphs[m[len(m)-1]]; ok {
		coupon = frac
		m = m[:len(m)-1]
	}

	for _, part := range strings.Fields(string(m)) {
		v, err := parseFraction(part)
		if err != nil {
			return 0, types.ErrInvalidCoupon
		}
		coupon = coupon.Add(v)
	}

	return coupon.InexactFloat64(), nil
}

func parseFraction(s string) (decimal.Decimal, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return decimal.NewFromString(s)
	}

	n, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, err
	}

	d, err := decimal.NewFromString(den)
	if err != nil {
		return decimal.Zero, err
	}

	if d.IsZero() {
		return decimal.Zero, fmt.Errorf("zero denominator in %q", s)
	}

	return n.DivRound(d, 16), nil
}
