package collect

import (
	"benritz/fixedincome/internal/bond"
	"benritz/fixedincome/internal/log"
	"benritz/fixedincome/internal/types"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const SourceDividendData = "DividendData"

const dividendDataURL = "https://www.dividenddata.co.uk/uk-gilts-prices-yields.py"

const (
	ddColTicker           = 0
	ddColDesc             = 1
	ddColCoupon           = 2
	ddColMaturityDate     = 3
	ddColMaturityDuration = 4
	ddColPrice            = 5
	ddColMaturityYield    = 6
)

type DividendDataCollector struct {
	url     string
	opts    bond.SolverOptions
	workers int
}

func NewDividendDataCollector(opts bond.SolverOptions, workers int) *DividendDataCollector {
	return &DividendDataCollector{
		url:     dividendDataURL,
		opts:    opts,
		workers: workers,
	}
}

func (c *DividendDataCollector) Collect(ctx context.Context, date time.Time) (*CollectedGilts, error) {
	x := colly.NewCollector()

	// the page is updated daily but the data for date may not be available yet
	const datePrefix = "Last updated: "
	var dataTs time.Time

	x.OnHTML("label", func(e *colly.HTMLElement) {
		if s, ok := strings.CutPrefix(strings.TrimSpace(e.Text), datePrefix); ok {
			dataTs, _ = time.Parse("02 Jan 2006", strings.TrimSpace(s))
		}
	})

	collected := NewCollectedGilts(SourceDividendData, date)

	x.OnHTML("#mainbody tr", func(e *colly.HTMLElement) {
		if cg := c.readGilt(date, e); cg != nil {
			collected.AddGilt(cg)
		}
	})

	log.L().Info("fetching page", zap.String("source", SourceDividendData), zap.String("url", c.url))

	if err := x.Visit(c.url); err != nil {
		return nil, err
	}

	if dataTs.IsZero() {
		return nil, types.ErrMissingSettlementDate
	}

	y1, m1, d1 := dataTs.Date()
	y2, m2, d2 := date.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return nil, types.ErrDataUnavailable
	}

	if err := collected.Complete(ctx, c.opts, c.workers); err != nil {
		return nil, err
	}

	return collected, nil
}

func (c *DividendDataCollector) Source() string {
	return SourceDividendData
}

// readGilt returns nil for rows without data cells, e.g. the header.
func (c *DividendDataCollector) readGilt(date time.Time, e *colly.HTMLElement) *CollectedGilt {
	if e.DOM.Find("td").Length() == 0 {
		return nil
	}

	g := types.NewUKGilt(SourceDividendData, date)
	cg := &CollectedGilt{Gilt: g}

	e.ForEach("td", func(col int, el *colly.HTMLElement) {
		text := strings.TrimSpace(el.Text)

		switch col {
		case ddColTicker:
			g.Ticker = text
			if g.Ticker == "" {
				cg.SetError(types.ErrInvalidTicker)
			}
		case ddColDesc:
			g.Desc = text
			if g.Desc == "" {
				cg.SetError(types.ErrInvalidDesc)
			}
		case ddColCoupon:
			if coupon, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64); err == nil {
				g.Coupon = coupon
			} else {
				cg.SetError(types.ErrInvalidCoupon)
			}
		case ddColMaturityDate:
			if ts, err := time.Parse("02-Jan-2006", text); err == nil {
				g.MaturityDate = ts
			} else {
				cg.SetError(types.ErrInvalidMaturityDate)
			}
		case ddColMaturityDuration:
			// ignore, calculated from maturity date
		case ddColPrice:
			s := strings.TrimPrefix(strings.TrimPrefix(text, "Â"), "£")
			if price, err := strconv.ParseFloat(s, 64); err == nil {
				g.CleanPrice = price
			} else {
				cg.SetError(types.ErrInvalidCleanPrice)
			}
		case ddColMaturityYield:
			if ytm, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64); err == nil {
				g.YieldToMaturity = ytm
			} else {
				cg.SetError(types.ErrInvalidYieldToMaturity)
			}
		}
	})

	return cg
}
