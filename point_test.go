package qcp

import (
	"testing"

	"github.com/emiro85/QCustomPlot/series"
)

func TestGraphPointCoordinates(t *testing.T) {
	p := GraphPoint{Key: 3, Value: 7}
	if p.SortKey() != 3 || p.MainKey() != 3 || p.MainValue() != 7 {
		t.Errorf("unexpected coordinates for %v", p)
	}
	if !p.SortKeyIsMainKey() {
		t.Errorf("graph points must sort by their key coordinate")
	}
	if vr := p.ValueRange(); vr.Lower != 7 || vr.Upper != 7 {
		t.Errorf("expected single-valued range [7,7], got %v", vr)
	}
	if probe := p.FromSortKey(9); probe.Key != 9 || probe.Value != 0 {
		t.Errorf("expected a bare probe point, got %v", probe)
	}
}

func TestCurvePointSortsByParameter(t *testing.T) {
	c := series.New[CurvePoint]()
	c.Set([]CurvePoint{
		{T: 1, Key: 0, Value: 0},
		{T: 0, Key: 9, Value: 0},
	}, false)
	first, _ := c.At(0)
	if first.T != 0 || first.Key != 9 {
		t.Errorf("expected order by curve parameter, got %v first", first)
	}
	if first.SortKeyIsMainKey() {
		t.Errorf("curve points must not claim monotonic keys")
	}
}

func TestFinancialPointValueRangeSpansBar(t *testing.T) {
	p := FinancialPoint{Key: 1, Open: 10, High: 15, Low: 8, Close: 12}
	if p.MainValue() != 12 {
		t.Errorf("expected the close value as main value, got %g", p.MainValue())
	}
	if vr := p.ValueRange(); vr.Lower != 8 || vr.Upper != 15 {
		t.Errorf("expected the bar span [8,15], got %v", vr)
	}
}

func TestFinancialSeriesValueRangeCoversWicks(t *testing.T) {
	c := series.New[FinancialPoint]()
	c.Set([]FinancialPoint{
		{Key: 1, Open: 10, High: 15, Low: 8, Close: 12},
		{Key: 2, Open: 12, High: 20, Low: 11, Close: 13},
	}, true)
	rng, found := c.ValueRange(series.SignBoth, series.Range{})
	if !found || rng.Lower != 8 || rng.Upper != 20 {
		t.Errorf("expected value range [8,20] covering both bars, got %v found=%v", rng, found)
	}
}
