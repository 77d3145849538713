// 15 Oct 2026

package xlstat

import (
	"github.com/andrew-torda/rstrdata/pkg/xlink"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistPlot draws a histogram of scores with nbins bins. The format
// comes from the file name extension (.png, .svg, .pdf ..).
func HistPlot(xd *xlink.CrossLinkData, nbins int, fname string) error {
	if xd.Len() == 0 {
		return errNoData
	}
	if nbins < 1 {
		nbins = 20
	}
	p := plot.New()
	p.Title.Text = "cross-link scores"
	p.X.Label.Text = "score"
	p.Y.Label.Text = "count"
	p.Add(plotter.NewGrid())
	h, err := plotter.NewHist(plotter.Values(scores(xd)), nbins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 4*vg.Inch, fname)
}
