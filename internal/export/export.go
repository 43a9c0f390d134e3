package export

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"time"

	"YenDong/internal/domain/models"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Options selects outputs. At least one path must be set.
type Options struct {
	CSVPath string
	PNGPath string
}

// Write renders history and forecast to the requested files.
func Write(opts Options, history []models.HistoryPoint, forecast []models.ForecastPoint) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}
	if opts.CSVPath != "" {
		if err := WriteCSV(opts.CSVPath, history, forecast); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := WritePNG(opts.PNGPath, history, forecast); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes one row per point. Forecast rows carry the confidence band, history rows leave it empty.
func WriteCSV(path string, history []models.HistoryPoint, forecast []models.ForecastPoint) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"date", "kind", "rate", "confidence_lower", "confidence_upper"}); err != nil {
		return err
	}
	for _, p := range history {
		if err := writer.Write([]string{p.Date.String(), "history", p.Rate.StringFixed(4), "", ""}); err != nil {
			return err
		}
	}
	for _, p := range forecast {
		record := []string{
			p.Date.String(),
			"forecast",
			p.Rate.StringFixed(4),
			p.ConfidenceLower.StringFixed(4),
			p.ConfidenceUpper.StringFixed(4),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WritePNG plots history, the forecast and its band on one time axis.
func WritePNG(path string, history []models.HistoryPoint, forecast []models.ForecastPoint) error {
	if len(history) == 0 && len(forecast) == 0 {
		return errors.New("nothing to plot")
	}
	if err := ensureDir(path); err != nil {
		return err
	}

	hx := make([]time.Time, len(history))
	hy := make([]float64, len(history))
	for i, p := range history {
		hx[i] = p.Date.In(time.UTC)
		hy[i] = p.Rate.InexactFloat64()
	}

	fx := make([]time.Time, len(forecast))
	fy := make([]float64, len(forecast))
	lo := make([]float64, len(forecast))
	hi := make([]float64, len(forecast))
	for i, p := range forecast {
		fx[i] = p.Date.In(time.UTC)
		fy[i] = p.Rate.InexactFloat64()
		lo[i] = p.ConfidenceLower.InexactFloat64()
		hi[i] = p.ConfidenceUpper.InexactFloat64()
	}

	rateFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.2f")
	}
	dashed := chart.Style{StrokeDashArray: []float64{5, 5}, StrokeColor: chart.ColorAlternateGray}

	series := make([]chart.Series, 0, 4)
	if len(history) > 0 {
		series = append(series, chart.TimeSeries{Name: "JPY/VND", XValues: hx, YValues: hy})
	}
	if len(forecast) > 0 {
		series = append(series,
			chart.TimeSeries{Name: "Forecast", XValues: fx, YValues: fy},
			chart.TimeSeries{Name: "Lower", XValues: fx, YValues: lo, Style: dashed},
			chart.TimeSeries{Name: "Upper", XValues: fx, YValues: hi, Style: dashed},
		)
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "VND per JPY",
			ValueFormatter: rateFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
