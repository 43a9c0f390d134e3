package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"YenDong/internal/domain/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() ([]models.HistoryPoint, []models.ForecastPoint) {
	d := civil.Date{Year: 2024, Month: 3, Day: 14}
	history := []models.HistoryPoint{
		{Date: d, Rate: decimal.RequireFromString("171.5")},
		{Date: d.AddDays(1), Rate: decimal.RequireFromString("172.3")},
	}
	forecast := []models.ForecastPoint{{
		Date:            d.AddDays(2),
		Rate:            decimal.RequireFromString("172.4"),
		ConfidenceLower: decimal.RequireFromString("171.9"),
		ConfidenceUpper: decimal.RequireFromString("172.9"),
	}}
	return history, forecast
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rates.csv")
	h, f := fixtures()

	require.NoError(t, WriteCSV(path, h, f))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"date", "kind", "rate", "confidence_lower", "confidence_upper"}, rows[0])
	assert.Equal(t, []string{"2024-03-14", "history", "171.5000", "", ""}, rows[1])
	assert.Equal(t, []string{"2024-03-16", "forecast", "172.4000", "171.9000", "172.9000"}, rows[3])
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.png")
	h, f := fixtures()

	require.NoError(t, WritePNG(path, h, f))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(b[:4]))
}

func TestWriteRequiresAnOutput(t *testing.T) {
	h, f := fixtures()
	assert.Error(t, Write(Options{}, h, f))
}
