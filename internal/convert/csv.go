package convert

import (
	"encoding/csv"
	"os"
	"strconv"
)

// ComparisonRow pairs one target wattage with its conversion result.
type ComparisonRow struct {
	TargetWattage int
	Result        *Result
}

func WriteComparisonCSV(path string, rows []ComparisonRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"target_wattage",
		"ratio",
		"total_seconds",
		"formatted",
		"power_level",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.TargetWattage),
			fmtRatio(r.Result.Wattages.Ratio),
			strconv.Itoa(r.Result.ConvertedTime.TotalSeconds),
			r.Result.ConvertedTime.Formatted,
			r.Result.Recommendation.PowerLevel,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtRatio(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
