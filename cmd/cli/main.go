package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"microwave-converter/internal/api/models"
	"microwave-converter/internal/catalog"
	"microwave-converter/internal/convert"
	"microwave-converter/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "convert":
		cmdConvert(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli convert --from 1000 --to 700 --minutes 2 --seconds 30")
	fmt.Println("  cli convert --from 1000 --targets 600,700,800 --minutes 2 --out comparison.csv")
	fmt.Println("  cli presets [--file examples/presets/default.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - converted times keep the delivered energy equal across wattages")
	fmt.Println("  - --json prints the same shape the API returns")
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	from := fs.Int("from", 0, "Wattage the recipe was written for")
	to := fs.Int("to", 0, "Wattage of the microwave being used")
	targets := fs.String("targets", "", "Comma-separated target wattages (alternative to --to)")
	minutes := fs.Int("minutes", 0, "Recipe minutes")
	seconds := fs.Int("seconds", 0, "Recipe seconds")
	asJSON := fs.Bool("json", false, "Print JSON instead of text")
	outPath := fs.String("out", "", "Optional: write a comparison CSV here")
	_ = fs.Parse(args)

	if *from == 0 {
		fmt.Println("--from is required")
		os.Exit(2)
	}
	if *to == 0 && *targets == "" {
		fmt.Println("--to or --targets is required")
		os.Exit(2)
	}

	engine := convert.New()
	base := model.ConversionRequest{
		OriginalWattage: *from,
		OriginalMinutes: *minutes,
		OriginalSeconds: *seconds,
	}

	if *targets == "" {
		req := base
		req.TargetWattage = *to
		res, err := engine.Convert(req)
		if err != nil {
			fail(err)
		}
		if *asJSON {
			printJSON(toResponse(res))
		} else {
			fmt.Println(res.ConvertedTime.Formatted)
			fmt.Println(res.Explanation)
			fmt.Printf("Power level: %s (%s)\n", res.Recommendation.PowerLevel, res.Recommendation.Reason)
		}
		if *outPath != "" {
			writeCSV(*outPath, []convert.ComparisonRow{{TargetWattage: req.TargetWattage, Result: res}})
		}
		return
	}

	watts, err := splitTargets(*targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rows := make([]convert.ComparisonRow, 0, len(watts))
	for _, w := range watts {
		req := base
		req.TargetWattage = w
		res, err := engine.Convert(req)
		if err != nil {
			fail(err)
		}
		rows = append(rows, convert.ComparisonRow{TargetWattage: w, Result: res})
	}

	if *asJSON {
		printJSON(toBatchResponse(base, rows))
	} else {
		fmt.Printf("%-8s %-10s %-9s %-7s %-8s\n", "target", "time", "total_s", "ratio", "power")
		for _, r := range rows {
			fmt.Printf("%-8s %-10s %-9d %-7.2f %-8s\n",
				fmt.Sprintf("%dW", r.TargetWattage),
				r.Result.ConvertedTime.Formatted,
				r.Result.ConvertedTime.TotalSeconds,
				r.Result.Wattages.Ratio,
				r.Result.Recommendation.PowerLevel,
			)
		}
	}
	if *outPath != "" {
		writeCSV(*outPath, rows)
	}
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	file := fs.String("file", "", "Optional: YAML presets file to print instead of the built-ins")
	_ = fs.Parse(args)

	p := catalog.Default()
	if *file != "" {
		loaded, err := catalog.Load(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		p = loaded
	}

	fmt.Println("wattages:")
	for _, w := range p.Wattages {
		fmt.Printf("  %dW\n", w)
	}
	fmt.Println("durations:")
	for _, d := range p.Durations {
		fmt.Printf("  %-8s (%ds)\n", d.Formatted, d.TotalSeconds)
	}
}

// fail reports validation problems on stderr and panics on anything
// unexpected.
func fail(err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, verr.Message)
		os.Exit(2)
	}
	panic(err)
}

func splitTargets(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid target wattage %q", p)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no target wattages in %q", s)
	}
	return out, nil
}

func writeCSV(path string, rows []convert.ComparisonRow) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := convert.WriteComparisonCSV(path, rows); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), path)
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
}

func toResponse(res *convert.Result) models.ConvertResponse {
	return models.ConvertResponse{
		ConvertedTime:       res.ConvertedTime,
		OriginalTime:        res.OriginalTime,
		Wattages:            res.Wattages,
		PowerRecommendation: res.Recommendation,
		Explanation:         res.Explanation,
	}
}

func toBatchResponse(base model.ConversionRequest, rows []convert.ComparisonRow) models.BatchConvertResponse {
	comparisons := make([]models.BatchComparison, 0, len(rows))
	for _, r := range rows {
		comparisons = append(comparisons, models.BatchComparison{
			TargetWattage:       r.TargetWattage,
			ConvertedTime:       r.Result.ConvertedTime,
			Wattages:            r.Result.Wattages,
			PowerRecommendation: r.Result.Recommendation,
		})
	}
	return models.BatchConvertResponse{
		OriginalTime: model.DurationFromSeconds(base.TotalSeconds()),
		Comparisons:  comparisons,
		Count:        len(comparisons),
	}
}
