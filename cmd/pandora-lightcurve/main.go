// Command pandora-lightcurve evaluates a pandora transit model over a
// time grid and writes the resulting light curve to stdout as CSV.
//
// Usage:
//
//	pandora-lightcurve -params bundle.json -t0 100 -duration 2 -n 2000
//
// bundle.json holds a JSON-encoded params.Bundle (see params.Bundle's
// field names). The time grid is a single epoch centered on -t0 spanning
// -duration days, built with timegrid.Build.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jpdeleon/pandora-go/params"
	"github.com/jpdeleon/pandora-go/pandora"
	"github.com/jpdeleon/pandora-go/timegrid"
)

func main() {
	paramsPath := flag.String("params", "", "path to a JSON-encoded params.Bundle")
	t0 := flag.Float64("t0", 0, "center of the observation window, days")
	duration := flag.Float64("duration", 1, "width of the observation window, days")
	n := flag.Int("n", 1000, "number of returned samples")
	flag.Parse()

	if *paramsPath == "" {
		fmt.Fprintln(os.Stderr, "pandora-lightcurve: -params is required")
		os.Exit(2)
	}

	bundle, err := loadBundle(*paramsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pandora-lightcurve: %v\n", err)
		os.Exit(1)
	}

	time := timegrid.Build(bundle, *t0, *duration, *n)
	flux, err := pandora.Evaluate(bundle, time)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pandora-lightcurve: %v\n", err)
		os.Exit(1)
	}

	if err := writeCSV(os.Stdout, sampleTimes(*t0, *duration, *n), flux); err != nil {
		fmt.Fprintf(os.Stderr, "pandora-lightcurve: %v\n", err)
		os.Exit(1)
	}
}

func loadBundle(path string) (*params.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var b params.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &b, nil
}

// sampleTimes recomputes the (unsupersampled) returned-sample timestamps
// that correspond 1:1 with Evaluate's block-averaged flux output.
func sampleTimes(t0, duration float64, n int) []float64 {
	p := &params.Bundle{SupersamplingFactor: 1}
	return timegrid.Build(p, t0, duration, n)
}

func writeCSV(f *os.File, time, flux []float64) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time_days", "flux"}); err != nil {
		return err
	}
	for i := range flux {
		row := []string{
			strconv.FormatFloat(time[i], 'g', -1, 64),
			strconv.FormatFloat(flux[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
