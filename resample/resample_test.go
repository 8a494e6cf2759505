package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/jpdeleon/pandora-go/pandoraerr"
)

func TestAverage_Basic(t *testing.T) {
	got, err := Average([]float64{1, 2, 3, 4, 5, 6}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1.5, 3.5, 5.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("block %d: got %g, want %g", i, got[i], want[i])
		}
	}
}

func TestAverage_FactorOne(t *testing.T) {
	in := []float64{1, 2, 3}
	got, err := Average(in, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("sample %d: got %g, want %g", i, got[i], in[i])
		}
	}
}

func TestAverage_NotDivisible(t *testing.T) {
	_, err := Average([]float64{1, 2, 3}, 2)
	if !errors.Is(err, pandoraerr.ErrGridDivisor) {
		t.Errorf("expected ErrGridDivisor, got %v", err)
	}
}

func TestAverage_ZeroFactor(t *testing.T) {
	_, err := Average([]float64{1, 2}, 0)
	if !errors.Is(err, pandoraerr.ErrGridDivisor) {
		t.Errorf("expected ErrGridDivisor, got %v", err)
	}
}
