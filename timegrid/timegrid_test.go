package timegrid

import (
	"math"
	"testing"

	"github.com/jpdeleon/pandora-go/params"
)

func TestBuild_Endpoints(t *testing.T) {
	p := &params.Bundle{SupersamplingFactor: 1}
	grid := Build(p, 100.0, 2.0, 5)
	if math.Abs(grid[0]-99.0) > 1e-12 {
		t.Errorf("first sample = %g, want 99", grid[0])
	}
	if math.Abs(grid[len(grid)-1]-101.0) > 1e-12 {
		t.Errorf("last sample = %g, want 101", grid[len(grid)-1])
	}
}

func TestBuild_Supersampling(t *testing.T) {
	p := &params.Bundle{SupersamplingFactor: 4}
	grid := Build(p, 0, 1.0, 10)
	if len(grid) != 40 {
		t.Errorf("len(grid) = %d, want 40 (10 samples * factor 4)", len(grid))
	}
}

func TestBuild_DefaultsSupersamplingToOne(t *testing.T) {
	p := &params.Bundle{}
	grid := Build(p, 0, 1.0, 5)
	if len(grid) != 5 {
		t.Errorf("len(grid) = %d, want 5 with zero-valued SupersamplingFactor", len(grid))
	}
}

func TestBuildEpochs_ConcatenatesInOrder(t *testing.T) {
	p := &params.Bundle{SupersamplingFactor: 1}
	grid := BuildEpochs(p, []Epoch{
		{Center: 0, Duration: 0.2, N: 3},
		{Center: 365.25, Duration: 0.2, N: 3},
	})
	if len(grid) != 6 {
		t.Fatalf("len(grid) = %d, want 6", len(grid))
	}
	if grid[2] > grid[3] {
		t.Errorf("epochs should be concatenated in order: grid[2]=%g > grid[3]=%g", grid[2], grid[3])
	}
	if math.Abs(grid[4]-365.25) > 1e-9 {
		t.Errorf("second epoch center sample = %g, want ~365.25", grid[4])
	}
}

func TestBuild_SingleSample(t *testing.T) {
	p := &params.Bundle{SupersamplingFactor: 1}
	grid := Build(p, 42.0, 1.0, 1)
	if len(grid) != 1 || grid[0] != 42.0 {
		t.Errorf("single-sample epoch = %v, want [42]", grid)
	}
}
