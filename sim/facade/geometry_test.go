package facade

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultGeometryValid(t *testing.T) {
	if err := DefaultGeometry().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateNeverMasksDenominators(t *testing.T) {
	g := DefaultGeometry()
	g.SourceDistance = 1e-300
	if err := g.Validate(); err != nil {
		t.Fatalf("tiny positive distance rejected: %v", err)
	}

	g.SourceDistance = math.Inf(1)
	if err := g.Validate(); !errors.Is(err, ErrSourceDistance) {
		t.Fatalf("err = %v, want ErrSourceDistance", err)
	}

	g = DefaultGeometry()
	g.PathDifference = -0.1
	if err := g.Validate(); !errors.Is(err, ErrPathDifference) {
		t.Fatalf("err = %v, want ErrPathDifference", err)
	}
}

func TestTypologies(t *testing.T) {
	want := map[string]float64{"plain": 0, "balcony": 1, "terrace": 1.5, "gallery": 2, "loggia": 3}

	all := Typologies()
	if len(all) != len(want) {
		t.Fatalf("typologies = %v", all)
	}
	for _, ty := range all {
		off, ok := want[ty.String()]
		if !ok || off != ty.Offset() {
			t.Errorf("%v: offset %g", ty, ty.Offset())
		}
		parsed, err := ParseTypology(ty.String())
		if err != nil || parsed != ty {
			t.Errorf("ParseTypology(%q) = %v, %v", ty.String(), parsed, err)
		}
	}

	if _, err := ParseTypology("atrium"); !errors.Is(err, ErrTypology) {
		t.Fatalf("err = %v", err)
	}
	if Typology(-1).String() != "unknown" || Typology(99).Offset() != 0 {
		t.Fatal("invalid typology not reported as unknown")
	}
}

func TestAngles(t *testing.T) {
	got, err := Angles(0, 10, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 2.5, 5, 7.5, 10}
	if len(got) != len(want) {
		t.Fatalf("Angles = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Angles = %v, want %v", got, want)
		}
	}

	// stop off the grid is not reached
	got, err = Angles(0, 10, 3)
	if err != nil || len(got) != 4 || got[3] != 9 {
		t.Fatalf("Angles(0, 10, 3) = %v, %v", got, err)
	}

	if got, err := Angles(45, 45, 1); err != nil || len(got) != 1 || got[0] != 45 {
		t.Fatalf("Angles(45, 45, 1) = %v, %v", got, err)
	}

	for _, bad := range [][3]float64{{0, 90, 1}, {10, 5, 1}, {0, 10, 0}, {-5, 10, 1}} {
		if _, err := Angles(bad[0], bad[1], bad[2]); !errors.Is(err, ErrAngleGrid) {
			t.Errorf("Angles%v: err = %v", bad, err)
		}
	}
}

func TestExtremes(t *testing.T) {
	if _, _, ok := Extremes(nil); ok {
		t.Fatal("Extremes(nil) ok")
	}

	rs := []Result{{Angle: 0, Attenuation: 5}, {Angle: 30, Attenuation: 14}, {Angle: 10, Attenuation: 2}}
	lo, hi, ok := Extremes(rs)
	if !ok || lo.Angle != 10 || hi.Angle != 30 {
		t.Fatalf("Extremes = %v, %v, %v", lo.Angle, hi.Angle, ok)
	}
}
