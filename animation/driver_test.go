package animation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/radfield/grid"
	"github.com/lixenwraith/radfield/physics"
	"github.com/lixenwraith/radfield/vmath"
)

func testDriver(t *testing.T, opts Options) *Driver {
	t.Helper()
	g, err := grid.Build(grid.Range{Min: -1, Max: 4}, grid.Range{Min: -1, Max: 4}, grid.Range{Min: -2, Max: 4}, 4)
	if err != nil {
		t.Fatalf("grid.Build failed: %v", err)
	}
	return NewDriver(g, physics.DefaultConstants(), physics.DefaultKinematics(), opts)
}

func TestDriver_FrameTimes(t *testing.T) {
	d := testDriver(t, Options{Frames: 5, Dt: 0.1})

	for want := 0; want < 5; want++ {
		f, ok := d.Next()
		if !ok {
			t.Fatalf("frame %d: unexpected end of run", want)
		}
		if f.Index != want {
			t.Errorf("Expected frame index %d, got %d", want, f.Index)
		}
		if f.Time != float64(want)*0.1 {
			t.Errorf("frame %d: time %g, want %g", want, f.Time, float64(want)*0.1)
		}
		if f.Field.Time != f.Time {
			t.Errorf("frame %d: field time %g differs from frame time %g", want, f.Field.Time, f.Time)
		}
		if f.Field.Charge != physics.ChargePosition(f.Time, physics.DefaultKinematics()) {
			t.Errorf("frame %d: charge %+v not at u*t", want, f.Field.Charge)
		}
		if f.Field.Len() != d.Grid().Len() {
			t.Errorf("frame %d: field has %d samples, grid %d", want, f.Field.Len(), d.Grid().Len())
		}
	}

	if _, ok := d.Next(); ok {
		t.Error("Expected non-looping run to end after last frame")
	}
}

func TestDriver_Loop(t *testing.T) {
	d := testDriver(t, Options{Frames: 3, Dt: 1, Loop: true})

	var got []int
	for i := 0; i < 7; i++ {
		f, ok := d.Next()
		if !ok {
			t.Fatal("looping run should never end")
		}
		got = append(got, f.Index)
	}

	want := []int{0, 1, 2, 0, 1, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected index sequence %v, got %v", want, got)
		}
	}
	if d.Cycles() != 2 {
		t.Errorf("Expected 2 completed cycles, got %d", d.Cycles())
	}

	d.Reset()
	if f, _ := d.Next(); f.Index != 0 || d.Cycles() != 0 {
		t.Errorf("Reset should rewind to frame 0, got index %d cycles %d", f.Index, d.Cycles())
	}
}

func TestDriver_MatchesEvaluate(t *testing.T) {
	for _, workers := range []int{1, 4} {
		d := testDriver(t, Options{Frames: 10, Dt: 0.1, Workers: workers})
		for i := 0; i < 10; i++ {
			f, _ := d.Next()
			want := physics.Evaluate(f.Time, d.Grid(), physics.DefaultConstants(), physics.DefaultKinematics())
			for j := 0; j < want.Len(); j++ {
				if f.Field.Vector(j) != want.Vector(j) {
					t.Fatalf("workers=%d frame %d sample %d: %+v, want %+v", workers, i, j, f.Field.Vector(j), want.Vector(j))
				}
			}
		}
	}
}

func TestDriver_Probe(t *testing.T) {
	probe := vmath.Vec3F{X: 4, Y: 4, Z: 4}
	d := testDriver(t, Options{Frames: 2, Dt: 0.5, Probe: probe, HasProbe: true})

	f, _ := d.Next()
	f, _ = d.Next()
	if !f.HasProbe {
		t.Fatal("Expected probe value on frame")
	}
	want := physics.FieldAt(0.5, probe, physics.DefaultConstants(), physics.DefaultKinematics())
	if f.Probe != want {
		t.Errorf("Probe = %+v, want %+v", f.Probe, want)
	}

	plain := testDriver(t, Options{Frames: 1})
	if f, _ := plain.Next(); f.HasProbe {
		t.Error("Expected no probe when disabled")
	}
}

func TestDriver_RunNonLooping(t *testing.T) {
	d := testDriver(t, Options{Frames: 4, Dt: 0.1, Interval: time.Millisecond})

	var times []float64
	sink := SinkFunc(func(f Frame) error {
		times = append(times, f.Time)
		return nil
	})

	if err := d.Run(context.Background(), sink); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(times) != 4 {
		t.Fatalf("Expected 4 presented frames, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Errorf("Frames not in increasing time order: %v", times)
		}
	}
}

func TestDriver_RunCancel(t *testing.T) {
	d := testDriver(t, Options{Frames: 3, Dt: 0.1, Interval: time.Millisecond, Loop: true})

	ctx, cancel := context.WithCancel(context.Background())
	presented := 0
	sink := SinkFunc(func(f Frame) error {
		presented++
		if presented == 10 {
			cancel()
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx, sink) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if presented != 10 {
		t.Errorf("Expected 10 frames before cancel, got %d", presented)
	}
}

func TestDriver_RunSinkError(t *testing.T) {
	d := testDriver(t, Options{Frames: 5, Interval: time.Millisecond})
	boom := errors.New("boom")

	err := d.Run(context.Background(), SinkFunc(func(Frame) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("Expected sink error, got %v", err)
	}
}

func TestTee(t *testing.T) {
	var a, b int
	boom := errors.New("boom")
	tee := Tee{
		SinkFunc(func(Frame) error { a++; return nil }),
		nil,
		SinkFunc(func(Frame) error { b++; return boom }),
	}

	err := tee.Present(Frame{})
	if a != 1 || b != 1 {
		t.Errorf("Expected both sinks called once, got %d and %d", a, b)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Expected joined error to contain boom, got %v", err)
	}
}
