package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vecAlmostEqual(a, b mgl64.Vec3) bool {
	return almostEqual(a[0], b[0]) && almostEqual(a[1], b[1]) && almostEqual(a[2], b[2])
}

func vecFinite(v mgl64.Vec3) bool {
	return finite(v[0], v[1], v[2])
}

func TestNewState(t *testing.T) {
	s := New()
	if s.Position != (mgl64.Vec3{0, 1, 5}) {
		t.Fatalf("expected position (0,1,5), got %v", s.Position)
	}
	if s.Yaw != 0 || s.Pitch != 0 {
		t.Fatalf("expected zero yaw/pitch, got %v/%v", s.Yaw, s.Pitch)
	}
	if s.Mode != FirstPerson {
		t.Fatalf("expected first person, got %v", s.Mode)
	}
}

func TestApplyPointerDelta(t *testing.T) {
	testCases := []struct {
		name       string
		start      State
		dx, dy     float64
		sens       float64
		wantYaw    float64
		wantPitch  float64
		wantRedraw bool
	}{
		{"right turns yaw", New(), 100, 0, 0.1, 10, 0, true},
		{"left turns yaw", New(), -50, 0, 0.1, -5, 0, true},
		{"pointer up looks up", New(), 0, -100, 0.1, 0, 10, true},
		{"pointer down looks down", New(), 0, 100, 0.1, 0, -10, true},
		{"clamps at floor", New(), 0, 1000, 0.1, 0, MinPitch, true},
		{"clamps at ceiling", New(), 0, -1000, 0.1, 0, MaxPitch, true},
		{"exact upper boundary", New(), 0, -890, 0.1, 0, 89, true},
		{"zero delta", State{Yaw: 12, Pitch: 34}, 0, 0, 0.1, 12, 34, false},
		{"zero delta nan sensitivity", State{Yaw: 12, Pitch: 34}, 0, 0, math.NaN(), 12, 34, false},
		{"nan dx", State{Yaw: 1, Pitch: 2}, math.NaN(), 5, 0.1, 1, 2, false},
		{"inf dy", State{Yaw: 1, Pitch: 2}, 0, math.Inf(1), 0.1, 1, 2, false},
		{"inf sensitivity", State{Yaw: 1, Pitch: 2}, 3, 0, math.Inf(-1), 1, 2, false},
		{"overflowing yaw", State{Yaw: math.MaxFloat64}, math.MaxFloat64, 0, 10, math.MaxFloat64, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, redraw := tc.start.ApplyPointerDelta(tc.dx, tc.dy, tc.sens)
			if redraw != tc.wantRedraw {
				t.Errorf("redraw: expected %v, got %v", tc.wantRedraw, redraw)
			}
			if !almostEqual(got.Yaw, tc.wantYaw) {
				t.Errorf("yaw: expected %v, got %v", tc.wantYaw, got.Yaw)
			}
			if !almostEqual(got.Pitch, tc.wantPitch) {
				t.Errorf("pitch: expected %v, got %v", tc.wantPitch, got.Pitch)
			}
		})
	}
}

func TestPitchAlwaysClamped(t *testing.T) {
	deltas := []float64{500, -3, 2000, -2000, 17, -899, 890, 1, -1, 1e6, -1e6, 0.5}
	s := New()
	for i, dy := range deltas {
		s, _ = s.ApplyPointerDelta(float64(i), dy, 0.1)
		if s.Pitch < MinPitch || s.Pitch > MaxPitch {
			t.Fatalf("step %d: pitch %v escaped [%v, %v]", i, s.Pitch, MinPitch, MaxPitch)
		}
	}
}

func TestPitchClampIsExact(t *testing.T) {
	s, _ := New().ApplyPointerDelta(0, 1000, 0.1)
	if s.Pitch != -89 {
		t.Fatalf("expected pitch exactly -89, got %v", s.Pitch)
	}
}

func TestYawAccumulatesWithoutWrapping(t *testing.T) {
	s := New()
	for i := 0; i < 950; i++ {
		s, _ = s.ApplyPointerDelta(100, 0, 0.1)
	}
	if math.Abs(s.Yaw-9500) > 1e-6 {
		t.Fatalf("expected yaw 9500, got %v", s.Yaw)
	}
	if s.Pitch != 0 {
		t.Fatalf("expected pitch 0, got %v", s.Pitch)
	}

	for _, mode := range []ViewMode{FirstPerson, ThirdPerson} {
		s.Mode = mode
		v := s.DeriveViewVectors()
		if !vecFinite(v.Eye) || !vecFinite(v.LookAt) || !vecFinite(v.Up) {
			t.Fatalf("%v: non-finite view vectors %+v", mode, v)
		}
		m := s.ViewMatrix()
		for i, f := range m {
			if math.IsNaN(float64(f)) {
				t.Fatalf("%v: view matrix element %d is NaN", mode, i)
			}
		}
	}
}

func TestApplyMovementKey(t *testing.T) {
	testCases := []struct {
		name    string
		yaw     float64
		key     Key
		want    mgl64.Vec3
		wantSig Signal
	}{
		{"forward at yaw 0", 0, KeyForward, mgl64.Vec3{0, 1, 4.5}, SignalRedraw},
		{"backward at yaw 0", 0, KeyBackward, mgl64.Vec3{0, 1, 5.5}, SignalRedraw},
		{"strafe right at yaw 0", 0, KeyStrafeRight, mgl64.Vec3{0.5, 1, 5}, SignalRedraw},
		{"strafe left at yaw 0", 0, KeyStrafeLeft, mgl64.Vec3{-0.5, 1, 5}, SignalRedraw},
		{"forward at yaw 90", 90, KeyForward, mgl64.Vec3{0.5, 1, 5}, SignalRedraw},
		{"strafe right at yaw 90", 90, KeyStrafeRight, mgl64.Vec3{0, 1, 5.5}, SignalRedraw},
		{"forward at yaw 450 equals yaw 90", 450, KeyForward, mgl64.Vec3{0.5, 1, 5}, SignalRedraw},
		{"jump does not move", 0, KeyJump, mgl64.Vec3{0, 1, 5}, SignalRedraw},
		{"quit does not move", 0, KeyQuit, mgl64.Vec3{0, 1, 5}, SignalQuit},
		{"unknown key ignored", 0, KeyNone, mgl64.Vec3{0, 1, 5}, SignalNone},
		{"out of range key ignored", 0, Key(200), mgl64.Vec3{0, 1, 5}, SignalNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start := New()
			start.Yaw = tc.yaw
			got, sig := start.ApplyMovementKey(tc.key, DefaultMoveSpeed)
			if sig != tc.wantSig {
				t.Errorf("signal: expected %v, got %v", tc.wantSig, sig)
			}
			if !vecAlmostEqual(got.Position, tc.want) {
				t.Errorf("position: expected %v, got %v", tc.want, got.Position)
			}
			if got.Yaw != start.Yaw || got.Pitch != start.Pitch || got.Mode != start.Mode {
				t.Errorf("orientation or mode changed: %+v -> %+v", start, got)
			}
		})
	}
}

func TestMovementIgnoresPitch(t *testing.T) {
	level := State{Position: DefaultPosition, Yaw: 30}
	tilted := State{Position: DefaultPosition, Yaw: 30, Pitch: 80}

	a, _ := level.ApplyMovementKey(KeyForward, 1)
	b, _ := tilted.ApplyMovementKey(KeyForward, 1)
	if !vecAlmostEqual(a.Position, b.Position) {
		t.Fatalf("pitch changed movement: %v vs %v", a.Position, b.Position)
	}
	if a.Position[1] != DefaultPosition[1] {
		t.Fatalf("forward changed height: %v", a.Position)
	}
}

func TestMovementRoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		a, b Key
	}{
		{"forward_backward", KeyForward, KeyBackward},
		{"strafe_right_left", KeyStrafeRight, KeyStrafeLeft},
	}
	yaws := []float64{0, 15, 45, 90, 137.5, 180, -73, 359, 9500}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for _, yaw := range yaws {
				start := State{Position: mgl64.Vec3{3, 1, -2}, Yaw: yaw}
				mid, _ := start.ApplyMovementKey(p.a, 0.75)
				end, _ := mid.ApplyMovementKey(p.b, 0.75)
				if !vecAlmostEqual(start.Position, end.Position) {
					t.Errorf("yaw %v: expected %v, got %v", yaw, start.Position, end.Position)
				}
			}
		})
	}
}

func TestMovementRejectsNonFinite(t *testing.T) {
	testCases := []struct {
		name  string
		start State
		speed float64
	}{
		{"nan speed", New(), math.NaN()},
		{"inf speed", New(), math.Inf(1)},
		{"overflowing position", State{Position: mgl64.Vec3{0, 1, -math.MaxFloat64}}, math.MaxFloat64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, sig := tc.start.ApplyMovementKey(KeyForward, tc.speed)
			if sig != SignalNone {
				t.Errorf("expected SignalNone, got %v", sig)
			}
			if got.Position != tc.start.Position {
				t.Errorf("position changed: %v -> %v", tc.start.Position, got.Position)
			}
		})
	}
}

func TestToggleViewIsInvolution(t *testing.T) {
	for _, mode := range []ViewMode{FirstPerson, ThirdPerson} {
		s := State{Position: DefaultPosition, Mode: mode}
		once, _ := s.ApplyMovementKey(KeyToggleView, DefaultMoveSpeed)
		if once.Mode == mode {
			t.Fatalf("toggle from %v did not change mode", mode)
		}
		twice, _ := once.ApplyMovementKey(KeyToggleView, DefaultMoveSpeed)
		if twice != s {
			t.Fatalf("toggle twice: expected %+v, got %+v", s, twice)
		}
	}
}

func TestKeyFromCode(t *testing.T) {
	testCases := []struct {
		code rune
		want Key
	}{
		{'w', KeyForward},
		{'W', KeyForward},
		{'s', KeyBackward},
		{'S', KeyBackward},
		{'a', KeyStrafeLeft},
		{'A', KeyStrafeLeft},
		{'d', KeyStrafeRight},
		{'D', KeyStrafeRight},
		{'q', KeyToggleView},
		{'Q', KeyToggleView},
		{' ', KeyJump},
		{27, KeyQuit},
		{'x', KeyNone},
		{'1', KeyNone},
		{0, KeyNone},
		{'é', KeyNone},
	}

	for _, tc := range testCases {
		if got := KeyFromCode(tc.code); got != tc.want {
			t.Errorf("KeyFromCode(%q): expected %v, got %v", tc.code, tc.want, got)
		}
	}
}
