package vehicle

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{0, -0.01, -1e-18, 2 * math.Pi, 7, -7, 100, -100, math.Pi} {
		got := NormalizeAngle(a)
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v, out of [0, 2π)", a, got)
		}
	}
	if got := NormalizeAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Errorf("NormalizeAngle(-π/2) = %v", got)
	}
}

func TestYawStaysNormalized(t *testing.T) {
	c := NewCar(30, 30)
	c.Reset(0, 0, 0)
	steps := []float64{0.3, -1.7, 4, 6.2, -0.001, 2 * math.Pi, -12.5}
	for _, d := range steps {
		c.IncYaw(d)
		if y := c.Yaw(); y < 0 || y >= 2*math.Pi {
			t.Fatalf("yaw %v out of range after IncYaw(%v)", y, d)
		}
		c.SetInertia(-1)
		c.Steer(d)
		if y := c.Yaw(); y < 0 || y >= 2*math.Pi {
			t.Fatalf("yaw %v out of range after Steer(%v)", y, d)
		}
		c.SetInertia(0)
	}
}

func TestSteerFlipsInReverse(t *testing.T) {
	c := NewCar(30, 30)
	c.Reset(0, 0, 1)

	c.SetInertia(1)
	c.Steer(0.1)
	if math.Abs(c.Yaw()-1.1) > 1e-12 {
		t.Errorf("forward right turn: yaw %v", c.Yaw())
	}

	c.SetInertia(-1)
	c.Steer(0.1)
	if math.Abs(c.Yaw()-1.0) > 1e-12 {
		t.Errorf("reverse right turn should turn the other way: yaw %v", c.Yaw())
	}
}

func TestAdvanceAndRestore(t *testing.T) {
	c := NewCar(30, 30)
	c.Reset(100, 100, math.Pi) // facing +x
	c.SetInertia(2)
	c.Backup()
	c.Advance(0.5)

	x, y := c.Position()
	if math.Abs(x-101) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("position after advance = %v,%v", x, y)
	}
	if c.Inertia() != 1 {
		t.Errorf("inertia = %v, want 1", c.Inertia())
	}

	c.UpdateTimer(8)
	if vx := c.State().VX; math.Abs(vx-125) > 1e-6 {
		t.Errorf("vx = %v, want 125 px/s", vx)
	}
	if c.TimerMS() != 8 {
		t.Errorf("timer = %d", c.TimerMS())
	}

	c.Restore()
	if x, y := c.Position(); x != 100 || y != 100 {
		t.Errorf("restore gave %v,%v", x, y)
	}
}

func TestResetKeepsFootprint(t *testing.T) {
	c := NewCar(30, 20)
	c.Progress.Update(1, false)
	c.SetInertia(3)
	c.Reset(5, 6, 3*math.Pi)

	if c.Length() != 30 || c.Width() != 20 {
		t.Errorf("footprint changed: %vx%v", c.Length(), c.Width())
	}
	if c.Inertia() != 0 || c.TimerMS() != 0 || c.Progress.Last() != 0 {
		t.Error("reset should clear inertia, timer and progress")
	}
	if math.Abs(c.Yaw()-math.Pi) > 1e-12 {
		t.Errorf("yaw = %v", c.Yaw())
	}
	if c.before != c.State() {
		t.Error("reset should back up the start pose")
	}
}

func TestFootprint(t *testing.T) {
	c := NewCar(30, 30)
	c.Reset(100, 50, 0)

	x, y := Footprint(c, 1, 3, 4)
	if math.Abs(x-110) > 1e-9 || math.Abs(y-54) > 1e-9 {
		t.Errorf("rear left = %v,%v, want 110,54", x, y)
	}
	x, y = Footprint(c, -1, -4, -4)
	if math.Abs(x-90) > 1e-9 || math.Abs(y-46) > 1e-9 {
		t.Errorf("front right = %v,%v, want 90,46", x, y)
	}
}

func TestPositionLightsToggle(t *testing.T) {
	c := NewCar(30, 30)
	if !c.PositionLights() {
		t.Fatal("position lights start on")
	}
	c.TogglePositionLights()
	if c.PositionLights() {
		t.Error("toggle should switch them off")
	}
}
