package simulate

var (
	throttleSpeeds = []float64{0, 1400, 1410}
	throttleAccels = []float64{1600, 160, 0}
)

// Car1D models a car driving in a straight line. It ignores turning and
// orientation; it only answers how far the car gets in a given time.
type Car1D struct {
	speed    float64
	boost    float64
	distance float64
	time     float64
}

// NewCar1D starts a car at speed with no boost.
func NewCar1D(speed float64) *Car1D {
	return &Car1D{speed: speed}
}

// WithBoost sets the boost reserve (0-100).
func (c *Car1D) WithBoost(boost float64) *Car1D {
	c.boost = boost
	return c
}

func (c *Car1D) Speed() float64            { return c.speed }
func (c *Car1D) Boost() float64            { return c.boost }
func (c *Car1D) DistanceTraveled() float64 { return c.distance }
func (c *Car1D) Time() float64             { return c.time }

// ThrottleAccel returns full-throttle acceleration at the given speed.
func ThrottleAccel(speed float64) float64 {
	return LinearInterpolate(throttleSpeeds, throttleAccels, speed)
}

// Step advances the car by dt with the given throttle (0-1) and boost request.
func (c *Car1D) Step(dt, throttle float64, boost bool) {
	boosting := boost && c.boost > 0
	accel := ThrottleAccel(c.speed) * throttle
	if boosting {
		accel += CarBoostAccel
	}

	c.speed += accel * dt
	if c.speed > CarMaxSpeed {
		c.speed = CarMaxSpeed
	}
	c.distance += c.speed * dt
	c.time += dt

	if boosting {
		c.boost -= CarBoostDepletion * dt
		if c.boost < 0 {
			c.boost = 0
		}
	}
}
