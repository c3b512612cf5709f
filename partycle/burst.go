package partycle

import (
	"github.com/frameloop/pulse"
	"github.com/frameloop/pulse/gm"
	"github.com/frameloop/pulse/pulsebiten"
	"github.com/frameloop/pulse/pulsebiten/color"
)

// Burst describes particles spawned at once.
type Burst struct {
	Stage *pulsebiten.Stage

	Count int

	Speed       float64
	SpeedJitter float64

	Decay       float64
	DecayJitter float64

	// Spread is the radius of the circle the particles spawn in.
	Spread float64

	Radius float64
	Colors Curve[color.Color]
}

// Emit instantiates the particles of the burst around the given position.
func (b Burst) Emit(app *pulse.App, at gm.Vec) []pulse.EntityId {
	ids := make([]pulse.EntityId, 0, b.Count)

	for range b.Count {
		ids = append(ids, app.Instantiate(b.particle(at)))
	}

	return ids
}

func (b Burst) particle(at gm.Vec) *Particle {
	speed := jitter(b.Speed, b.SpeedJitter)

	return &Particle{
		Base:     pulse.Base{Position: at.Add(gm.RandomUnitVec().Mul(gm.RandomIn(0, b.Spread)))},
		Stage:    b.Stage,
		Velocity: gm.RandomUnitVec().Mul(speed),
		Speed:    speed,
		Decay:    max(0.001, jitter(b.decay(), b.DecayJitter)),
		Radius:   b.Radius,
		Colors:   b.Colors,
	}
}

func (b Burst) decay() float64 {
	if b.Decay == 0 {
		return DefaultDecay
	}

	return b.Decay
}

// Emitter spawns particles at a rate while it moves. Particles are spread
// along the way the emitter moved since its last update.
type Emitter struct {
	Burst

	// ParticlesPerFrame is the number of particles spawned every target frame interval.
	ParticlesPerFrame float64

	spawnAcc float64

	previous            gm.Vec
	previousInitialized bool
}

// Update moves the emitter and spawns the particles due this frame.
func (e *Emitter) Update(app *pulse.App, pos gm.Vec) int {
	if !e.previousInitialized {
		e.previous = pos
		e.previousInitialized = true
	}

	previous := e.previous
	e.previous = pos

	e.spawnAcc += e.ParticlesPerFrame * app.Delta()

	var spawned int

	for e.spawnAcc >= 1 {
		e.spawnAcc -= 1

		at := previous.Add(pos.Sub(previous).Mul(gm.RandomIn(0, 1)))
		app.Instantiate(e.particle(at))

		spawned += 1
	}

	return spawned
}

// Reset forgets the previous position, e.g. after the emitter jumped.
func (e *Emitter) Reset() {
	e.previousInitialized = false
	e.spawnAcc = 0
}

func jitter(base, jitter float64) float64 {
	return base + gm.RandomIn(-jitter, jitter)
}
