package vehicle

// NumCheckpoints is the number of gates on every track, ids 0 to 31.
const NumCheckpoints = 32

// LapFlag reports a lap or checkpoint transition for one tick.
type LapFlag int

const (
	LapNone LapFlag = iota
	LapComplete
	LapCanceled
	CheckpointMissed
	CheckpointRecovered
)

func (f LapFlag) String() string {
	switch f {
	case LapNone:
		return "none"
	case LapComplete:
		return "lap complete"
	case LapCanceled:
		return "lap canceled"
	case CheckpointMissed:
		return "checkpoint missed"
	case CheckpointRecovered:
		return "checkpoint recovered"
	}
	return "unknown"
}

// Progress tracks the checkpoints a car validated on the current lap.
type Progress struct {
	last    int
	current int
	laps    int
	flag    LapFlag

	// missed stays set until the next expected checkpoint is validated, so a
	// recovery is still detected after the Missed flag was reported.
	missed bool
}

// Reset clears every counter, including the lap count.
func (p *Progress) Reset() {
	*p = Progress{}
}

// Last is the highest checkpoint validated in order on this lap.
func (p *Progress) Last() int { return p.last }

// Current is the checkpoint under the car on the last update.
func (p *Progress) Current() int { return p.current }

// Laps is the number of completed laps.
func (p *Progress) Laps() int { return p.laps }

// TakeFlag returns the pending transition and resets it to LapNone.
func (p *Progress) TakeFlag() LapFlag {
	f := p.flag
	p.flag = LapNone
	return f
}

// Missed reports whether a checkpoint was skipped and not yet recovered.
func (p *Progress) Missed() bool { return p.missed }

// Update feeds the checkpoint under the car. startLine tells whether the cell
// is the painted start gate rather than plain road, which also decodes as
// checkpoint 0.
func (p *Progress) Update(checkpoint int, startLine bool) {
	switch {
	case checkpoint == p.last+1:
		if p.missed {
			p.missed = false
			p.flag = CheckpointRecovered
		}
		p.last++
	case checkpoint > p.last+1 && p.last != 0:
		if !p.missed {
			p.missed = true
			p.flag = CheckpointMissed
		}
	}

	if checkpoint == 0 && p.last == NumCheckpoints-1 {
		p.last = 0
		p.laps++
		p.missed = false
		p.flag = LapComplete
	}

	// a lap with an open miss carries on until the skipped gate is driven
	if checkpoint == 0 && startLine && p.last > 0 && p.last != NumCheckpoints-1 && !p.missed {
		p.last = 0
		p.missed = false
		p.flag = LapCanceled
	}

	p.current = checkpoint
}
