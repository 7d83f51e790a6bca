package burger

// Cue is a discrete audio event emitted by the simulation.
// The engine only records cues; a sound collaborator decides how to play them.
type Cue string

// Audio cues
const (
	CueJump       Cue = "jump"
	CueEat        Cue = "eat"
	CueRoundStart Cue = "round_start"
	CueRoundEnd   Cue = "round_end"
	CuePurchase   Cue = "purchase"
	CueShoot      Cue = "shoot"
	CueHit        Cue = "hit"
	CuePowerup    Cue = "powerup"
)

// AllCues lists every cue in a stable order.
func AllCues() []Cue {
	return []Cue{CueJump, CueEat, CueRoundStart, CueRoundEnd, CuePurchase, CueShoot, CueHit, CuePowerup}
}
