package domain

// Outcome is the result category of a single swing.
type Outcome string

const (
	OutcomeMiss   Outcome = "miss"
	OutcomeFoul   Outcome = "foul"
	OutcomeInPlay Outcome = "in_play"
)

// BattedBallType classifies a ball in play by trajectory. It is taken from
// the vendor column when supplied and derived from launch angle otherwise.
type BattedBallType string

const (
	BattedBallGround  BattedBallType = "ground_ball"
	BattedBallLine    BattedBallType = "line_drive"
	BattedBallFly     BattedBallType = "fly_ball"
	BattedBallUnknown BattedBallType = "unknown"
)

// SwingRecord is one normalized batted-ball event from a launch-monitor
// export. Optional measurements are nil when the vendor did not report them
// or the value failed to parse.
type SwingRecord struct {
	ExitVelo    *float64       `json:"exit_velo,omitempty"`    // mph
	LaunchAngle *float64       `json:"launch_angle,omitempty"` // degrees
	Distance    *float64       `json:"distance,omitempty"`     // feet
	Outcome     Outcome        `json:"outcome"`
	BattedBall  BattedBallType `json:"batted_ball,omitempty"`
}

// InPlay reports whether the swing produced a ball in play.
func (s SwingRecord) InPlay() bool {
	return s.Outcome == OutcomeInPlay
}

// IsValid checks the outcome/measurement consistency invariant: a miss never
// carries exit velocity or launch angle.
func (s SwingRecord) IsValid() bool {
	if s.Outcome == OutcomeMiss {
		return s.ExitVelo == nil && s.LaunchAngle == nil
	}
	return s.Outcome == OutcomeFoul || s.Outcome == OutcomeInPlay
}
