package domain

// SessionStats is the aggregate over one upload batch of launch-monitor
// swings. It is recomputed wholesale on every aggregation call, never
// updated incrementally.
//
// Rate and average fields are pointers so an empty session serializes with
// the fields absent rather than as NaN or a misleading zero.
type SessionStats struct {
	Brand Brand `json:"brand"`

	TotalSwings int `json:"total_swings"`
	Misses      int `json:"misses"`
	Fouls       int `json:"fouls"`
	BallsInPlay int `json:"balls_in_play"`
	DroppedRows int `json:"dropped_rows"`

	ContactRate *float64 `json:"contact_rate,omitempty"` // 0..1 over all swings

	// Velocity statistics, computed only over balls in play.
	AvgExitVelo    *float64 `json:"avg_exit_velo,omitempty"`
	MedianExitVelo *float64 `json:"median_exit_velo,omitempty"`
	MaxExitVelo    *float64 `json:"max_exit_velo,omitempty"`
	MinExitVelo    *float64 `json:"min_exit_velo,omitempty"`
	ExitVeloStdDev *float64 `json:"exit_velo_std_dev,omitempty"`
	Count90Plus    int      `json:"count_90_plus"`
	Count95Plus    int      `json:"count_95_plus"`
	Count100Plus   int      `json:"count_100_plus"`

	// Launch-angle statistics over balls in play with a reported angle.
	AvgLaunchAngle     *float64 `json:"avg_launch_angle,omitempty"`
	OptimalWindowCount int      `json:"optimal_window_count"`
	GroundBalls        int      `json:"ground_balls"`
	LineDrives         int      `json:"line_drives"`
	FlyBalls           int      `json:"fly_balls"`

	AvgDistance *float64 `json:"avg_distance,omitempty"`
	MaxDistance *float64 `json:"max_distance,omitempty"`

	QualityHits int `json:"quality_hits"`
	Barrels     int `json:"barrels"`

	// BallScore is the 0-100 points-based session score; PointsPerSwing is
	// the raw points average it was mapped from. TierCounts and TierPoints
	// break the score down by quality tier.
	BallScore      *float64           `json:"ball_score,omitempty"`
	PointsPerSwing *float64           `json:"points_per_swing,omitempty"`
	TierCounts     map[string]int     `json:"tier_counts,omitempty"`
	TierPoints     map[string]float64 `json:"tier_points,omitempty"`
}
