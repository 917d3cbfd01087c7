// Package profile defines the user profile domain model.
package profile

// UserProfile represents the dashboard user, including level progression and
// aggregate point totals. TotalPoints is always >= RedeemedPoints.
type UserProfile struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	Level           int    `json:"level"`            // >= 1
	XP              int    `json:"xp"`               // >= 0
	ProgressPercent int    `json:"progress_percent"` // 0-100, toward next level
	XPToNext        int    `json:"xp_to_next"`
	TotalPoints     int    `json:"total_points"`
	RedeemedPoints  int    `json:"redeemed_points"`
	MonthlyPoints   int    `json:"monthly_points"`
}

// Stats is the point summary derived from a profile on fetch. It can be
// overridden locally without a backend round trip.
type Stats struct {
	TotalPoints     int `json:"total_points"`
	RedeemedPoints  int `json:"redeemed_points"`
	MonthlyPoints   int `json:"monthly_points"`
	ProgressPercent int `json:"progress_percent"`
}

// StatsPatch carries a partial stats update. Nil fields are left unchanged.
type StatsPatch struct {
	TotalPoints     *int
	RedeemedPoints  *int
	MonthlyPoints   *int
	ProgressPercent *int
}

// ProgressDelta is the slice of profile fields recomputed by an XP update.
type ProgressDelta struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	ProgressPercent int `json:"progress_percent"`
	XPToNext        int `json:"xp_to_next"`
}

// XPPerLevel is the experience span of a single level.
const XPPerLevel = 500

// StatsOf derives the point summary snapshot from a profile.
func StatsOf(p UserProfile) Stats {
	return Stats{
		TotalPoints:     p.TotalPoints,
		RedeemedPoints:  p.RedeemedPoints,
		MonthlyPoints:   p.MonthlyPoints,
		ProgressPercent: p.ProgressPercent,
	}
}

// Apply merges the patch into the stats, leaving nil fields untouched.
func (p StatsPatch) Apply(s Stats) Stats {
	if p.TotalPoints != nil {
		s.TotalPoints = *p.TotalPoints
	}
	if p.RedeemedPoints != nil {
		s.RedeemedPoints = *p.RedeemedPoints
	}
	if p.MonthlyPoints != nil {
		s.MonthlyPoints = *p.MonthlyPoints
	}
	if p.ProgressPercent != nil {
		s.ProgressPercent = *p.ProgressPercent
	}
	return s
}

// Merge applies the delta to the profile in place.
func (d ProgressDelta) Merge(p *UserProfile) {
	p.XP = d.XP
	p.Level = d.Level
	p.ProgressPercent = d.ProgressPercent
	p.XPToNext = d.XPToNext
}
