package stats

import "sync/atomic"

// Counters are monotonic; each qualifying event increments exactly one field.
type Counters struct {
	TotalJoins       atomic.Int64
	UsersVerified    atomic.Int64
	UsersKicked      atomic.Int64
	SpamBlocked      atomic.Int64
	LinksBlocked     atomic.Int64
	SuspiciousKicked atomic.Int64
}

type Snapshot struct {
	TotalJoins       int64
	UsersVerified    int64
	UsersKicked      int64
	SpamBlocked      int64
	LinksBlocked     int64
	SuspiciousKicked int64
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		TotalJoins:       c.TotalJoins.Load(),
		UsersVerified:    c.UsersVerified.Load(),
		UsersKicked:      c.UsersKicked.Load(),
		SpamBlocked:      c.SpamBlocked.Load(),
		LinksBlocked:     c.LinksBlocked.Load(),
		SuspiciousKicked: c.SuspiciousKicked.Load(),
	}
}

// ProtectionActions sums every removal the bot performed. Used by /report.
func (s Snapshot) ProtectionActions() int64 {
	return s.UsersKicked + s.SpamBlocked + s.LinksBlocked + s.SuspiciousKicked
}

// SuccessRate is verified joins as a percentage of total joins.
func (s Snapshot) SuccessRate() float64 {
	total := s.TotalJoins
	if total < 1 {
		total = 1
	}
	return float64(s.UsersVerified) / float64(total) * 100
}

// ProtectionRate is protection actions as a percentage of total joins.
func (s Snapshot) ProtectionRate() float64 {
	total := s.TotalJoins
	if total < 1 {
		total = 1
	}
	return float64(s.ProtectionActions()) / float64(total) * 100
}
