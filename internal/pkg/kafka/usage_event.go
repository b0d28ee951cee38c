package kafka

import "time"

// UsageEvent is emitted after every successfully completed chat exchange.
// The consumer aggregates these into the daily metrics counters.
type UsageEvent struct {
	UserID    uint64    `json:"user_id"`
	AgentID   string    `json:"agent_id"`
	Messages  int64     `json:"messages"`
	Tokens    int64     `json:"tokens"`
	DemoMode  bool      `json:"demo_mode"`
	Timestamp time.Time `json:"timestamp"`
}
