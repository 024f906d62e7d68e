package model

type LeaderboardRow struct {
	AccountID string  `json:"accountId"`
	Score     float64 `json:"score"`
	Rank      int     `json:"rank"`
}

// Leaderboard is derived from the score ledger on every read, never stored.
// FriendsBoard mirrors GlobalBoard until a social graph exists.
type Leaderboard struct {
	WeekID       string           `json:"weekId"`
	GlobalBoard  []LeaderboardRow `json:"globalBoard"`
	FriendsBoard []LeaderboardRow `json:"friendsBoard"`
}

type AdminStats struct {
	IntentClicks   int64   `json:"intentClicks"`
	Accounts       int     `json:"accounts"`
	AvgReadiness   float64 `json:"avgReadiness"`
	ConversionRate float64 `json:"conversionRate"`
}
