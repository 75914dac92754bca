package models

// HomeStatsKey is the constant key of the single home_stats document. A
// unique index on this field guards the get-or-create against concurrent
// first reads.
const HomeStatsKey = "home_stats"

// HomeStats is the singleton counters block on the home page. At most one
// document exists; the first read materializes it with defaults.
type HomeStats struct {
	Meta       `bson:",inline"`
	Key        string `bson:"key" json:"-"`
	Students   int    `bson:"students" json:"students"`
	Teachers   int    `bson:"teachers" json:"teachers"`
	Classrooms int    `bson:"classrooms" json:"classrooms"`
	Awards     int    `bson:"awards" json:"awards"`
	Years      int    `bson:"years" json:"years"`
}

// DefaultHomeStats returns the document materialized on first read.
func DefaultHomeStats() HomeStats {
	return HomeStats{Key: HomeStatsKey}
}
