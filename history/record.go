package history

import "fmt"

// Record is a single watched entry preserved in the local history.
type Record struct {
	ItemID            string  `json:"item_id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	SeriesName        string  `json:"series_name"`
	Index             int     `json:"index"`
	WatchedPercentage float64 `json:"watched_percentage"`
}

func (r *Record) String() string {
	if r.SeriesName != "" {
		return fmt.Sprintf("%s : %02d - %s", r.SeriesName, r.Index, r.Name)
	}
	return r.Name
}
