package reports

import (
	"fmt"
	"sort"

	"github.com/mhollis/trackledger/internal/shared"
)

// TrackDuration is one result row of [Engine.AboveAverageDurationTracks].
type TrackDuration struct {
	TrackID    int
	Name       string
	DurationMS int
}

// AboveAverageDurationTracks returns the tracks whose duration strictly
// exceeds the mean duration over all tracks, ordered by duration
// descending; equal durations keep input order. The mean is computed once
// for the whole call, not per row.
func (e *Engine) AboveAverageDurationTracks() ([]TrackDuration, error) {
	tracks := e.snap.Tracks()
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: tracks", shared.ErrMissingData)
	}

	var total int64
	for _, t := range tracks {
		total += int64(t.DurationMS)
	}
	mean := float64(total) / float64(len(tracks))

	var rows []TrackDuration
	for _, t := range tracks {
		if float64(t.DurationMS) > mean {
			rows = append(rows, TrackDuration{TrackID: t.ID, Name: t.Name, DurationMS: t.DurationMS})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DurationMS > rows[j].DurationMS
	})
	return rows, nil
}

func aboveAverageDurationTable(e *Engine, _ Params) (*Table, error) {
	rows, err := e.AboveAverageDurationTracks()
	if err != nil {
		return nil, err
	}

	table := &Table{
		Title:   "Tracks longer than average",
		Columns: []string{"Track", "Duration"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Name, shared.FormatDurationMS(r.DurationMS)})
	}
	return table, nil
}
