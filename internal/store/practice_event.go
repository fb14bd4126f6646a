package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var practiceColumns = []string{
	"id", "sequence", "timestamp", "run_id", "day", "mode",
	"xp", "points", "missed_count", "duration_ms", "accepted",
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	return r.appendEvent(ctx, tablePractice,
		[]string{
			"timestamp", "run_id", "day", "mode",
			"xp", "points", "missed_count", "duration_ms", "accepted",
		},
		[]any{
			time.Now().UnixMilli(), data.RunID, data.Day, data.Mode,
			data.XP, data.Points, data.MissedCount, data.DurationMs, data.Accepted,
		},
	)
}

func (r *eventRepo) QueryPracticeEvents(ctx context.Context, opts QueryOpts) ([]PracticeEvent, error) {
	b := builder()
	t := b.Table(tablePractice)
	sel := b.Select(qualify(t, practiceColumns)...).From(t)
	if opts.After > 0 {
		sel.Where(entsql.GT(t.C("sequence"), opts.After))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(t.C("timestamp"), opts.From.UnixMilli()))
	}
	if opts.Mode != "" {
		sel.Where(entsql.EQ(t.C("mode"), opts.Mode))
	}
	sel.OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query practice events: %w", err)
	}
	defer rows.Close()

	var events []PracticeEvent
	for rows.Next() {
		var (
			e  PracticeEvent
			ts int64
		)
		err := rows.Scan(
			&e.ID, &e.Sequence, &ts, &e.RunID, &e.Day, &e.Mode,
			&e.XP, &e.Points, &e.MissedCount, &e.DurationMs, &e.Accepted,
		)
		if err != nil {
			return nil, fmt.Errorf("scan practice event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate practice events: %w", err)
	}
	return events, nil
}
