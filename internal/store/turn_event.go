package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO turn_events
		(sequence, timestamp, language, input_kind, outcome, response_type,
		 disease_label, grounded, latency_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC(), data.Language, data.InputKind, data.Outcome,
		data.ResponseType, data.DiseaseLabel, data.Grounded, data.LatencyMs,
		data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTurns(ctx context.Context, opts QueryOpts) ([]TurnEvent, error) {
	q := `SELECT id, sequence, timestamp, language, input_kind, outcome, response_type,
		disease_label, grounded, latency_ms, error_message FROM turn_events`
	var args []any
	if opts.Outcome != "" {
		q += " WHERE outcome = ?"
		args = append(args, opts.Outcome)
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}
	defer rows.Close()

	var events []TurnEvent
	for rows.Next() {
		var e TurnEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp, &e.Language, &e.InputKind,
			&e.Outcome, &e.ResponseType, &e.DiseaseLabel, &e.Grounded, &e.LatencyMs,
			&e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan turn event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turn events: %w", err)
	}
	return events, nil
}
