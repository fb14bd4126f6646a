package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// stateRepo implements StateRepo over the state_documents table.
type stateRepo struct {
	drv *entsql.Driver
}

func (r *stateRepo) Get(ctx context.Context, key string, dst any) (bool, error) {
	b := builder()
	t := b.Table(tableState)
	query, args := b.Select(t.C("value")).
		From(t).
		Where(entsql.EQ(t.C("key"), key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return false, fmt.Errorf("query %s: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return false, fmt.Errorf("query %s: %w", key, err)
		}
		return false, nil
	}

	var raw string
	if err := rows.Scan(&raw); err != nil {
		return false, fmt.Errorf("scan %s: %w", key, err)
	}
	// dst is written only when the whole document decodes.
	out := reflect.ValueOf(dst)
	if out.Kind() != reflect.Pointer || out.IsNil() {
		return true, fmt.Errorf("decode %s: need a non-nil pointer, got %T", key, dst)
	}
	fresh := reflect.New(out.Elem().Type())
	if err := json.Unmarshal([]byte(raw), fresh.Interface()); err != nil {
		return true, fmt.Errorf("%w %q: %v", ErrCorrupt, key, err)
	}
	out.Elem().Set(fresh.Elem())
	return true, nil
}

func (r *stateRepo) Put(ctx context.Context, key string, v any) error {
	return r.PutMany(ctx, map[string]any{key: v})
}

func (r *stateRepo) PutMany(ctx context.Context, docs map[string]any) error {
	if len(docs) == 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	stmts := make([]struct {
		query string
		args  []any
	}, 0, len(docs))
	for key, v := range docs {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		query, args := builder().
			Insert(tableState).
			Columns("key", "value", "updated_at").
			Values(key, string(data), now).
			OnConflict(
				entsql.ConflictColumns("key"),
				entsql.ResolveWithNewValues(),
			).
			Query()
		stmts = append(stmts, struct {
			query string
			args  []any
		}{query, args})
	}

	return r.withTx(ctx, func(tx dialect.Tx) error {
		for _, st := range stmts {
			if err := tx.Exec(ctx, st.query, st.args, nil); err != nil {
				return fmt.Errorf("upsert state: %w", err)
			}
		}
		return nil
	})
}

func (r *stateRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	query, qargs := builder().
		Delete(tableState).
		Where(entsql.In("key", args...)).
		Query()
	if err := r.drv.Exec(ctx, query, qargs, nil); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

func (r *stateRepo) withTx(ctx context.Context, fn func(tx dialect.Tx) error) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
