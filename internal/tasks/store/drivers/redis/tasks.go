package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

// maxWatchRetries bounds optimistic retries when a watched task changes
// between read and write.
const maxWatchRetries = 5

type tasksRepo struct {
	client *redis.Client
	keys   keys
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	data, err := json.Marshal(toTaskDoc(t))
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, r.keys.task(t.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrAlreadyExists
	}

	return r.client.ZAdd(ctx, r.keys.ownerTasks(t.Owner), redis.Z{Score: 0, Member: t.ID}).Err()
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	ids, err := r.client.ZRange(ctx, r.keys.ownerTasks(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Task, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	taskKeys := make([]string, len(ids))
	for i, id := range ids {
		taskKeys[i] = r.keys.task(id)
	}

	values, err := r.client.MGet(ctx, taskKeys...).Result()
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a document (deleted concurrently).
			continue
		}
		var doc taskDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, err
		}
		if doc.Owner != owner {
			continue
		}
		out = append(out, doc.domain())
	}
	return out, nil
}

// MarkTaskCompleted rewrites the document under WATCH so a concurrent
// delete cannot be undone by the write. An already completed task is
// returned as stored.
func (r *tasksRepo) MarkTaskCompleted(ctx context.Context, id, owner string, at time.Time) (domain.Task, error) {
	key := r.keys.task(id)

	var result taskDoc
	txf := func(tx *redis.Tx) error {
		doc, err := r.load(ctx, tx, id, owner)
		if err != nil {
			return err
		}
		if doc.Completed {
			result = doc
			return nil
		}
		doc.Completed = true
		doc.UpdatedAt = at.UTC()

		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetXX(ctx, key, data, 0)
			return nil
		})
		if err == nil {
			result = doc
		}
		return err
	}

	if err := r.watch(ctx, txf, key); err != nil {
		return domain.Task{}, err
	}
	return result.domain(), nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id, owner string) error {
	key := r.keys.task(id)

	txf := func(tx *redis.Tx) error {
		if _, err := r.load(ctx, tx, id, owner); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.ZRem(ctx, r.keys.ownerTasks(owner), id)
			return nil
		})
		return err
	}

	return r.watch(ctx, txf, key)
}

func (r *tasksRepo) watch(ctx context.Context, txf func(*redis.Tx) error, key string) error {
	for range maxWatchRetries {
		err := r.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return redis.TxFailedErr
}

// load fetches a task and hides tasks owned by someone else.
func (r *tasksRepo) load(ctx context.Context, tx *redis.Tx, id, owner string) (taskDoc, error) {
	data, err := tx.Get(ctx, r.keys.task(id)).Bytes()
	if err != nil {
		return taskDoc{}, mapNil(err)
	}

	var doc taskDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return taskDoc{}, err
	}
	if doc.Owner != owner {
		return taskDoc{}, store.ErrNotFound
	}
	return doc, nil
}
