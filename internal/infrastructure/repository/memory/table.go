package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-live/internal/platform/txscope"
)

// table is an in-process relation with an auto-increment id and one unique
// natural key. getOrCreate holds the write lock, so concurrent callers with the
// same key all observe a single row.
type table[K comparable, V any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]V
	byKey  map[K]int64
	setID  func(*V, int64)
}

func newTable[K comparable, V any](setID func(*V, int64)) *table[K, V] {
	return &table[K, V]{
		rows:  make(map[int64]V),
		byKey: make(map[K]int64),
		setID: setID,
	}
}

func (t *table[K, V]) get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return t.rows[id], true
}

func (t *table[K, V]) getOrCreate(key K, value V) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.byKey[key]; ok {
		return t.rows[id], false
	}
	t.nextID++
	t.setID(&value, t.nextID)
	t.rows[t.nextID] = value
	t.byKey[key] = t.nextID
	return value, true
}

// update applies fn to the row with id. It reports whether the row exists.
func (t *table[K, V]) update(id int64, fn func(*V)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return false
	}
	fn(&row)
	t.rows[id] = row
	return true
}

// filter returns matching rows ordered by id.
func (t *table[K, V]) filter(match func(V) bool) []V {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if match(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]V, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// TxManager runs fn directly. The in-process store has no rollback; every
// write it offers is create-if-absent, so a partially applied fn is safe to retry.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(txscope.Enter(ctx))
}
