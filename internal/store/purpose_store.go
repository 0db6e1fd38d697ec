package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"secrettree/internal/domain"
)

// ErrPurposeConflict is returned when a path is rebound to a different purpose.
var ErrPurposeConflict = errors.New("path already bound to a different purpose")

var purposePrefix = []byte("purpose/")

// PurposeDB is a LevelDB-backed domain.PurposeRegistry. Writes are synced.
type PurposeDB struct {
	db  *leveldb.DB
	now func() time.Time
	mu  sync.Mutex // serialises Bind's lookup and write
}

// OpenPurposeDB opens or creates the registry directory at path.
func OpenPurposeDB(path string) (*PurposeDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open purpose registry %s", path)
	}
	return &PurposeDB{db: db, now: time.Now}, nil
}

func purposeKey(path string) []byte {
	return append(append([]byte{}, purposePrefix...), path...)
}

// Bind records purpose for path. Rebinding to the same purpose returns the
// original binding; a different purpose fails with ErrPurposeConflict.
func (p *PurposeDB) Bind(path string, purpose domain.Purpose) (domain.PurposeBinding, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok, err := p.Lookup(path)
	if err != nil {
		return domain.PurposeBinding{}, err
	}
	if ok {
		if existing.Purpose != purpose {
			return existing, errors.Wrapf(ErrPurposeConflict, "%s is %q, not %q", path, existing.Purpose, purpose)
		}
		return existing, nil
	}

	b := domain.PurposeBinding{Path: path, Purpose: purpose, CreatedAt: p.now().UTC()}
	v, err := json.Marshal(b)
	if err != nil {
		return domain.PurposeBinding{}, err
	}
	if err := p.db.Put(purposeKey(path), v, &opt.WriteOptions{Sync: true}); err != nil {
		return domain.PurposeBinding{}, errors.Wrap(err, "store purpose")
	}
	return b, nil
}

// Lookup returns the binding for path, if any.
func (p *PurposeDB) Lookup(path string) (domain.PurposeBinding, bool, error) {
	v, err := p.db.Get(purposeKey(path), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return domain.PurposeBinding{}, false, nil
	}
	if err != nil {
		return domain.PurposeBinding{}, false, errors.Wrap(err, "lookup purpose")
	}
	var b domain.PurposeBinding
	if err := json.Unmarshal(v, &b); err != nil {
		return domain.PurposeBinding{}, false, errors.Wrapf(err, "decode purpose for %s", path)
	}
	return b, true, nil
}

// List returns all bindings ordered by path.
func (p *PurposeDB) List() ([]domain.PurposeBinding, error) {
	it := p.db.NewIterator(util.BytesPrefix(purposePrefix), nil)
	defer it.Release()

	var out []domain.PurposeBinding
	for it.Next() {
		var b domain.PurposeBinding
		if err := json.Unmarshal(it.Value(), &b); err != nil {
			return nil, errors.Wrapf(err, "decode purpose %q", it.Key())
		}
		out = append(out, b)
	}
	return out, errors.Wrap(it.Error(), "iterate purposes")
}

// Close releases the database.
func (p *PurposeDB) Close() error { return p.db.Close() }

// Compile-time assertion that PurposeDB implements domain.PurposeRegistry.
var _ domain.PurposeRegistry = (*PurposeDB)(nil)
