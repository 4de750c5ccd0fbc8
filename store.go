package circlemode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// key holding the last id handed out by Append
var sequenceKey = []byte("S")

// FeatureStore - leveldb backed store of finished circles, each id maps to
// its GeoJSON feature and its compact record
type FeatureStore struct {
	db   *leveldb.DB
	sync bool
}

// OpenFeatureStore - open or create the store at path
func OpenFeatureStore(path string, sync bool) (*FeatureStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &FeatureStore{db: db, sync: sync}, nil
}

// prefix the key with 'C' for features and 'R' for records
func featureKey(id int64) []byte {
	return []byte("C" + strconv.FormatInt(id, 10))
}

func recordKey(id int64) []byte {
	return []byte("R" + strconv.FormatInt(id, 10))
}

// LastID - the last id handed out by Append, zero for an empty store
func (s *FeatureStore) LastID() (int64, error) {
	data, err := s.db.Get(sequenceKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	if len(data) != 8 {
		return 0, fmt.Errorf("read sequence: %d bytes", len(data))
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}

// Append stores the result under the next id and returns that id.
func (s *FeatureStore) Append(result *CircleResult) (int64, error) {
	last, err := s.LastID()
	if err != nil {
		return 0, err
	}
	id := last + 1

	batch := new(leveldb.Batch)
	if err := queueResult(batch, id, result); err != nil {
		return 0, err
	}

	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, uint64(id))
	batch.Put(sequenceKey, seq)

	if err := s.flush(batch); err != nil {
		return 0, err
	}
	return id, nil
}

// Put stores the result under id, replacing anything stored there.
func (s *FeatureStore) Put(id int64, result *CircleResult) error {
	batch := new(leveldb.Batch)
	if err := queueResult(batch, id, result); err != nil {
		return err
	}
	return s.flush(batch)
}

func queueResult(batch *leveldb.Batch, id int64, result *CircleResult) error {
	data, err := result.Feature.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode feature %d: %w", id, err)
	}
	batch.Put(featureKey(id), data)
	batch.Put(recordKey(id), EncodeRecord(result.Record()))
	return nil
}

func (s *FeatureStore) flush(batch *leveldb.Batch) error {
	var writeOpts = &opt.WriteOptions{
		NoWriteMerge: true,
		Sync:         s.sync,
	}
	if err := s.db.Write(batch, writeOpts); err != nil {
		return fmt.Errorf("write batch: %w", err)
	}
	return nil
}

// Feature - look up the GeoJSON feature stored under id
func (s *FeatureStore) Feature(id int64) (*geojson.Feature, error) {
	data, err := s.db.Get(featureKey(id), nil)
	if err != nil {
		return nil, fmt.Errorf("feature %d: %w", id, err)
	}

	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature %d: %w", id, err)
	}
	return feature, nil
}

// Record - look up the compact record stored under id
func (s *FeatureStore) Record(id int64) (CircleRecord, error) {
	data, err := s.db.Get(recordKey(id), nil)
	if err != nil {
		return CircleRecord{}, fmt.Errorf("record %d: %w", id, err)
	}
	return DecodeRecord(data)
}

// Close - release the underlying database
func (s *FeatureStore) Close() error {
	return s.db.Close()
}
