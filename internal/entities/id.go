package entities

import (
	"encoding/json"
	"strconv"
)

// UnsetID is what Int64 reports for a record that has never been saved.
const UnsetID int64 = -1

// ID is the identity of a stored record. The zero value is unpersisted;
// a persisted ID always carries a positive store-generated value.
type ID struct {
	value int64
}

// PersistedID wraps a store-generated key. Non-positive keys yield an
// unpersisted ID.
func PersistedID(v int64) ID {
	if v <= 0 {
		return ID{}
	}
	return ID{value: v}
}

// Get returns the stored key and whether the record has been persisted.
func (id ID) Get() (int64, bool) {
	return id.value, id.value > 0
}

func (id ID) IsPersisted() bool {
	return id.value > 0
}

// Int64 returns the stored key, or UnsetID for an unpersisted record.
func (id ID) Int64() int64 {
	if !id.IsPersisted() {
		return UnsetID
	}
	return id.value
}

func (id ID) String() string {
	if !id.IsPersisted() {
		return "unpersisted"
	}
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes a persisted ID as a number and an unpersisted one as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if !id.IsPersisted() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(id.value, 10)), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var v *int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*id = ID{}
		return nil
	}
	*id = PersistedID(*v)
	return nil
}
