package badger

import (
	"encoding/binary"

	"github.com/poiesic/certsearch/core"
)

// Key prefixes for different data types
const (
	recordPrefix   = "rec:"
	recordIDPrefix = "rid:"
	categoryPrefix = "cat:"
	recordPosSeq   = "seq:records"
)

// makeRecordKey generates the primary key for a record at a corpus position.
// Format: prefix:position, position in BigEndian so key order is corpus order.
func makeRecordKey(pos uint64) []byte {
	buf := make([]byte, len(recordPrefix)+8)
	offset := copy(buf, recordPrefix)
	binary.BigEndian.PutUint64(buf[offset:], pos)
	return buf
}

// makeRecordIDKey generates the id index key for a record id.
// Format: prefix:blake2b(id)
func makeRecordIDKey(id string) []byte {
	buf := make([]byte, len(recordIDPrefix)+8)
	offset := copy(buf, recordIDPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(id)))
	return buf
}

// makeCategoryKey generates the category index key for a record id.
func makeCategoryKey(id string) []byte {
	return []byte(categoryPrefix + id)
}
