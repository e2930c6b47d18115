/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package policy

import (
	"bufio"
	"io"
	"os"
	"sort"

	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/object"
	"dirpx.dev/rxmerr"
	"github.com/cockroachdb/errors"
)

// skipLineLen is the exact length of one skip-list record: 40 hex
// characters plus a trailing LF.
const skipLineLen = object.HexSize + 1

// SkipSet holds the set of object ids that report should never flag,
// regardless of their effective severity. It is built by streaming a
// skip-list file (or files) and tracks, across every append, whether the
// accumulated ids remain in non-decreasing order so that Contains can use
// binary search instead of a linear scan.
type SkipSet struct {
	ids    []object.OID
	sorted bool
}

// NewSkipSet returns an empty, already-sorted SkipSet ready to accept ids
// via Add or LoadFile.
func NewSkipSet() *SkipSet {
	return &SkipSet{sorted: true}
}

// LoadSkipSet streams path and appends every id it contains into a new
// SkipSet. Each line MUST be exactly skipLineLen bytes: 40 lowercase hex
// characters followed by LF. A malformed line is a fatal configuration
// error; LoadSkipSet collects every malformed line it encounters before
// returning so a caller sees the whole picture in one pass.
func LoadSkipSet(path string) (*SkipSet, error) {
	s := NewSkipSet()
	if err := s.loadFile(path); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFile streams path and appends its ids into the receiver, preserving
// sortedness tracking across the append (see Add).
func (s *SkipSet) LoadFile(path string) error {
	return s.loadFile(path)
}

func (s *SkipSet) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "fsck: opening skip-list %s", path)
	}
	defer f.Close()

	c := rxmerr.NewCollector()
	r := bufio.NewReaderSize(f, 64*1024)
	lineNo := 0
	for {
		lineNo++
		line, err := readExactLine(r, skipLineLen)
		if err == io.EOF {
			break
		}
		if err != nil {
			c.Append(&fsckerr.ConfigError{
				Field:  "skiplist",
				Value:  path,
				Reason: errors.Wrapf(err, "line %d", lineNo).Error(),
			})
			break
		}
		oid, err := object.ParseOID(string(line[:object.HexSize]))
		if err == nil && string(oid) != string(line[:object.HexSize]) {
			err = errors.Newf("not lowercase hex")
		}
		if err != nil {
			c.Append(&fsckerr.ConfigError{
				Field:  "skiplist",
				Value:  path,
				Reason: errors.Wrapf(err, "line %d: invalid object id", lineNo).Error(),
			})
			continue
		}
		s.Add(oid)
	}
	return c.Err()
}

// readExactLine reads exactly n bytes from r, returning io.EOF only when
// zero bytes were read before the end of input. A partial final line (any
// count other than 0 or n) is a malformed-line error.
func readExactLine(r *bufio.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if err == io.EOF && read == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Newf("short or malformed record (%d of %d bytes)", read, n)
	}
	if buf[n-1] != '\n' {
		return nil, errors.Newf("record not terminated by newline")
	}
	return buf, nil
}

// Add inserts id into the set. Sortedness is tracked cumulatively: the set
// stays marked sorted only while every id added so far is >= the previous
// one.
func (s *SkipSet) Add(id object.OID) {
	if s.sorted && len(s.ids) > 0 && id < s.ids[len(s.ids)-1] {
		s.sorted = false
	}
	s.ids = append(s.ids, id)
}

// Contains reports whether id is in the set. If the set is not known to be
// sorted, Contains sorts it in place first (a one-time cost amortized
// across subsequent queries) and then binary searches.
func (s *SkipSet) Contains(id object.OID) bool {
	if len(s.ids) == 0 {
		return false
	}
	if !s.sorted {
		sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })
		s.sorted = true
	}
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// Len reports the number of ids currently in the set, including
// duplicates added via repeated Add calls.
func (s *SkipSet) Len() int { return len(s.ids) }
