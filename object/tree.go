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

package object

import (
	"strconv"

	"dirpx.dev/fsck/fsckerr"
)

// TreeEntry is one decoded record from a tree object's buffer: an octal
// mode, an entry name, and the 20-byte object id it points at.
type TreeEntry struct {
	Mode FileMode
	Name string
	OID  OID

	// modeZeroPadded records whether this entry's on-disk mode text
	// carried superfluous leading zero digits (e.g. "0100644" instead of
	// "100644"). DecodeTreeEntries sets it; validate.Tree reports it.
	ModeZeroPadded bool
}

// DecodeTreeEntries parses a raw tree object buffer into its entries,
// preserving their on-disk order. Each record has the form
// "<mode> <name>\0<20-byte-oid>". DecodeTreeEntries performs no ordering
// or uniqueness checks; that is validate.Tree's job. It does reject
// entries whose mode text is not a valid octal number or whose record is
// truncated, since those are un-parseable rather than merely
// non-canonical.
func DecodeTreeEntries(buf []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	i := 0
	for i < len(buf) {
		spaceIdx := -1
		for j := i; j < len(buf); j++ {
			if buf[j] == ' ' {
				spaceIdx = j
				break
			}
			if buf[j] == 0 {
				return nil, &fsckerr.ParseError{Type: "Tree", Value: "mode not terminated by space"}
			}
		}
		if spaceIdx < 0 {
			return nil, &fsckerr.ParseError{Type: "Tree", Value: "truncated entry: missing mode separator"}
		}
		modeText := string(buf[i:spaceIdx])
		modeVal, err := strconv.ParseUint(modeText, 8, 32)
		if err != nil {
			return nil, &fsckerr.ParseError{Type: "Tree", Value: "bad mode digits: " + modeText}
		}

		nulIdx := -1
		for j := spaceIdx + 1; j < len(buf); j++ {
			if buf[j] == 0 {
				nulIdx = j
				break
			}
		}
		if nulIdx < 0 {
			return nil, &fsckerr.ParseError{Type: "Tree", Value: "truncated entry: missing name terminator"}
		}
		name := string(buf[spaceIdx+1 : nulIdx])

		if nulIdx+1+ByteSize > len(buf) {
			return nil, &fsckerr.ParseError{Type: "Tree", Value: "truncated entry: short object id"}
		}
		oid, err := ParseOIDHex(buf[nulIdx+1 : nulIdx+1+ByteSize])
		if err != nil {
			return nil, err
		}

		entries = append(entries, TreeEntry{
			Mode:           FileMode(modeVal),
			Name:           name,
			OID:            oid,
			ModeZeroPadded: modeText != strconv.FormatUint(modeVal, 8),
		})
		i = nulIdx + 1 + ByteSize
	}
	return entries, nil
}
