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

package validate

import (
	"bytes"

	"dirpx.dev/fsck/object"
)

// cutPrefix reports whether buf begins with prefix, returning the bytes
// following it if so.
func cutPrefix(buf []byte, prefix string) ([]byte, bool) {
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return nil, false
	}
	return buf[len(prefix):], true
}

// hexLineLen is the length of a "<40-hex>\n" record.
const hexLineLen = object.HexSize + 1

// parseHexLine attempts to read a canonical "<40-hex>\n" record from the
// front of buf. It reports ok=false if fewer than hexLineLen bytes
// remain, the first HexSize bytes are not valid hex (either case is
// accepted; ParseOID lowercases), or byte HexSize is not LF.
//
// Callers at each "tree"/"parent"/"object" line advance their cursor by
// exactly 41 bytes regardless of whether the line actually validated;
// see advanceHexLine.
func parseHexLine(buf []byte) (object.OID, bool) {
	if len(buf) < hexLineLen || buf[object.HexSize] != '\n' {
		return "", false
	}
	oid, err := object.ParseOID(string(buf[:object.HexSize]))
	if err != nil {
		return "", false
	}
	return oid, true
}

// advanceHexLine advances past a "<40-hex>\n" record, capping at the end
// of buf if it is shorter than that. The advance happens even on a
// malformed line, so a bad record costs exactly one record's worth of
// input, never a desynced cursor.
func advanceHexLine(buf []byte) []byte {
	if hexLineLen > len(buf) {
		return nil
	}
	return buf[hexLineLen:]
}
