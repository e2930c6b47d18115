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
	"math"
	"strconv"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
)

// DateOverflows reports whether value is too large to represent as the
// signed wide integer type commit timestamps are stored as. This module
// treats overflow semantics as an external collaborator; the default
// checks against the signed 64-bit bound, which matches every modern
// platform. Host applications targeting a narrower timestamp type MAY
// replace this.
var DateOverflows = func(value uint64) bool {
	return value > math.MaxInt64
}

// byteAt returns buf[i], or 0 if i is out of range. Treating exhaustion
// as a NUL byte lets the state machine below handle a line that runs
// off the end of its buffer with the same comparisons it uses
// everywhere else, without risking an out-of-range panic.
func byteAt(buf []byte, i int) byte {
	if i < 0 || i >= len(buf) {
		return 0
	}
	return buf[i]
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// Identity validates one author/committer/tagger line at the front of
// buf against the grammar "<name> SP <email-in-angle-brackets> SP
// <unixtime> SP <tz>". It is a sequential state machine: the first
// failure reports immediately and wins. Identity always advances past
// the line before returning, whether or not the line validated; the
// returned rest begins at the character following the line's LF (or is
// nil if buf contained no LF at all).
func Identity(opts *policy.Options, id object.OID, buf []byte) (rest []byte, result int) {
	nl := bytes.IndexByte(buf, '\n')
	var line []byte
	if nl < 0 {
		line = buf
		rest = nil
	} else {
		line = buf[:nl+1]
		rest = buf[nl+1:]
	}

	if len(line) > 0 && line[0] == '<' {
		return rest, report.Report(opts, id, catalog.MissingNameBeforeEmail, "invalid author/committer line - missing space before email")
	}

	p := 0
	for p < len(line) && line[p] != '<' && line[p] != '>' && line[p] != '\n' {
		p++
	}
	if byteAt(line, p) == '>' {
		return rest, report.Report(opts, id, catalog.BadName, "invalid author/committer line - bad name")
	}
	if byteAt(line, p) != '<' {
		return rest, report.Report(opts, id, catalog.MissingEmail, "invalid author/committer line - missing email")
	}
	if p == 0 || line[p-1] != ' ' {
		return rest, report.Report(opts, id, catalog.MissingSpaceBeforeEmail, "invalid author/committer line - missing space before email")
	}
	p++ // past '<'
	for p < len(line) && line[p] != '<' && line[p] != '>' && line[p] != '\n' {
		p++
	}
	if byteAt(line, p) != '>' {
		return rest, report.Report(opts, id, catalog.BadEmail, "invalid author/committer line - bad email")
	}
	p++ // past '>'
	if byteAt(line, p) != ' ' {
		return rest, report.Report(opts, id, catalog.MissingSpaceBeforeDate, "invalid author/committer line - missing space before date")
	}
	p++

	if byteAt(line, p) == '0' && byteAt(line, p+1) != ' ' {
		return rest, report.Report(opts, id, catalog.ZeroPaddedDate, "invalid author/committer line - zero-padded date")
	}

	dateStart := p
	for p < len(line) && isDigitByte(line[p]) {
		p++
	}
	dateValue, _ := strconv.ParseUint(string(line[dateStart:p]), 10, 64)
	if DateOverflows(dateValue) {
		return rest, report.Report(opts, id, catalog.BadDateOverflow, "invalid author/committer line - date causes integer overflow")
	}
	if p == dateStart || byteAt(line, p) != ' ' {
		return rest, report.Report(opts, id, catalog.BadDate, "invalid author/committer line - bad date")
	}
	p++ // past space

	if byteAt(line, p) != '+' && byteAt(line, p) != '-' {
		return rest, report.Report(opts, id, catalog.BadTimezone, "invalid author/committer line - bad time zone")
	}
	for i := 1; i <= 4; i++ {
		if !isDigitByte(byteAt(line, p+i)) {
			return rest, report.Report(opts, id, catalog.BadTimezone, "invalid author/committer line - bad time zone")
		}
	}
	if byteAt(line, p+5) != '\n' {
		return rest, report.Report(opts, id, catalog.BadTimezone, "invalid author/committer line - bad time zone")
	}

	return rest, 0
}
