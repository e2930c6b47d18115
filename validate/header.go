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

// Package validate implements the format validators: header
// well-formedness, identity-line grammar, and the per-type grammar
// checks for trees, commits, and tags. Every check here reports through
// package report, which applies policy before dispatching to the host
// sink.
package validate

import (
	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
)

// Headers scans buf, the header block of a commit or tag, for two
// failure modes that must be ruled out before any field-by-field
// grammar check runs: a NUL byte appearing before the header/body
// separator, and a missing separator entirely.
//
// A blank line (LF LF) terminates the header normally. Lacking one, a
// buffer whose final byte is LF is still accepted: the last header line
// is still properly terminated even though no body follows. This
// leniency exists to stay compatible with legacy objects that predate
// strict body-separator enforcement.
//
// Headers returns the reporter's result: 0 if the header is well formed,
// or if a violation was found but the sink did not mark it fatal;
// nonzero if the sink marked it fatal. On a nonzero return both callers
// stop before parsing field by field: Commit returns the -1
// structural-failure sentinel, Tag returns the reporter's result as is.
func Headers(opts *policy.Options, id object.OID, buf []byte) int {
	for i, b := range buf {
		switch b {
		case 0:
			return report.Report(opts, id, catalog.NulInHeader, "unterminated header: NUL at offset %d", i)
		case '\n':
			if i+1 < len(buf) && buf[i+1] == '\n' {
				return 0
			}
		}
	}
	if len(buf) > 0 && buf[len(buf)-1] == '\n' {
		return 0
	}
	return report.Report(opts, id, catalog.UnterminatedHeader, "unterminated header")
}
