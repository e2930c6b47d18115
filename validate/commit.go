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
	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
)

// Commit validates a commit object's raw buffer against the commit
// grammar:
//
//	tree <40-hex> LF
//	(parent <40-hex> LF)*
//	author <ident> LF              // at least one; >1 is MULTIPLE_AUTHORS
//	committer <ident> LF           // exactly one
//
// followed by the blank line Headers already confirmed terminates the
// header block.
//
// Commit returns -1, the structural-parse-failure sentinel, if the
// header block itself is too malformed to trust field by field;
// otherwise it returns the first nonzero reporter result encountered,
// or 0 if every check passed. Control flow is early-return-on-first-
// failure, and most individual checks propagate whatever the sink
// returned rather than a hardcoded sentinel.
func Commit(opts *policy.Options, c *object.Commit) int {
	if r := Headers(opts, c.ID, c.Raw); r != 0 {
		return -1
	}

	buf := c.Raw

	rest, ok := cutPrefix(buf, "tree ")
	if !ok {
		return report.Report(opts, c.ID, catalog.MissingTree, "invalid format - expected 'tree' line")
	}
	treeText := firstHexSize(rest)
	if _, ok := parseHexLine(rest); !ok {
		if r := report.Report(opts, c.ID, catalog.BadTreeSha1, "invalid 'tree' line format - bad sha1"); r != 0 {
			return r
		}
	}
	buf = advanceHexLine(rest)

	parentLines := 0
	for {
		next, ok := cutPrefix(buf, "parent ")
		if !ok {
			break
		}
		if _, ok := parseHexLine(next); !ok {
			if r := report.Report(opts, c.ID, catalog.BadParentSha1, "invalid 'parent' line format - bad sha1"); r != 0 {
				return r
			}
		}
		buf = advanceHexLine(next)
		parentLines++
	}

	parentCount := len(c.Parents)
	if opts.GraftLookup != nil {
		if graft, found := opts.GraftLookup(c.ID); found {
			if !(graft.IsShallow() && parentCount == 0) && graft.ParentCount != parentCount {
				if r := report.Report(opts, c.ID, catalog.MissingGraft, "graft objects missing"); r != 0 {
					return r
				}
			}
		} else if parentCount != parentLines {
			if r := report.Report(opts, c.ID, catalog.MissingParent, "parent objects missing"); r != 0 {
				return r
			}
		}
	} else if parentCount != parentLines {
		if r := report.Report(opts, c.ID, catalog.MissingParent, "parent objects missing"); r != 0 {
			return r
		}
	}

	authorCount := 0
	for {
		next, ok := cutPrefix(buf, "author ")
		if !ok {
			break
		}
		authorCount++
		var r int
		buf, r = Identity(opts, c.ID, next)
		if r != 0 {
			return r
		}
	}
	switch {
	case authorCount < 1:
		if r := report.Report(opts, c.ID, catalog.MissingAuthor, "invalid format - expected 'author' line"); r != 0 {
			return r
		}
	case authorCount > 1:
		if r := report.Report(opts, c.ID, catalog.MultipleAuthors, "invalid format - multiple 'author' lines"); r != 0 {
			return r
		}
	}

	next, ok := cutPrefix(buf, "committer ")
	if !ok {
		return report.Report(opts, c.ID, catalog.MissingCommitter, "invalid format - expected 'committer' line")
	}
	if _, r := Identity(opts, c.ID, next); r != 0 {
		return r
	}

	if c.Tree.IsZero() {
		return report.Report(opts, c.ID, catalog.BadTree, "could not load commit's tree %s", treeText)
	}

	return 0
}

// firstHexSize returns the leading HexSize bytes of buf for use in a
// diagnostic message, whether or not they form a valid object id: the
// message quotes whatever bytes were actually read.
func firstHexSize(buf []byte) string {
	if len(buf) < object.HexSize {
		return string(buf)
	}
	return string(buf[:object.HexSize])
}
