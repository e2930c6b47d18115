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
	"strings"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
)

// IsHFSDotGit and IsNTFSDotGit detect filesystem-specific aliases of
// ".git" (Unicode-normalization and 8.3 short-name tricks respectively)
// that a hostile tree could use to escape onto a case- or
// Unicode-insensitive checkout. Detecting them is platform policy, not
// object-integrity grammar, so this module treats both as external
// collaborators and ships permissive defaults that catch nothing
// beyond the exact literal name. Host applications running on HFS+ or
// NTFS checkouts SHOULD replace these.
var (
	IsHFSDotGit  = func(name string) bool { return false }
	IsNTFSDotGit = func(name string) bool { return false }
)

func isDotGitAlias(name string) bool {
	return name == ".git" || IsHFSDotGit(name) || IsNTFSDotGit(name)
}

// Ordering outcomes for a consecutive pair of tree entries.
const (
	treeOrdered = iota
	treeUnordered
	treeHasDups
)

// verifyOrdered compares two consecutive tree entries under path
// ordering: entries are sorted as if directory names had a trailing '/'
// appended. It compares raw bytes up to the shorter name's length; if
// equal there, it resumes the comparison with the first differing
// "virtual" character: the terminating byte of the shorter name,
// replaced by '/' if that entry is a directory. Two entries with no
// virtual character on either side (i.e. identical names) are
// duplicates, not merely unordered.
func verifyOrdered(mode1 object.FileMode, name1 string, mode2 object.FileMode, name2 string) int {
	n := len(name1)
	if len(name2) < n {
		n = len(name2)
	}
	switch strings.Compare(name1[:n], name2[:n]) {
	case -1:
		return treeOrdered
	case 1:
		return treeUnordered
	}

	var c1, c2 byte
	if len(name1) > n {
		c1 = name1[n]
	}
	if len(name2) > n {
		c2 = name2[n]
	}
	if c1 == 0 && c2 == 0 {
		return treeHasDups
	}
	if c1 == 0 && mode1.IsDir() {
		c1 = '/'
	}
	if c2 == 0 && mode2.IsDir() {
		c2 = '/'
	}
	if c1 < c2 {
		return treeOrdered
	}
	return treeUnordered
}

// Tree decodes and validates a tree object's raw buffer: mode
// canonicality, path-order sorting, and a handful of cosmetic/portability
// flags (null sha1 entries, full pathnames, empty names, '.', '..',
// '.git' aliases, zero-padded mode text). Every flag that fires at least
// once across the whole buffer emits exactly one diagnostic for that
// flag; Tree returns the sum of every reporter result produced, so a
// tree with several distinct problems can contribute more than 1 to an
// aggregate caller total.
//
// Tree returns -1 if the buffer itself could not be decoded into entries
// (a truncated record or non-octal mode text: a parse failure, not a
// grammar violation).
func Tree(opts *policy.Options, tr *object.Tree) int {
	entries, err := object.DecodeTreeEntries(tr.Buffer)
	if err != nil {
		return -1
	}

	var hasNullSHA1, hasFullPath, hasEmptyName bool
	var hasDot, hasDotDot, hasDotGit bool
	var hasZeroPad, hasBadModes, hasDupEntries, notSorted bool

	var prevMode object.FileMode
	var prevName string
	havePrev := false

	for _, e := range entries {
		hasNullSHA1 = hasNullSHA1 || e.OID.IsNull()
		hasFullPath = hasFullPath || strings.ContainsRune(e.Name, '/')
		hasEmptyName = hasEmptyName || e.Name == ""
		hasDot = hasDot || e.Name == "."
		hasDotDot = hasDotDot || e.Name == ".."
		hasDotGit = hasDotGit || isDotGitAlias(e.Name)
		hasZeroPad = hasZeroPad || e.ModeZeroPadded

		bad := !e.Mode.IsCanonical()
		if bad && e.Mode.IsLegacyRegular() && !opts.Strict() {
			bad = false
		}
		hasBadModes = hasBadModes || bad

		if havePrev {
			switch verifyOrdered(prevMode, prevName, e.Mode, e.Name) {
			case treeUnordered:
				notSorted = true
			case treeHasDups:
				hasDupEntries = true
			}
		}
		prevMode, prevName = e.Mode, e.Name
		havePrev = true
	}

	result := 0
	if hasNullSHA1 {
		result += report.Report(opts, tr.ID, catalog.NullSha1, "contains entries pointing to null sha1")
	}
	if hasFullPath {
		result += report.Report(opts, tr.ID, catalog.FullPathname, "contains full pathnames")
	}
	if hasEmptyName {
		result += report.Report(opts, tr.ID, catalog.EmptyName, "contains empty pathname")
	}
	if hasDot {
		result += report.Report(opts, tr.ID, catalog.HasDot, "contains '.'")
	}
	if hasDotDot {
		result += report.Report(opts, tr.ID, catalog.HasDotdot, "contains '..'")
	}
	if hasDotGit {
		result += report.Report(opts, tr.ID, catalog.HasDotgit, "contains '.git'")
	}
	if hasZeroPad {
		result += report.Report(opts, tr.ID, catalog.ZeroPaddedFilemode, "contains zero-padded file modes")
	}
	if hasBadModes {
		result += report.Report(opts, tr.ID, catalog.BadFilemode, "contains bad file modes")
	}
	if hasDupEntries {
		result += report.Report(opts, tr.ID, catalog.DuplicateEntries, "contains duplicate file entries")
	}
	if notSorted {
		result += report.Report(opts, tr.ID, catalog.TreeNotSorted, "not properly sorted")
	}
	return result
}
