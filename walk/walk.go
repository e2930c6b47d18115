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

// Package walk implements the reachability walker: per-type enumeration
// of the outbound object references a connectivity pass needs to follow,
// independent of (and run in addition to) format validation.
package walk

import (
	"fmt"
	"os"

	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
)

// BadModeSink receives the free-form error produced when the tree
// walker encounters an entry whose mode is none of regular, executable,
// symlink, directory, or gitlink. This is deliberately not a
// catalog.Kind diagnostic: the walker reports a bad mode as a plain
// error and keeps going, while the tree validator reports the same
// condition through the catalog, and that long-standing inconsistency
// is preserved here rather than smoothed over. The default writes to
// stderr; host applications MAY replace this to route it through their
// own logging.
var BadModeSink = func(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// Walk dispatches obj to the per-type walker appropriate to its kind,
// invoking opts.Walker once per outbound reference it finds. It returns
// -1 if obj is nil or of an unrecognized type. Otherwise it returns the
// walker callback's first non-zero return (earliest observed soft
// failure), or 0 if every invocation returned 0. Any negative walker
// return aborts the traversal immediately and is propagated as-is.
func Walk(opts *policy.Options, obj object.Object, userData any) int {
	switch v := obj.(type) {
	case nil:
		return -1
	case *object.Blob:
		return 0
	case *object.Tree:
		return tree(opts, v, userData)
	case *object.Commit:
		return commit(opts, v, userData)
	case *object.Tag:
		return tag(opts, v, userData)
	default:
		return -1
	}
}

// tree decodes t's buffer and walks its entries in on-disk order,
// skipping gitlinks entirely. A bad-mode entry is reported through
// BadModeSink and the walk continues past it; a bad mode never aborts
// the traversal on its own, only a negative return from opts.Walker
// does.
func tree(opts *policy.Options, t *object.Tree, userData any) int {
	entries, err := object.DecodeTreeEntries(t.Buffer)
	if err != nil {
		return -1
	}
	if opts.Walker == nil {
		return 0
	}

	res := 0
	for _, e := range entries {
		var result int
		switch {
		case e.Mode.IsGitlink():
			continue
		case e.Mode.IsDir():
			result = opts.Walker(e.OID, object.TypeTree, userData)
		case e.Mode.IsRegularOrSymlink():
			result = opts.Walker(e.OID, object.TypeBlob, userData)
		default:
			BadModeSink(fmt.Errorf("in tree %s: entry %s has bad mode %s", t.ID, e.Name, e.Mode))
			continue
		}
		if result < 0 {
			return result
		}
		if res == 0 {
			res = result
		}
	}
	return res
}

// commit walks the tree link first, then each parent in list order.
// Preserving that order is part of the contract: a commit with parents
// [p1, p2, p3] visits tree, p1, p2, p3, in that sequence, never
// reordered or deduplicated.
func commit(opts *policy.Options, c *object.Commit, userData any) int {
	if opts.Walker == nil {
		return 0
	}

	result := opts.Walker(c.Tree, object.TypeTree, userData)
	if result < 0 {
		return result
	}
	res := result

	for _, p := range c.Parents {
		result = opts.Walker(p, object.TypeCommit, userData)
		if result < 0 {
			return result
		}
		if res == 0 {
			res = result
		}
	}
	return res
}

// tag walks the single tagged-object reference. The walker is told
// object.TypeAny, since a tag may point at any object kind.
func tag(opts *policy.Options, t *object.Tag, userData any) int {
	if opts.Walker == nil {
		return 0
	}
	return opts.Walker(t.Tagged, object.TypeAny, userData)
}
