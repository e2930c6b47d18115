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

// Package fsck is the top-level object-integrity checker: Object
// dispatches a parsed object to the format validator appropriate to its
// kind, and Walk dispatches it to the reachability walker appropriate to
// its kind. Everything else (the message catalog, the policy layer, the
// reporter, the validators themselves, and the walker) lives in the
// catalog, policy, report, validate, and walk subpackages; this file
// carries only the two entry points.
package fsck

import (
	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
	"dirpx.dev/fsck/report"
	"dirpx.dev/fsck/validate"
	"dirpx.dev/fsck/walk"
)

// Object validates obj's serialized form against the format grammar and
// semantic rules appropriate to its type, reporting every diagnostic
// found through opts. Blobs are trivially valid, since fsck does not
// parse blob content: its integrity is exhausted by content-addressing,
// which is the caller's responsibility to have already established.
//
// If obj is nil, Object reports BAD_OBJECT_SHA1 and returns the sink's
// result. It returns -1 if a tree's buffer could not be decoded, or if a
// commit's header block failed Headers with a nonzero result. Otherwise a
// commit or tag returns the first nonzero reporter result encountered
// (for a tag this includes a header-block failure), a tree returns the
// sum of its reporter results (one per distinct flag that fired), and 0
// means every check passed.
func Object(opts *policy.Options, obj object.Object) int {
	if obj == nil {
		return report.Report(opts, object.OID(""), catalog.BadObjectSha1, "no valid object to fsck")
	}
	switch v := obj.(type) {
	case *object.Blob:
		return 0
	case *object.Tree:
		return validate.Tree(opts, v)
	case *object.Commit:
		return validate.Commit(opts, v)
	case *object.Tag:
		return validate.Tag(opts, v)
	default:
		return report.Report(opts, obj.ObjectID(), catalog.UnknownType, "unknown type '%T' (internal fsck error)", v)
	}
}

// Walk enumerates obj's outbound object references for a graph-level
// connectivity pass, invoking opts.Walker once per reference. It is
// independent of Object: a caller doing a full fsck run invokes both,
// not one in terms of the other. See package walk for the full per-type
// contract and its aggregate-return semantics.
func Walk(opts *policy.Options, obj object.Object, userData any) int {
	return walk.Walk(opts, obj, userData)
}
