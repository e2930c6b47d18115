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

import "dirpx.dev/fsck/object"

// Graft is an externally supplied override of a commit's recorded parent
// list, used for shallow clones and grafted history. Only ParentCount is
// needed by commit validation; the identities of the substituted parents
// are the graft oracle's concern, not fsck's.
type Graft struct {
	// ParentCount is the number of parents the graft declares. -1 means
	// the graft marks the commit shallow: it must have zero parent
	// lines in its own buffer.
	ParentCount int
}

// ShallowParentCount is the sentinel Graft.ParentCount value marking a
// shallow graft point.
const ShallowParentCount = -1

// IsShallow reports whether g marks its commit as a shallow boundary.
func (g Graft) IsShallow() bool { return g.ParentCount == ShallowParentCount }

// GraftLookupFunc stands in for the commit-graft oracle: given a commit's
// object id, it reports the graft recorded against it, if any. This
// module never implements the oracle itself; callers supply one (or
// leave it nil, in which case no commit is considered grafted).
type GraftLookupFunc func(id object.OID) (Graft, bool)
