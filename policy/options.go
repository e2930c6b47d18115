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

// Package policy parses user-supplied severity overrides and skip lists,
// and exposes the resulting effective-severity table to the reporter. It
// has no knowledge of what a diagnostic means, only of how severely it
// should be treated.
package policy

import (
	"strings"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/object"
)

// SinkFunc receives one formatted diagnostic for a specific object at the
// severity it was resolved to ({Error, Warn} only; Ignore never reaches
// the sink). It returns 0 to continue, 1 to mark the overall result
// fatal. Callers supply a sink grounded on whatever logging or output
// stream they want; report.DefaultSink is used when Options.Sink is nil.
type SinkFunc func(id object.OID, severity catalog.Severity, message string) int

// WalkFunc is invoked once per object visited while walking a tree or
// commit graph, mirroring the external object-walking collaborator this
// module treats as out of scope for its own implementation.
type WalkFunc func(id object.OID, typ object.Type, userData any) int

// Options bundles everything that shapes how a single invocation reports
// diagnostics: the severity overrides, strict-mode promotion, the skip
// set, the output sink, and the two external collaborator callbacks
// (walker and graft lookup) this module treats as interface-only.
//
// Options is mutable and not safe for concurrent use: setting an
// override materializes the full severity table, and a skip-set lookup
// can sort the set in place. Callers sharing one Options value across
// goroutines MUST synchronize at a layer above this package.
type Options struct {
	// overrides is nil until the first override is set, at which point
	// it is materialized to a full table of length catalog.NumKinds
	// prefilled with each kind's strict-adjusted default.
	overrides []catalog.Severity

	strict bool
	skip   *SkipSet

	Sink        SinkFunc
	Walker      WalkFunc
	GraftLookup GraftLookupFunc
}

// defaultSkip is the process-wide skip set used by every Options value
// that has not had its own attached via SetSkip. Ids loaded through such
// an Options (a "skiplist=" token, say) land here and are visible to
// every other Options sharing the default.
var defaultSkip = NewSkipSet()

// NewOptions returns a ready-to-use Options with no overrides, strict
// mode off, and the process-wide default skip set.
func NewOptions() *Options {
	return &Options{}
}

// Strict reports whether strict mode is enabled.
func (o *Options) Strict() bool { return o.strict }

// SetStrict enables or disables strict mode. Changing strict mode after
// overrides have already been materialized does not retroactively alter
// them; callers SHOULD set strict mode before applying any overrides.
func (o *Options) SetStrict(strict bool) { o.strict = strict }

// Skip returns the skip set diagnostics are tested against: the set
// attached via SetSkip if any, otherwise the process-wide default.
func (o *Options) Skip() *SkipSet {
	if o.skip == nil {
		return defaultSkip
	}
	return o.skip
}

// SetSkip attaches s as this invocation's skip set. The set is
// referenced directly, not copied: loads performed through this Options
// augment s in place, and s may be shared with other Options values as
// long as the caller serializes their use.
func (o *Options) SetSkip(s *SkipSet) { o.skip = s }

// defaultEffective computes kind's severity before any per-kind override:
// its catalog default, with strict mode's Warn-to-Error promotion
// applied.
func (o *Options) defaultEffective(kind catalog.Kind) catalog.Severity {
	sev := kind.DefaultSeverity()
	if o.strict && sev == catalog.SeverityWarn {
		return catalog.SeverityError
	}
	return sev
}

// Effective returns kind's currently effective severity: the per-kind
// override if one has been set, otherwise the strict-adjusted default.
func (o *Options) Effective(kind catalog.Kind) catalog.Severity {
	if o.overrides != nil && int(kind) < len(o.overrides) {
		return o.overrides[kind]
	}
	return o.defaultEffective(kind)
}

// materialize allocates the override table, if it does not already
// exist, prefilled with each kind's strict-adjusted default severity.
func (o *Options) materialize() {
	if o.overrides != nil {
		return
	}
	o.overrides = make([]catalog.Severity, catalog.NumKinds)
	for k := 0; k < catalog.NumKinds; k++ {
		o.overrides[k] = o.defaultEffective(catalog.Kind(k))
	}
}

// SetMessageType overrides kindName's effective severity to levelName.
// Both names are matched case-insensitively; kindName additionally has
// its underscores stripped before lookup. Overriding a Fatal kind to
// anything other than Error is rejected: Fatal conditions (a NUL byte or
// an unterminated header) can never be downgraded.
func (o *Options) SetMessageType(kindName, levelName string) error {
	kind, ok := catalog.ParseKind(kindName)
	if !ok {
		return &fsckerr.ConfigError{Field: "kind", Value: kindName, Reason: "unknown diagnostic kind"}
	}
	sev, ok := catalog.ParseOverrideSeverity(levelName)
	if !ok {
		return &fsckerr.ConfigError{Field: "severity", Value: levelName, Reason: "must be error, warn, or ignore"}
	}
	if kind.DefaultSeverity() == catalog.SeverityFatal && sev != catalog.SeverityError {
		return &fsckerr.ConfigError{
			Field:  "severity",
			Value:  levelName,
			Reason: "cannot demote fatal kind " + kind.String() + " below error",
		}
	}
	o.materialize()
	o.overrides[kind] = sev
	return nil
}

// SetMessageTypes parses value, a space/comma/pipe-separated list of
// tokens, applying each override it describes. Each token is either
// "skiplist=<path>" (loads and appends a skip-list file) or
// "<kind>=<severity>" / "<kind>:<severity>" (overrides one kind). A token
// with neither a recognized key nor a '='/':' separator is a
// configuration error, as is an unknown kind, an unknown severity, or an
// unreadable/malformed skip-list file.
func (o *Options) SetMessageTypes(value string) error {
	for _, token := range splitTokens(value) {
		if token == "" {
			continue
		}
		key, sep, rest := cutKeyValue(token)
		if !sep {
			return &fsckerr.ConfigError{Field: "token", Value: token, Reason: "missing '=' or ':' separator"}
		}
		if strings.ToLower(key) == "skiplist" {
			if err := o.Skip().LoadFile(rest); err != nil {
				return &fsckerr.ConfigError{Field: "skiplist", Value: rest, Reason: err.Error()}
			}
			continue
		}
		if err := o.SetMessageType(key, rest); err != nil {
			return err
		}
	}
	return nil
}

// splitTokens splits value on any run of spaces, commas, or pipes.
func splitTokens(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '|'
	})
}

// cutKeyValue splits token on its first '=' or ':', whichever comes
// first. It reports ok=false if neither separator is present.
func cutKeyValue(token string) (key string, ok bool, value string) {
	idx := strings.IndexAny(token, "=:")
	if idx < 0 {
		return token, false, ""
	}
	return token[:idx], true, token[idx+1:]
}
