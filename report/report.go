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

package report

import (
	"fmt"

	"dirpx.dev/fsck/catalog"
	"dirpx.dev/fsck/object"
	"dirpx.dev/fsck/policy"
)

var defaultLogger = NewLogger(LoggerConfig{Level: LogLevelInfo, Format: LogFormatJSON})

// DefaultSink renders a diagnostic through the package default Logger,
// mirroring the one-line "object <40-hex>: <message>" shape as a
// structured event instead of a bare stream write. It returns 1 for
// Error (marking the result fatal to the caller's aggregate return) and
// 0 for Warn.
func DefaultSink(id object.OID, severity catalog.Severity, message string) int {
	if severity == catalog.SeverityError {
		defaultLogger.logDiagnostic(id.String(), "", message, true)
		return 1
	}
	defaultLogger.logDiagnostic(id.String(), "", message, false)
	return 0
}

// Report resolves kind's effective severity against opts, formats the
// diagnostic, dispatches it to opts.Sink (or DefaultSink if nil), and
// records a metrics observation regardless of whether the sink was
// actually invoked. It implements the reporter contract in full:
//
//  1. Resolve effective severity. Ignore short-circuits with 0, as does
//     an Info default that no override has enabled.
//  2. A non-zero id present in the skip set short-circuits with 0.
//  3. Collapse Fatal->Error and Info->Warn for the sink boundary.
//  4. Build "<kind-symbolic>: <formatted-args>".
//  5. Invoke the sink; propagate its return.
//  6. Record the observation, tagged by kind and outcome.
func Report(opts *policy.Options, id object.OID, kind catalog.Kind, format string, args ...any) int {
	sev := opts.Effective(kind)

	// Info kinds are suppressed until an override enables them; any
	// override replaces Info with Error, Warn, or Ignore, so an effective
	// severity still reading Info means "nobody asked for this one".
	if sev == catalog.SeverityIgnore || sev == catalog.SeverityInfo {
		recordDiagnostic(kind.String(), outcomeIgnored)
		return 0
	}
	if !id.IsZero() && opts.Skip().Contains(id) {
		recordDiagnostic(kind.String(), outcomeSkipped)
		return 0
	}

	collapsed := collapse(sev)
	message := kind.Symbolic() + ": " + fmt.Sprintf(format, args...)

	sink := opts.Sink
	if sink == nil {
		sink = DefaultSink
	}

	result := sink(id, collapsed, message)

	if collapsed == catalog.SeverityError {
		recordDiagnostic(kind.String(), outcomeError)
	} else {
		recordDiagnostic(kind.String(), outcomeWarn)
	}
	return result
}

// collapse maps the internal severities onto the two the sink boundary
// understands: Fatal and Error both present as Error; Info, were it ever
// to get this far, presents as Warn. Warn passes through unchanged.
// Ignore and un-enabled Info never reach this function; Report
// short-circuits on both first.
func collapse(sev catalog.Severity) catalog.Severity {
	switch sev {
	case catalog.SeverityFatal:
		return catalog.SeverityError
	case catalog.SeverityInfo:
		return catalog.SeverityWarn
	default:
		return sev
	}
}
