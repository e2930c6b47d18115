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

package catalog

import (
	"encoding/json"
	"strings"

	"dirpx.dev/fsck/fsckerr"
	"dirpx.dev/fsck/internal/modelkit"
	"gopkg.in/yaml.v3"
)

// Severity classifies how serious a diagnostic kind is. The four internal
// levels collapse to three at the reporter boundary: Fatal and Error both
// present to the sink as Error, Warn as Warn, and an effective Info is
// suppressed like Ignore (enabling an Info kind means overriding it to
// Error or Warn). Ignore only ever appears as an override value; no
// kind's default severity is Ignore.
type Severity uint8

const (
	// SeverityFatal marks header well-formedness failures. A Fatal kind can
	// never be overridden below Error.
	SeverityFatal Severity = iota

	// SeverityError marks structural or grammar violations.
	SeverityError

	// SeverityWarn marks style or portability issues. Strict mode promotes
	// Warn to Error unless an explicit override says otherwise.
	SeverityWarn

	// SeverityInfo marks cosmetic or legacy conditions. Suppressed unless
	// explicitly enabled via an override.
	SeverityInfo

	// SeverityIgnore suppresses a kind entirely. Only reachable as an
	// override value, never as a kind's default.
	SeverityIgnore
)

const (
	severityFatalStr  = "fatal"
	severityErrorStr  = "error"
	severityWarnStr   = "warn"
	severityInfoStr   = "info"
	severityIgnoreStr = "ignore"
)

// String renders the severity's lowercase name.
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return severityFatalStr
	case SeverityError:
		return severityErrorStr
	case SeverityWarn:
		return severityWarnStr
	case SeverityInfo:
		return severityInfoStr
	case SeverityIgnore:
		return severityIgnoreStr
	default:
		return "unknown"
	}
}

// Redacted delegates to String; severities carry no sensitive data.
func (s Severity) Redacted() string { return s.String() }

// TypeName identifies this type for error messages and structured logging.
func (s Severity) TypeName() string { return "Severity" }

// IsZero reports whether s is SeverityFatal, the zero value. Fatal is a
// meaningful severity, not an absence of one, but it is still the type's
// zero value by construction (matching the catalog's historical ordering,
// where FATAL comes first).
func (s Severity) IsZero() bool { return s == SeverityFatal }

// Validate reports whether s is one of the five known levels.
func (s Severity) Validate() error {
	if s > SeverityIgnore {
		return &fsckerr.ValidationError{Type: "Severity", Reason: "unrecognized severity value"}
	}
	return nil
}

// ParseOverrideSeverity parses one of the three severities accepted by the
// override mini-language: "error", "warn", "ignore". Unlike ParseKind, this
// does not strip underscores; these are fixed literal tokens.
func ParseOverrideSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case severityErrorStr:
		return SeverityError, true
	case severityWarnStr:
		return SeverityWarn, true
	case severityIgnoreStr:
		return SeverityIgnore, true
	default:
		return 0, false
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &fsckerr.ParseError{Type: "Severity", Value: string(data)}
	}
	switch strings.ToLower(str) {
	case severityFatalStr:
		*s = SeverityFatal
	case severityErrorStr:
		*s = SeverityError
	case severityWarnStr:
		*s = SeverityWarn
	case severityInfoStr:
		*s = SeverityInfo
	case severityIgnoreStr:
		*s = SeverityIgnore
	default:
		return &fsckerr.ParseError{Type: "Severity", Value: str}
	}
	return nil
}

func (s Severity) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &fsckerr.ParseError{Type: "Severity", Value: node.Value}
	}
	data, _ := json.Marshal(str)
	return s.UnmarshalJSON(data)
}

var _ modelkit.Model = (*Severity)(nil)
