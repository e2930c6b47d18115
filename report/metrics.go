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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outcome labels every diagnostic the reporter considers, not only those
// that reach the sink: "error" and "warn" are the two that do, "ignored"
// is a policy-suppressed kind (an Ignore override, or an Info default no
// override enabled), and "skipped" is one suppressed by the skip set.
const (
	outcomeError   = "error"
	outcomeWarn    = "warn"
	outcomeIgnored = "ignored"
	outcomeSkipped = "skipped"
)

var diagnosticsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fsck",
		Subsystem: "report",
		Name:      "diagnostics_total",
		Help:      "Total diagnostics considered by the reporter, labeled by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

func recordDiagnostic(kind, outcome string) {
	diagnosticsTotal.WithLabelValues(kind, outcome).Inc()
}
