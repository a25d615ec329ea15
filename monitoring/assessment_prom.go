// Copyright (C) 2025 MapleRisk Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssessmentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "maplerisk_assessments_created_total",
	Help: "Assessments created, partitioned by assessment path",
}, []string{"path"})

var ReportsDerived = promauto.NewCounter(prometheus.CounterOpts{
	Name: "maplerisk_reports_derived_total",
	Help: "Reports derived from assessments",
})

var SubmitFallbacks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "maplerisk_submit_fallbacks_total",
	Help: "Wizard submissions that fell back to local derivation",
})

var WebsiteScans = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "maplerisk_website_scans_total",
	Help: "Website quick-scans, partitioned by outcome",
}, []string{"outcome"})

var RiskScores = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "maplerisk_risk_score",
	Help:    "Distribution of computed risk scores",
	Buckets: prometheus.LinearBuckets(0, 10, 11),
})
