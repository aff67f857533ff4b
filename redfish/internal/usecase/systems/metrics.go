package systems

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var workflowsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "redfish_workflows_started_total",
		Help: "Number of workflows started through Redfish actions (per graph)",
	},
	[]string{"graph"},
)

func recordWorkflow(graph string) {
	workflowsStartedTotal.WithLabelValues(graph).Inc()
}
