package metrics

// InitPrometheusMetrics replaces the nop metrics with the prometheus ones;
// it must be called only once in a process.
func InitPrometheusMetrics() {
	Version = PromVersion()
	Governance = PromGovernanceMetrics()
	API = PromAPIMetrics()
}
