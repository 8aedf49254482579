package models

// ChartSummary holds patients-per-doctor counts as two parallel slices,
// ordered by doctor id.
type ChartSummary struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// OrphanReport is the result of one maintenance run.
type OrphanReport struct {
	TablesPresent bool   `json:"tables_present"`
	Orphans       int    `json:"orphans"`
	Repaired      int64  `json:"repaired"`
	RanAt         string `json:"ran_at"`
	Error         string `json:"error,omitempty"`
}
