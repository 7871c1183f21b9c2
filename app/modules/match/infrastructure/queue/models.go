package matchqueue

// ReconcileJob sweeps for completed matches stranded in the live set and
// retires them. It carries no arguments; the sweep always covers everything.
type ReconcileJob struct{}

// Kind returns the job type identifier for River.
func (ReconcileJob) Kind() string { return "match_reconcile" }
