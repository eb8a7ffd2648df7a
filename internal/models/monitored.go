package models

// MonitoredPackages is the hand-off record between the daemon and the
// platform watcher. Seq is a monotonic sequence number: a reader that sees
// a Seq lower than one it already observed is looking at a stale or torn
// write and must re-read.
type MonitoredPackages struct {
	Seq      uint64   `json:"seq"`
	Packages []string `json:"packages"`
}
