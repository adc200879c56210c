package staleness

import "os"

// SetStat replaces the stat function used by the oracle.
// This is exported for testing purposes only.
func (o *Oracle) SetStat(stat func(string) (os.FileInfo, error)) {
	o.stat = stat
}
