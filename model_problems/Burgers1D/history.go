package Burgers1D

import "github.com/scigolabs/goburgers/utils"

// SnapshotHistory is the append-only record of solution states, one per
// completed time level plus the initial condition. Append copies, so
// later mutation of the running state cannot alter recorded snapshots.
type SnapshotHistory struct {
	snaps []utils.Vector
}

func (h *SnapshotHistory) Append(u utils.Vector) {
	h.snaps = append(h.snaps, u.Copy())
}

func (h *SnapshotHistory) Len() int { return len(h.snaps) }

func (h *SnapshotHistory) At(i int) utils.Vector { return h.snaps[i] }

func (h *SnapshotHistory) Last() utils.Vector { return h.snaps[len(h.snaps)-1] }
