package t2048

// Highlight durations in ticks (~133ms and ~100ms at 60fps).
const (
	mergeFlashTicks = 8
	spawnFlashTicks = 6
)

// flash tracks cells highlighted after a move.
type flash struct {
	merged     []Pos
	spawned    *Tile
	mergeTicks int
	spawnTicks int
}

// start highlights the merged cells and the spawned tile of a move.
func (f *flash) start(merged []Pos, spawned *Tile) {
	f.merged = merged
	f.spawned = spawned
	f.mergeTicks = 0
	f.spawnTicks = 0
	if len(merged) > 0 {
		f.mergeTicks = mergeFlashTicks
	}
	if spawned != nil {
		f.spawnTicks = spawnFlashTicks
	}
}

// tick counts the highlights down by one tick.
func (f *flash) tick() {
	if f.mergeTicks > 0 {
		f.mergeTicks--
		if f.mergeTicks == 0 {
			f.merged = nil
		}
	}
	if f.spawnTicks > 0 {
		f.spawnTicks--
		if f.spawnTicks == 0 {
			f.spawned = nil
		}
	}
}

// active reports whether any highlight is still showing.
func (f *flash) active() bool {
	return f.mergeTicks > 0 || f.spawnTicks > 0
}

// isMerged reports whether p is a highlighted merge cell.
func (f *flash) isMerged(p Pos) bool {
	if f.mergeTicks == 0 {
		return false
	}
	for _, m := range f.merged {
		if m == p {
			return true
		}
	}
	return false
}

// isSpawned reports whether p holds the highlighted new tile.
func (f *flash) isSpawned(p Pos) bool {
	return f.spawnTicks > 0 && f.spawned != nil && f.spawned.Pos == p
}
