package game

// Prefs persists the two values that survive a restart: the best score and
// the mute flag. Reads never fail; missing or malformed values read as
// zero or false. Writes happen as soon as a value changes.
type Prefs interface {
	Best() int
	SetBest(score int) error
	Muted() bool
	SetMuted(muted bool) error
}

// RunRecorder receives the final score of every finished run.
type RunRecorder interface {
	RecordRun(score int) error
}

// MemoryPrefs keeps preferences in memory. It backs tests and the fallback
// when no database is available.
type MemoryPrefs struct {
	best  int
	muted bool
}

// NewMemoryPrefs creates in-memory preferences with initial values.
func NewMemoryPrefs(best int, muted bool) *MemoryPrefs {
	return &MemoryPrefs{best: max(0, best), muted: muted}
}

// Best returns the stored best score.
func (m *MemoryPrefs) Best() int { return m.best }

// SetBest stores score, floored at zero. It never fails.
func (m *MemoryPrefs) SetBest(score int) error {
	m.best = max(0, score)
	return nil
}

// Muted returns the stored mute flag.
func (m *MemoryPrefs) Muted() bool { return m.muted }

// SetMuted stores the mute flag. It never fails.
func (m *MemoryPrefs) SetMuted(muted bool) error {
	m.muted = muted
	return nil
}
