package memory

import (
	"sort"
	"strings"
)

// Turn is one user message and the corresponding bot reply, with a stable
// sequence index starting at 1.
type Turn struct {
	Index int
	User  string
	Bot   string
}

// Memory is the in-process store of conversation turns. Indexes are
// allocated by a monotonically increasing counter and never reused; after
// summarization older turns are pruned away and only survive inside the
// running summary.
type Memory struct {
	turns   map[int]Turn
	counter int
}

// New creates an empty conversation memory.
func New() *Memory {
	return &Memory{turns: make(map[int]Turn)}
}

// Append stores a completed exchange under the next turn index and
// returns it.
func (m *Memory) Append(user, bot string) Turn {
	m.counter++
	t := Turn{Index: m.counter, User: user, Bot: bot}
	m.turns[t.Index] = t
	return t
}

// Turns returns the value of the turn counter. Unlike Len, it keeps
// counting across prunes.
func (m *Memory) Turns() int {
	return m.counter
}

// Len returns the number of turns currently stored.
func (m *Memory) Len() int {
	return len(m.turns)
}

// Transcript renders all stored turns as alternating "User:"/"Bot:" lines,
// ordered by ascending index. Pure read.
func (m *Memory) Transcript() string {
	return m.render(m.sortedIndexes())
}

// Recent renders the n highest-indexed turns the same way Transcript does.
// If fewer than n turns exist, all are included.
func (m *Memory) Recent(n int) string {
	keys := m.sortedIndexes()
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	return m.render(keys)
}

// Prune discards all turns except the highest-indexed keepLastN.
// Irreversible; the turn counter is untouched.
func (m *Memory) Prune(keepLastN int) {
	keys := m.sortedIndexes()
	if len(keys) <= keepLastN {
		return
	}
	for _, k := range keys[:len(keys)-keepLastN] {
		delete(m.turns, k)
	}
}

// Reset clears all turns and the counter.
func (m *Memory) Reset() {
	m.turns = make(map[int]Turn)
	m.counter = 0
}

func (m *Memory) sortedIndexes() []int {
	keys := make([]int, 0, len(m.turns))
	for k := range m.turns {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (m *Memory) render(keys []int) string {
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		t := m.turns[k]
		lines = append(lines, "User: "+t.User+"\nBot: "+t.Bot)
	}
	return strings.Join(lines, "\n")
}
