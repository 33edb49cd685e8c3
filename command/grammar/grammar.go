package grammar

import (
	"sync"

	"github.com/bedrock-tools/mccmd/command"
)

// knownVersions are the game versions a graph can be built for, oldest
// first. Versions between entries behave like the nearest older entry,
// so only versions that change the grammar need to be listed.
var knownVersions = []command.GameVersion{
	command.V(1, 19, 0),
	command.V(1, 19, 70),
	command.V(1, 19, 80),
	command.V(1, 20, 0),
}

var (
	mu    sync.Mutex
	cache = map[command.GameVersion]*command.Node{}
)

// For returns the frozen command graph for the given game version.
// Graphs are built on first use and cached; the returned graph is
// immutable and safe for concurrent use.
func For(v command.GameVersion) *command.Node {
	mu.Lock()
	defer mu.Unlock()
	if g, ok := cache[v]; ok {
		return g
	}
	g := build().Freeze(v)
	cache[v] = g
	return g
}

// Versions lists the game versions with distinct grammars, oldest first.
func Versions() []command.GameVersion {
	out := make([]command.GameVersion, len(knownVersions))
	copy(out, knownVersions)
	return out
}

// Latest is the newest version the grammar knows about.
func Latest() command.GameVersion {
	return knownVersions[len(knownVersions)-1]
}
