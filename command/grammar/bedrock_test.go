package grammar

import (
	"strings"
	"testing"

	"github.com/bedrock-tools/mccmd/command"
)

func TestForCachesGraphs(t *testing.T) {
	a := For(command.V(1, 20, 0))
	b := For(command.V(1, 20, 0))
	if a != b {
		t.Error("For returned two graphs for the same version")
	}
	if a == For(command.V(1, 19, 0)) {
		t.Error("For shared one graph across versions")
	}
}

func TestVersions(t *testing.T) {
	vs := Versions()
	if len(vs) == 0 {
		t.Fatal("no known versions")
	}
	for i := 1; i < len(vs); i++ {
		if vs[i-1].Compare(vs[i]) >= 0 {
			t.Errorf("versions out of order: %v before %v", vs[i-1], vs[i])
		}
	}
	if Latest() != vs[len(vs)-1] {
		t.Errorf("Latest() = %v, want %v", Latest(), vs[len(vs)-1])
	}
}

func TestBedrockValidCommands(t *testing.T) {
	root := For(Latest())
	lines := []string{
		"say hello there everyone",
		"me waves",
		"list",
		"help 3",
		"help gamemode",
		"gamemode creative @a",
		"gamemode 1",
		"give @p minecraft:apple 64",
		"give @p minecraft:diamond_sword 1 0",
		"clear @a minecraft:arrow -1 5",
		"kill",
		"kill @e[type=minecraft:cow]",
		"tp @s 10 ~ -5",
		"tp @s ~-1.5 ~ ~2",
		"tp @p @a",
		"teleport @s ^ ^1 ^-3",
		"time set day",
		"time add 1000",
		"time query gametime",
		"weather thunder 100",
		"weather query",
		"effect @s speed 30 1 true",
		"effect @a clear",
		"enchant @p sharpness 3",
		"summon minecraft:zombie ~ ~ ~",
		"summon minecraft:pig \"Mr. Pig\"",
		"tag @e add marked",
		"tag * remove marked",
		"tag @s list",
		"xp 5 @p",
		"xp 3L @p",
		"scoreboard objectives add money dummy \"Money\"",
		"scoreboard objectives setdisplay sidebar money",
		"scoreboard players set @p money 100",
		"scoreboard players add * money 5",
		"scoreboard players reset @a",
		"scoreboard players test @p money 10..",
		"scoreboard players random @p money 1 6",
		"testfor @e[type=minecraft:creeper]",
		"damage @e[r=5] 4 fall",
		"difficulty hard",
		"difficulty 0",
		"deop @a",
		"alwaysday true",
		"camerashake add @a 2.5 1.0 positional",
		"camerashake stop",
		"clearspawnpoint @p",
		"execute as @a at @s run say hi",
		"execute in nether positioned 0 64 0 run summon minecraft:zombie",
		"execute if score @p money matches 10.. run say rich",
		"execute unless block ~ ~-1 ~ minecraft:air run say standing",
		"execute if score @p money < @s money run say poorer",
		"# just a comment",
		"",
	}
	for _, line := range lines {
		w := command.NewWalker(line, root)
		if got := w.ParseLine(); got != nil {
			t.Errorf("%q: unexpected diagnostic %+v", line, got)
		}
	}
}

func TestBedrockDiagnostics(t *testing.T) {
	root := For(Latest())
	tests := []struct {
		line string
		want command.DiagnosticKind
	}{
		{"give @p minecraft:apple 0", command.DiagNumberOutOfRange},
		{"give @p minecraft:apple 1x", command.DiagInvalidNumber},
		{"gamemode flying", command.DiagUnknownEnumerateValue},
		{"execute as @a", command.DiagUnexpectedEndOfLine},
		{"tag @e", command.DiagUnexpectedEndOfLine},
		{"kill @e[", command.DiagUnexpectedEndOfLine},
		{"kill @e[r=1", command.DiagUnterminatedSelector},
		{"effect @s speed 30 999", command.DiagNumberOutOfRange},
		{"camerashake add @a 9 1 positional", command.DiagNumberOutOfRange},
		{"say", command.DiagUnexpectedEndOfLine},
		{"time set", command.DiagUnexpectedEndOfLine},
		{"list extra", command.DiagTrailingInput},
		{"summon minecraft:pig \"unclosed", command.DiagUnterminatedString},
	}
	for _, tt := range tests {
		w := command.NewWalker(tt.line, root)
		got := w.ParseLine()
		if got == nil {
			t.Errorf("%q: no diagnostic, want %s", tt.line, tt.want)
			continue
		}
		if got.Kind != tt.want {
			t.Errorf("%q: got %s, want %s", tt.line, got.Kind, tt.want)
		}
	}
}

func TestDeepFailureOutranksShallowMismatch(t *testing.T) {
	// The intensity is out of range; the shallower failure of the
	// selector's unopened "[" must not win the ranking.
	root := For(Latest())
	w := command.NewWalker("camerashake add @a 9 1 positional", root)
	got := w.ParseLine()
	if got == nil || got.Kind != command.DiagNumberOutOfRange {
		t.Fatalf("ParseLine() = %+v, want number_out_of_range", got)
	}
	want := command.Span{
		Start: command.Position{Line: 1, Column: 20},
		End:   command.Position{Line: 1, Column: 21},
	}
	if got.Span != want {
		t.Errorf("Span = %v, want %v", got.Span, want)
	}
}

func TestLongExecuteChain(t *testing.T) {
	// Chained subcommands re-enter shared nodes once per link; a chain
	// with far more tokens than the nesting bound still parses.
	root := For(Latest())
	line := "execute " + strings.Repeat("as @a at @s ", 40) + "run say hi"
	w := command.NewWalker(line, root)
	if got := w.ParseLine(); got != nil {
		t.Errorf("unexpected diagnostic %+v", got)
	}
}

func TestBlockDataRemovedIn11970(t *testing.T) {
	line := "setblock 1 2 3 minecraft:stone 3"

	w := command.NewWalker(line, For(command.V(1, 19, 0)))
	if got := w.ParseLine(); got != nil {
		t.Errorf("1.19.0: unexpected diagnostic %+v", got)
	}

	w = command.NewWalker(line, For(command.V(1, 20, 0)))
	got := w.ParseLine()
	if got == nil || got.Kind != command.DiagUnknownEnumerateValue {
		t.Errorf("1.20.0: got %+v, want unknown_enumerate_value", got)
	}
}

func TestHasPermissionSince11980(t *testing.T) {
	line := "kill @e[haspermission={camera=enabled}]"

	w := command.NewWalker(line, For(command.V(1, 19, 80)))
	if got := w.ParseLine(); got != nil {
		t.Errorf("1.19.80: unexpected diagnostic %+v", got)
	}

	w = command.NewWalker(line, For(command.V(1, 19, 0)))
	if got := w.ParseLine(); got == nil {
		t.Error("1.19.0: haspermission accepted before its introduction")
	}
}

func TestBedrockCompletion(t *testing.T) {
	c := command.NewCompleter(For(Latest()), nil)

	got := c.At("gam", 1, 4)
	if len(got) == 0 || got[0].Label != "gamemode" {
		t.Fatalf("completions for %q start with %v, want gamemode", "gam", got)
	}

	got = c.At("execute ", 1, 9)
	if len(got) == 0 || got[0].Label != "align" {
		t.Fatalf("completions after %q start with %v, want align", "execute ", got)
	}
}

func TestSelectorArguments(t *testing.T) {
	root := For(Latest())
	lines := []string{
		"kill @e[type=!minecraft:player]",
		"kill @e[tag=]",
		"kill @e[tag=!special]",
		"kill @a[m=creative]",
		"kill @a[scores={money=5..,deaths=..2}]",
		"kill @e[hasitem={item=minecraft:apple,quantity=2..}]",
		"kill @e[hasitem=[{item=minecraft:apple},{item=minecraft:stick}]]",
		"kill @p[c=0]",
		"kill @a[name=\"Some Player\"]",
		"kill PlayerName",
		"kill \"Player With Spaces\"",
	}
	for _, line := range lines {
		w := command.NewWalker(line, root)
		if got := w.ParseLine(); got != nil {
			t.Errorf("%q: unexpected diagnostic %+v", line, got)
		}
	}
}
