// Package grammar builds the per-version Bedrock command graphs on top
// of the generic node model. Graphs are constructed once per game
// version, frozen, cached, and shared read-only afterwards.
package grammar

import (
	"github.com/bedrock-tools/mccmd/command"
)

// pos is one coordinate component: an absolute number, or "~" with an
// optional adjacent offset.
func pos(axis string) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.Float().
			Styled(command.FontPosition).
			Note("absolute " + axis + " coordinate").
			Branch(exit),
	)
	entry.Branch(
		command.Char('~').
			Styled(command.FontPosition).
			Note("relative "+axis+" coordinate").
			Branch(
				command.Float().Offset().
					Styled(command.FontPosition).
					Note("offset from the current "+axis).
					Branch(exit),
				command.Close(),
			).
			Branch(exit, command.AtBoundary()),
	)
	return command.Wrap(entry, exit)
}

// localPos is "^" with an optional adjacent offset, measured along the
// executor's local axes.
func localPos(axis string) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.Char('^').
			Styled(command.FontPosition).
			Note("local "+axis+" coordinate").
			Branch(
				command.Float().Offset().
					Styled(command.FontPosition).
					Note("offset along the local "+axis).
					Branch(exit),
				command.Close(),
			).
			Branch(exit, command.AtBoundary()),
	)
	return command.Wrap(entry, exit)
}

// Pos3D is a full three-component coordinate. Local ("^") and
// non-local components cannot be mixed within one coordinate.
func Pos3D() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	for _, mk := range []func(string) *command.Node{pos, localPos} {
		entry.Branch(
			mk("x").Branch(
				mk("y").Branch(
					mk("z").Branch(exit),
				),
			),
		)
	}
	return command.Wrap(entry, exit)
}

// rotation is an absolute angle or "~" with an optional offset.
func rotation(axis string) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.Float().
			Styled(command.FontPosition).
			Note("absolute " + axis + " rotation").
			Branch(exit),
	)
	entry.Branch(
		command.Char('~').
			Styled(command.FontPosition).
			Note("relative "+axis+" rotation").
			Branch(
				command.Float().Offset().
					Styled(command.FontPosition).
					Note("rotation offset").
					Branch(exit),
				command.Close(),
			).
			Branch(exit, command.AtBoundary()),
	)
	return command.Wrap(entry, exit)
}

// YawPitch is the two-angle rotation pair.
func YawPitch() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(rotation("yaw").Branch(rotation("pitch").Branch(exit)))
	return command.Wrap(entry, exit)
}

// rawIntRange is an un-invertable integer range: "N", "N..", "..N" or
// "N..M". The leading integer is loose so ".." may follow it directly;
// the boundary requirement comes back when no ".." does.
func rawIntRange() *command.Node {
	entry, exit := command.Empty(), command.Empty()

	lead := command.Integer().Loose().Note("range bound")
	dots := command.Chars("..").Note("range separator")
	dots.Branch(exit)
	dots.Branch(command.Integer().Note("range bound").Branch(exit))
	lead.Branch(dots)
	lead.Branch(exit, command.AtBoundary())
	entry.Branch(lead)

	entry.Branch(
		command.Chars("..").
			Note("range separator").
			Branch(command.Integer().Note("range bound").Branch(exit)),
	)
	return command.Wrap(entry, exit)
}

// IntRange is an integer range, optionally inverted with "!".
func IntRange() *command.Node {
	return command.Invertable(rawIntRange())
}

// GameMode matches a game mode by name, one-letter alias, or numeric id.
func GameMode(allowSpectatorID bool) *command.Node {
	names := []string{"spectator", "adventure", "survival", "creative", "default", "s", "c", "a", "d"}
	notes := map[string]string{
		"spectator": "spectator mode",
		"adventure": "adventure mode",
		"survival":  "survival mode",
		"creative":  "creative mode",
		"default":   "the world default",
		"s":         "survival mode",
		"c":         "creative mode",
		"a":         "adventure mode",
		"d":         "the world default",
	}
	ids := []string{"0", "1", "2"}
	if allowSpectatorID {
		ids = append(ids, "5")
	}
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(command.EnumerateNoted(names, notes).Branch(exit))
	entry.Branch(
		command.EnumerateNoted(ids, map[string]string{
			"0": "survival mode", "1": "creative mode", "2": "adventure mode", "5": "spectator mode",
		}).
			Styled(command.FontNumber).
			Note("game mode by numeric id").
			Branch(exit),
	)
	return command.Wrap(entry, exit)
}

// ScoreSpec is a score holder (selector, optionally "*") followed by an
// objective name.
func ScoreSpec(wildcardOK bool) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	holder := Selector("score holder")
	if wildcardOK {
		holder = command.Wildcard(holder)
	}
	entry.Branch(
		holder.Branch(
			command.String().
				Styled(command.FontScoreboard).
				Note("objective").
				Branch(exit),
		),
	)
	return command.Wrap(entry, exit)
}

// ItemAmount is the bounded count argument shared by item commands.
func ItemAmount(note string) *command.Node {
	return command.Integer().Ranged(1, 32767).Note(note)
}

// ItemData is the auxiliary value of an item; tests accept -1.
func ItemData(isTest bool) *command.Node {
	min := 0.0
	if isTest {
		min = -1
	}
	return command.Integer().Ranged(min, 32767).Note("item aux value")
}
