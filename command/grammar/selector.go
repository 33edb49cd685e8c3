package grammar

import (
	"github.com/bedrock-tools/mccmd/command"
)

// selectorChar returns a punctuation node for the inside of a selector
// argument list. Running out of line between an opened bracket and its
// close is reported as an unterminated selector, not a generic
// end-of-line failure.
func selectorChar(ch byte, note string) *command.Node {
	return command.Char(ch).
		Note(note).
		Unterminated(command.DiagUnterminatedSelector)
}

// selectorSeries wraps content in "[...]" or "{...}" selector-style
// delimiters with comma separators. The opening delimiter is a plain
// token: a selector that never opens its argument list is an ordinary
// missing continuation, not an unterminated one.
func selectorSeries(open, close byte, content *command.Node, emptyOK bool) *command.Node {
	return command.Series(command.SeriesSpec{
		Begin:     command.Char(open).Note("begin arguments"),
		Content:   content,
		Separator: selectorChar(',', "next argument"),
		End:       selectorChar(close, "end arguments"),
		EmptyOK:   emptyOK,
	})
}

// equals is the "=" between a selector argument name and its value.
func equals() *command.Node {
	return selectorChar('=', "argument value follows")
}

// scoresArg is one "objective=range" pair inside scores={...}.
func scoresArg() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.String().
			Styled(command.FontScoreboard).
			Note("objective").
			Branch(
				equals().Branch(
					IntRange().Branch(exit),
				),
			),
	)
	return command.Wrap(entry, exit)
}

// rawTag is the value of tag=. An empty value is legal and selects
// entities without any tag.
func rawTag() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.String().
			Styled(command.FontTag).
			Note("tag name").
			Branch(exit),
	)
	entry.Branch(exit)
	return command.Wrap(entry, exit)
}

// hasItemArg is one key=value pair inside a hasitem={...} object.
func hasItemArg() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	args := []struct {
		name string
		note string
		node *command.Node
	}{
		{"item", "item to look for", command.Identifier("item")},
		{"data", "required aux value", ItemData(true)},
		{"quantity", "required amount", IntRange()},
		{"location", "slot type to search", command.Identifier("entity_slot")},
		{"slot", "slot numbers to search", IntRange()},
	}
	for _, arg := range args {
		entry.Branch(
			command.Keyword(arg.name).
				Note(arg.note).
				Branch(
					equals().Branch(
						arg.node.Branch(exit),
					),
				),
		)
	}
	return command.Wrap(entry, exit)
}

// hasItem is the hasitem= value: one test object, or an array of them.
func hasItem() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(selectorSeries('{', '}', hasItemArg(), false).Branch(exit))
	entry.Branch(
		selectorSeries('[', ']', selectorSeries('{', '}', hasItemArg(), false), false).
			Branch(exit),
	)
	return command.Wrap(entry, exit)
}

// permissionState is the value of a haspermission entry.
func permissionState() *command.Node {
	return command.EnumerateNoted(
		[]string{"enabled", "disabled"},
		map[string]string{"enabled": "permission granted", "disabled": "permission revoked"},
	).Styled(command.FontBoolean)
}

// hasPermissionArg is one "permission=state" pair.
func hasPermissionArg() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	entry.Branch(
		command.Identifier("permission").
			Note("permission name").
			Branch(
				equals().Branch(
					permissionState().Branch(exit),
				),
			),
	)
	return command.Wrap(entry, exit)
}

// selectorArg is one "name=value" selector argument. Argument names
// match case-insensitively; declaration order drives completion order.
func selectorArg() *command.Node {
	entry, exit := command.Empty(), command.Empty()
	arg := func(name, note string, value *command.Node, opts ...command.BranchOption) {
		entry.Branch(
			command.KeywordCI(name).
				Note(note).
				Branch(
					equals().Branch(
						value.Branch(exit),
					),
				),
			opts...,
		)
	}

	arg("r", "maximum distance", command.Float().Ranged(0, maxFloatBound))
	arg("rm", "minimum distance", command.Float().Ranged(0, maxFloatBound))
	arg("dx", "volume size along x", command.Float())
	arg("dy", "volume size along y", command.Float())
	arg("dz", "volume size along z", command.Float())
	arg("x", "anchor x", pos("x"))
	arg("y", "anchor y", pos("y"))
	arg("z", "anchor z", pos("z"))
	arg("scores", "score requirements", selectorSeries('{', '}', scoresArg(), false))
	arg("tag", "required tag", command.Invertable(rawTag()))
	arg("name", "entity name", command.Invertable(command.String().Styled(command.FontString)))
	arg("type", "entity type", command.Invertable(command.Identifier("entity")))
	arg("family", "entity family", command.Invertable(command.Identifier("family")))
	arg("rx", "maximum x rotation", command.Float().Ranged(-90, 90))
	arg("rxm", "minimum x rotation", command.Float().Ranged(-90, 90))
	arg("ry", "maximum y rotation", command.Float().Ranged(-180, 180))
	arg("rym", "minimum y rotation", command.Float().Ranged(-180, 180))
	arg("hasitem", "item requirements", hasItem())
	arg("l", "maximum experience level", command.Integer().Ranged(0, maxIntBound))
	arg("lm", "minimum experience level", command.Integer().Ranged(0, maxIntBound))
	arg("m", "game mode", GameMode(false))
	arg("c", "selection count limit", command.Integer())
	arg("haspermission", "permission requirements",
		selectorSeries('{', '}', hasPermissionArg(), false),
		command.When(command.Since(command.V(1, 19, 80))))

	return command.Wrap(entry, exit)
}

const (
	maxFloatBound = 3.4e38
	maxIntBound   = 2147483647
)

var selectorVarNotes = map[string]string{
	"a":         "all players",
	"e":         "all entities",
	"r":         "a random player",
	"p":         "the nearest player",
	"s":         "the executing entity",
	"initiator": "the interacting player",
}

// Selector matches a target: a player name, a quoted name, or an
// "@var[...]" selector with its nested argument list.
func Selector(note string) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	vars := command.EnumerateNoted(
		[]string{"a", "e", "r", "p", "s", "initiator"}, selectorVarNotes,
	).Styled(command.FontTarget)
	vars.Branch(selectorSeries('[', ']', selectorArg(), false).Branch(exit))
	vars.Branch(exit)
	entry.Branch(
		command.Char('@').
			Styled(command.FontTarget).
			Note(note).
			Branch(vars, command.Close()),
	)
	entry.Branch(
		command.String().
			Styled(command.FontTarget).
			Note(note).
			Branch(exit),
	)
	return command.Wrap(entry, exit)
}
