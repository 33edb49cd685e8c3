package grammar

import (
	"github.com/bedrock-tools/mccmd/command"
)

// commandName is the leading keyword of a command, with any aliases.
func commandName(note string, name string, aliases ...string) *command.Node {
	var n *command.Node
	if len(aliases) == 0 {
		n = command.Keyword(name)
	} else {
		n = command.Enumerate(append([]string{name}, aliases...)...)
	}
	return n.Styled(command.FontCommand).Note(note)
}

// charsChoice matches one of several multi-character literals, each a
// single completion suggestion.
func charsChoice(note string, options ...string) *command.Node {
	entry, exit := command.Empty(), command.Empty()
	for _, option := range options {
		entry.Branch(command.Chars(option).Note(note).Branch(exit))
	}
	return command.Wrap(entry, exit)
}

// build assembles the full command graph. Version-gated branches carry
// When predicates; Freeze prunes them for the version being built.
func build() *command.Node {
	root := command.Empty()

	root.Branch(
		commandName("show command help", "help", "?").
			Branch(command.Integer().Note("help page").Finish()).
			Branch(command.Word().Note("command to describe").Finish()).
			Finish(),
	)

	root.Branch(
		commandName("grant or revoke a player ability", "ability").
			Branch(
				Selector("player").
					Branch(
						command.EnumerateNoted(
							[]string{"mayfly", "worldbuilder", "mute"},
							map[string]string{
								"mayfly":       "permission to fly",
								"worldbuilder": "permission to edit",
								"mute":         "prevents chat",
							},
						).
							Branch(command.Boolean().Note("new state").Finish()).
							Finish(),
					).
					Finish(),
			),
	)

	root.Branch(
		commandName("lock or unlock the day-night cycle", "alwaysday", "daylock").
			Branch(command.Boolean().Note("lock the cycle").Finish()).
			Finish(),
	)

	root.Branch(
		commandName("shake the camera", "camerashake").
			Branch(
				command.Keyword("add").
					Note("start a new shake").
					Branch(
						Selector("affected players").
							Branch(
								command.Float().Ranged(0, 4).
									Note("shake intensity").
									Branch(
										command.Float().Ranged(0, maxFloatBound).
											Note("shake seconds").
											Branch(
												command.EnumerateNoted(
													[]string{"positional", "rotational"},
													map[string]string{
														"positional": "shake the camera position",
														"rotational": "shake the camera rotation",
													},
												).Finish(),
											).
											Finish(),
									).
									Finish(),
							).
							Finish(),
					),
			).
			Branch(
				command.Keyword("stop").
					Note("stop shaking").
					Branch(Selector("affected players").Finish()).
					Finish(),
			),
	)

	root.Branch(
		commandName("remove items from inventories", "clear").
			Branch(
				Selector("target players").
					Branch(
						command.Identifier("item").
							Note("item to remove").
							Branch(
								ItemData(true).
									Branch(
										command.Integer().Ranged(-1, maxIntBound).
											Note("maximum count to remove").
											Finish(),
									).
									Finish(),
							).
							Finish(),
					).
					Finish(),
			).
			Finish(),
	)

	root.Branch(
		commandName("clear a spawn point", "clearspawnpoint").
			Branch(Selector("target players").Finish()).
			Finish(),
	)

	root.Branch(
		commandName("deal damage", "damage").
			Branch(
				Selector("damaged entities").
					Branch(
						command.Integer().Ranged(0, maxIntBound).
							Note("damage amount").
							Branch(
								command.Identifier("damage").
									Note("damage cause").
									Branch(
										command.Keyword("entity").
											Note("attribute the damage to an entity").
											Branch(Selector("damaging entity").Finish()),
									).
									Finish(),
							).
							Finish(),
					),
			),
	)

	root.Branch(
		commandName("revoke operator status", "deop").
			Branch(Selector("target players").Finish()),
	)

	root.Branch(
		commandName("set the world difficulty", "difficulty").
			Branch(
				command.EnumerateNoted(
					[]string{"0", "1", "2", "3"},
					map[string]string{
						"0": "peaceful", "1": "easy", "2": "normal", "3": "hard",
					},
				).
					Styled(command.FontNumber).
					Note("difficulty by numeric id").
					Finish(),
			).
			Branch(
				command.EnumerateNoted(
					[]string{"peaceful", "easy", "normal", "hard", "p", "e", "n", "h"},
					map[string]string{
						"peaceful": "no hostile mobs",
						"easy":     "easy difficulty",
						"normal":   "normal difficulty",
						"hard":     "hard difficulty",
						"p":        "no hostile mobs",
						"e":        "easy difficulty",
						"n":        "normal difficulty",
						"h":        "hard difficulty",
					},
				).Finish(),
			),
	)

	root.Branch(
		commandName("apply or clear status effects", "effect").
			Branch(
				Selector("affected entities").
					Branch(command.Keyword("clear").Note("remove every effect").Finish()).
					Branch(
						command.Identifier("effect").
							Note("effect to apply").
							Branch(
								command.Integer().Ranged(0, maxIntBound).
									Note("duration in seconds").
									Branch(
										command.Integer().Ranged(0, 255).
											Note("effect amplifier").
											Branch(
												command.Boolean().
													Note("hide effect particles").
													Finish(),
											).
											Finish(),
									).
									Finish(),
							).
							Finish(),
					),
			),
	)

	root.Branch(
		commandName("enchant a held item", "enchant").
			Branch(
				Selector("target players").
					Branch(
						command.Identifier("enchantment").
							Note("enchantment to apply").
							Branch(
								command.Integer().Ranged(1, maxIntBound).
									Note("enchantment level").
									Finish(),
							).
							Finish(),
					),
			),
	)

	root.Branch(
		commandName("run a command with changed context", "execute").
			Branch(executeChain(root)),
	)

	root.Branch(
		commandName("change a player's game mode", "gamemode").
			Branch(
				GameMode(true).
					Branch(Selector("target players").Finish()).
					Finish(),
			),
	)

	root.Branch(
		commandName("give items", "give").
			Branch(
				Selector("target players").
					Branch(
						command.Identifier("item").
							Note("item to give").
							Branch(
								ItemAmount("amount to give").
									Branch(ItemData(false).Finish()).
									Finish(),
							).
							Finish(),
					),
			),
	)

	root.Branch(
		commandName("kill entities", "kill").
			Branch(Selector("target entities").Finish()).
			Finish(),
	)

	root.Branch(commandName("list connected players", "list").Finish())

	root.Branch(
		commandName("send a narrated chat message", "me").
			Branch(command.BareText(false).Note("message").Finish()),
	)

	root.Branch(
		commandName("broadcast a chat message", "say").
			Branch(command.BareText(false).Note("message").Finish()),
	)

	root.Branch(
		commandName("manage scoreboard objectives and scores", "scoreboard").
			Branch(scoreboardObjectives()).
			Branch(scoreboardPlayers()),
	)

	root.Branch(
		commandName("place a block", "setblock").
			Branch(
				Pos3D().
					Branch(
						command.Identifier("block").
							Note("block to place").
							Branch(
								// Block data is gone from 1.19.70 on.
								command.Integer().Ranged(0, 15).
									Note("block data value").
									Branch(setblockMode()).
									Finish(),
								command.When(command.Until(command.V(1, 19, 70))),
							).
							Branch(setblockMode()).
							Finish(),
					),
			),
	)

	root.Branch(
		commandName("summon an entity", "summon").
			Branch(
				command.Identifier("entity").
					Note("entity to summon").
					Branch(Pos3D().Finish()).
					Branch(command.String().Note("name tag").Finish()).
					Finish(),
			),
	)

	root.Branch(
		commandName("manage entity tags", "tag").
			Branch(
				command.Wildcard(Selector("target entities")).
					Branch(
						command.EnumerateNoted(
							[]string{"add", "remove"},
							map[string]string{"add": "add a tag", "remove": "remove a tag"},
						).
							Branch(
								command.String().
									Styled(command.FontTag).
									Note("tag name").
									Finish(),
							),
					).
					Branch(command.Keyword("list").Note("list tags").Finish()),
			),
	)

	root.Branch(
		commandName("change or query the time", "time").
			Branch(
				command.Keyword("set").
					Note("set the time of day").
					Branch(command.Integer().Note("time in ticks").Finish()).
					Branch(
						command.Enumerate(
							"day", "noon", "night", "sunrise", "sunset", "midnight",
						).Note("named time of day").Finish(),
					),
			).
			Branch(
				command.Keyword("add").
					Note("advance the time").
					Branch(command.Integer().Note("ticks to add").Finish()),
			).
			Branch(
				command.Keyword("query").
					Note("query the time").
					Branch(
						command.EnumerateNoted(
							[]string{"daytime", "gametime", "day"},
							map[string]string{
								"daytime":  "time of day in ticks",
								"gametime": "ticks since world start",
								"day":      "days elapsed",
							},
						).Finish(),
					),
			),
	)

	root.Branch(
		commandName("count matching entities", "testfor").
			Branch(Selector("entities to test for").Finish()),
	)

	root.Branch(
		commandName("teleport entities", "tp", "teleport").
			Branch(
				Selector("entities to teleport").
					Branch(Selector("destination entity").Finish()).
					Branch(
						Pos3D().
							Branch(YawPitch().Finish()).
							Finish(),
					),
			).
			Branch(Pos3D().Finish()),
	)

	root.Branch(
		commandName("change the weather", "weather").
			Branch(
				command.EnumerateNoted(
					[]string{"clear", "rain", "thunder"},
					map[string]string{
						"clear":   "clear skies",
						"rain":    "rain",
						"thunder": "thunderstorm",
					},
				).
					Branch(
						command.Integer().Ranged(0, maxIntBound).
							Note("duration in ticks").
							Finish(),
					).
					Finish(),
			).
			Branch(command.Keyword("query").Note("query the weather").Finish()),
	)

	root.Branch(
		commandName("grant experience", "xp").
			Branch(
				command.Integer().Loose().
					Note("experience levels").
					Branch(
						command.Char('L').
							Note("level unit").
							Branch(Selector("target players").Finish()).
							Finish(),
						command.Close(),
					).
					Branch(Selector("target players").Finish(), command.AtBoundary()).
					Finish(command.AtBoundary()),
			),
	)

	return root
}

// objectiveName is a scoreboard objective reference.
func objectiveName(note string) *command.Node {
	return command.String().Styled(command.FontScoreboard).Note(note)
}

// scoreboardObjectives is the "scoreboard objectives ..." subtree.
func scoreboardObjectives() *command.Node {
	return command.Keyword("objectives").
		Note("manage objectives").
		Branch(
			command.Keyword("add").
				Note("create an objective").
				Branch(
					objectiveName("objective name").
						Branch(
							command.Keyword("dummy").
								Note("criteria").
								Branch(
									command.String().Note("display name").Finish(),
								).
								Finish(),
						),
				),
		).
		Branch(
			command.Keyword("remove").
				Note("delete an objective").
				Branch(objectiveName("objective to remove").Finish()),
		).
		Branch(command.Keyword("list").Note("list objectives").Finish()).
		Branch(
			command.Keyword("setdisplay").
				Note("choose where scores show").
				Branch(
					command.EnumerateNoted(
						[]string{"list", "sidebar", "belowname"},
						map[string]string{
							"list":      "the pause screen list",
							"sidebar":   "the sidebar",
							"belowname": "under entity names",
						},
					).
						Branch(objectiveName("objective to display").Finish()).
						Finish(),
				),
		)
}

// scoreboardPlayers is the "scoreboard players ..." subtree.
func scoreboardPlayers() *command.Node {
	holder := func() *command.Node {
		return command.Wildcard(Selector("score holder"))
	}
	amount := func(verb, note string) *command.Node {
		return command.Keyword(verb).
			Note(note).
			Branch(
				holder().Branch(
					objectiveName("objective").Branch(
						command.Integer().Note("amount").Finish(),
					),
				),
			)
	}

	return command.Keyword("players").
		Note("manage scores").
		Branch(amount("set", "set a score")).
		Branch(amount("add", "add to a score")).
		Branch(amount("remove", "subtract from a score")).
		Branch(
			command.Keyword("reset").
				Note("remove scores").
				Branch(
					holder().
						Branch(objectiveName("objective to reset").Finish()).
						Finish(),
				),
		).
		Branch(
			command.Keyword("list").
				Note("list tracked scores").
				Branch(holder().Finish()).
				Finish(),
		).
		Branch(
			command.Keyword("test").
				Note("test a score against a range").
				Branch(
					holder().Branch(
						objectiveName("objective").Branch(
							IntRange().Finish(),
						),
					),
				),
		).
		Branch(
			command.Keyword("random").
				Note("set a score to a random value").
				Branch(
					holder().Branch(
						objectiveName("objective").Branch(
							command.Integer().Note("lowest value").Branch(
								command.Integer().Note("highest value").Finish(),
							),
						),
					),
				),
		)
}

// setblockMode is the optional final placement-mode argument.
func setblockMode() *command.Node {
	entry := command.Empty()
	entry.Branch(
		command.EnumerateNoted(
			[]string{"destroy", "keep", "replace"},
			map[string]string{
				"destroy": "break the current block first",
				"keep":    "only place into air",
				"replace": "replace the current block",
			},
		).Finish(),
	)
	entry.Finish()
	return entry
}

// executeChain is the shared subcommand chain of /execute. "run" loops
// back to the command root; the walker's depth bound keeps pathological
// chains finite.
func executeChain(root *command.Node) *command.Node {
	exec := command.Empty()

	sub := func(word, note string) *command.Node {
		return command.Keyword(word).Note(note)
	}

	cond := command.Empty()
	cond.Branch(
		sub("block", "test for a block").
			Branch(
				Pos3D().
					Branch(
						command.Identifier("block").
							Note("block to test for").
							Branch(exec).
							Finish(),
					),
			),
	)
	cond.Branch(
		sub("entity", "test for entities").
			Branch(
				Selector("entities to test for").
					Branch(exec).
					Finish(),
			),
	)
	cond.Branch(
		sub("score", "test a scoreboard value").
			Branch(
				ScoreSpec(false).
					Branch(
						command.Keyword("matches").
							Note("test against a range").
							Branch(
								IntRange().
									Branch(exec).
									Finish(),
							),
					).
					Branch(
						charsChoice("comparison operator", "=", "<=", ">=", "<", ">").
							Branch(
								ScoreSpec(false).
									Branch(exec).
									Finish(),
							),
					),
			),
	)

	exec.Branch(
		sub("align", "snap position to the block grid").
			Branch(
				command.Enumerate("x", "y", "z", "xy", "xz", "yz", "xyz").
					Note("axes to align").
					Branch(exec),
			),
	)
	exec.Branch(
		sub("anchored", "anchor position to eyes or feet").
			Branch(
				command.EnumerateNoted(
					[]string{"eyes", "feet"},
					map[string]string{"eyes": "anchor to eye level", "feet": "anchor to feet"},
				).Branch(exec),
			),
	)
	exec.Branch(
		sub("as", "run as other entities").
			Branch(Selector("executing entities").Branch(exec)),
	)
	exec.Branch(
		sub("at", "run at other entities' positions").
			Branch(Selector("position source").Branch(exec)),
	)
	exec.Branch(
		sub("facing", "face a position or entity").
			Branch(Pos3D().Branch(exec)).
			Branch(
				command.Keyword("entity").
					Note("face an entity").
					Branch(
						Selector("entity to face").
							Branch(
								command.EnumerateNoted(
									[]string{"eyes", "feet"},
									map[string]string{
										"eyes": "face the eyes",
										"feet": "face the feet",
									},
								).Branch(exec),
							),
					),
			),
	)
	exec.Branch(
		sub("in", "run in another dimension").
			Branch(
				command.EnumerateNoted(
					[]string{"overworld", "nether", "the_end"},
					map[string]string{
						"overworld": "the overworld",
						"nether":    "the nether",
						"the_end":   "the end",
					},
				).Branch(exec),
			),
	)
	exec.Branch(
		sub("positioned", "run from another position").
			Branch(Pos3D().Branch(exec)).
			Branch(
				command.Keyword("as").
					Note("use an entity's position").
					Branch(Selector("position source").Branch(exec)),
			),
	)
	exec.Branch(
		sub("rotated", "run with another rotation").
			Branch(YawPitch().Branch(exec)).
			Branch(
				command.Keyword("as").
					Note("use an entity's rotation").
					Branch(Selector("rotation source").Branch(exec)),
			),
	)
	exec.Branch(sub("if", "run only when a test passes").Branch(cond))
	exec.Branch(sub("unless", "run only when a test fails").Branch(cond))
	exec.Branch(sub("run", "the command to run").Branch(root))

	return exec
}
