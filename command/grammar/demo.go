package grammar

import (
	"github.com/bedrock-tools/mccmd/command"
)

// Demo builds the small grammar used in documentation and tests:
//
//	foo spam <count> <enabled>
//	foo spam <duration>L <target>
//	foo eggs honey|chocolate|boston_cream
//
// The duration integer is loose so the "L" unit suffix attaches
// without whitespace.
func Demo() *command.Node {
	root := command.Empty()
	root.Branch(
		command.Keyword("foo").
			Note("demo command").
			Branch(
				command.Keyword("spam").
					Note("spam variant").
					Branch(
						command.Integer().NonZero().
							Note("count").
							Branch(
								command.Boolean().
									Note("enabled").
									Finish(),
							),
					).
					Branch(
						command.Integer().Loose().
							Note("duration").
							Branch(
								command.Char('L').
									Note("duration unit").
									Branch(
										Selector("target").Finish(),
									),
								command.Close(),
							),
					),
			).
			Branch(
				command.Keyword("eggs").
					Note("eggs variant").
					Branch(
						command.Enumerate("honey", "chocolate", "boston_cream").
							Note("flavor").
							Finish(),
					),
			),
	)
	return root.Freeze(command.V(1, 20, 0))
}
