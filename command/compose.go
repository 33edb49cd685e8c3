package command

// SeriesSpec describes a delimited, separator-joined repetition such as
// "[a,b,c]" or "{k=v, k=v}".
type SeriesSpec struct {
	Begin     *Node
	Content   *Node
	Separator *Node
	End       *Node
	// EmptyOK permits Begin immediately followed by End.
	EmptyOK bool
}

// Series builds the repetition as a composite node. The content node is
// shared between iterations, so the graph loops through it; every loop
// iteration consumes input, which keeps the walk finite.
func Series(s SeriesSpec) *Node {
	entry, exit := Empty(), Empty()
	s.End.Branch(exit)
	s.Separator.Branch(s.Content)
	s.Content.Branch(s.Separator).Branch(s.End)
	s.Begin.Branch(s.Content)
	if s.EmptyOK {
		s.Begin.Branch(s.End)
	}
	entry.Branch(s.Begin)
	return Wrap(entry, exit)
}

// Invertable allows the wrapped test to be prefixed with "!".
func Invertable(node *Node) *Node {
	entry, exit := Empty(), Empty()
	node.Branch(exit)
	entry.Branch(node)
	entry.Branch(Char('!').Note("invert the test").Branch(node))
	return Wrap(entry, exit)
}

// Wildcard allows "*" in place of the wrapped node.
func Wildcard(node *Node) *Node {
	entry, exit := Empty(), Empty()
	node.Branch(exit)
	entry.Branch(node)
	entry.Branch(Char('*').Note("match every holder").Branch(exit))
	return Wrap(entry, exit)
}
