package aggregate

// Cell is one table cell. Pages render Text escaped; Badge, when set, wraps the text in a
// badge of that colour and Link turns it into an anchor.
type Cell struct {
	Text   string
	Badge  string
	Link   string
	Strong bool
	Mono   bool
}

// Section is a titled table of a report or search result.
type Section struct {
	Key     string
	Title   string
	Icon    string
	Columns []string
	Rows    [][]Cell
}

// Tile is a headline counter.
type Tile struct {
	Key   string
	Label string
	Value string
	Color string
}

func text(s string) Cell {
	return Cell{Text: s}
}

func badge(s, color string) Cell {
	return Cell{Text: s, Badge: color}
}
