// Package notice builds, writes, and verifies the aggregate third-party
// notices document.
package notice

import "strings"

var (
	separatorRow = strings.Repeat("=", 79)

	// spacer separates license blocks: a blank line, three separator rows,
	// a blank line.
	spacer = "\n\n" + separatorRow + "\n" + separatorRow + "\n" + separatorRow + "\n\n"
)

// Aggregator groups license texts by exact content, preserving the order
// in which distinct texts are first seen. Two texts are the same license
// iff they are byte-identical; no normalization is applied.
type Aggregator struct {
	order    []string            // distinct texts, first-discovery order
	packages map[string][]string // text -> coordinates sharing it
}

func NewAggregator() *Aggregator {
	return &Aggregator{packages: make(map[string][]string)}
}

// Add associates pkg with the given license text, opening a new group the
// first time a distinct text is seen.
func (a *Aggregator) Add(text, pkg string) {
	if _, ok := a.packages[text]; !ok {
		a.order = append(a.order, text)
	}
	a.packages[text] = append(a.packages[text], pkg)
}

// Render produces the full document body: one block per distinct license
// text, in first-discovery order. Rendering the same aggregator twice
// yields byte-identical output.
func (a *Aggregator) Render() string {
	var b strings.Builder
	for _, text := range a.order {
		b.WriteString("License for package(s): ")
		b.WriteString(packageList(a.packages[text]))
		b.WriteString("\n\n")
		b.WriteString(text)
		b.WriteString(spacer)
	}
	return b.String()
}

// packageList renders coordinates in the bracketed single-quoted form the
// notices file has always used, e.g. ['org.a:lib', 'org.b:lib'].
func packageList(pkgs []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pkgs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(p)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}
