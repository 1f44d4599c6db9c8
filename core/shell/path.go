package shell

import "strings"

// SearchPath is the ordered list of directories external commands are looked
// up in.
type SearchPath []string

// Candidates returns the paths to try for the command name, one per
// directory, in search order. Each candidate is built fresh so directories
// are never modified by the lookup.
func (p SearchPath) Candidates(name string) []string {
	out := make([]string, 0, len(p))
	for _, dir := range p {
		out = append(out, dir+"/"+name)
	}
	return out
}

// String joins the directories with ":" like the PATH variable.
func (p SearchPath) String() string {
	return strings.Join(p, ":")
}
