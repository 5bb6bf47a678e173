package tree

import (
	"fmt"
	"strings"
)

/*
Format takes the root of a tree and returns a human readable rendering
of it, one node per line with branches drawn in ASCII. Branches are
sorted by value so the output is stable.
*/
func Format(n Node) string {
	return subtreeString(n, "")
}

func subtreeString(n Node, criterion string) string {
	var result string
	if criterion != "" {
		result = fmt.Sprintf("{ %s }\n", criterion)
	}
	switch n := n.(type) {
	case Leaf:
		return fmt.Sprintf("%s=> %s\n", result, n.Label)
	case *Internal:
		result = fmt.Sprintf("%s[%s]\n", result, n.Feature)
		values := n.Values()
		if len(values) > 0 {
			result = fmt.Sprintf("%s|\n", result)
		}
		for i, v := range values {
			st := subtreeString(n.Children[v], fmt.Sprintf("%s is %s", n.Feature, v))
			for j, line := range strings.Split(st, "\n") {
				if len(line) == 0 {
					continue
				}
				switch {
				case j == 0:
					result = fmt.Sprintf("%s|__%s\n", result, line)
				case i == len(values)-1:
					result = fmt.Sprintf("%s   %s\n", result, line)
				default:
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
		return result
	}
	return fmt.Sprintf("%s<unknown node %T>\n", result, n)
}
