package directory

import (
	"strings"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

// Filter keeps members whose name, username or role contains query, ignoring
// case. An empty query keeps everyone.
func Filter(members []guild.Member, query string) []guild.Member {
	q := strings.ToLower(query)
	out := make([]guild.Member, 0, len(members))
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Username), q) ||
			strings.Contains(strings.ToLower(m.Role), q) {
			out = append(out, m)
		}
	}
	return out
}
