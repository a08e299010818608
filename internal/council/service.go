package council

import "github.com/saulo-duarte/ignite-guild/internal/guild"

// Members keeps the council members in their original order.
func Members(members []guild.Member) []guild.Member {
	out := make([]guild.Member, 0, len(members))
	for _, m := range members {
		if m.Council {
			out = append(out, m)
		}
	}
	return out
}
