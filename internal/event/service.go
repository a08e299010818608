package event

import (
	"sort"

	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

// Sorted returns a copy of events ordered by date. Events on the same day keep
// their source order.
func Sorted(events []guild.Event) []guild.Event {
	out := append([]guild.Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		return util.ParseLocalDate(out[i].Date).Before(util.ParseLocalDate(out[j].Date))
	})
	return out
}
