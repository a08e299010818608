package directory

import (
	"github.com/saulo-duarte/ignite-guild/internal/colorhash"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	util "github.com/saulo-duarte/ignite-guild/internal/utils"
)

type MemberResponse struct {
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Role     string         `json:"role"`
	JoinDate util.LocalDate `json:"join_date"`
	Tagline  string         `json:"tagline"`
	Council  bool           `json:"council"`
	Color    string         `json:"color"`
}

func toResponse(m guild.Member) MemberResponse {
	return MemberResponse{
		Name:     m.Name,
		Username: m.Username,
		Role:     m.Role,
		JoinDate: util.NewLocalDate(m.JoinDate),
		Tagline:  m.Tagline,
		Council:  m.Council,
		Color:    colorhash.StringToColor(m.Name),
	}
}
