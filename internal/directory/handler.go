package directory

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
)

type Handler struct {
	members []guild.Member
}

func NewHandler(members []guild.Member) *Handler {
	return &Handler{members: members}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get(QueryParam))
	filtered := Filter(h.members, query)

	responses := make([]MemberResponse, 0, len(filtered))
	for _, m := range filtered {
		responses = append(responses, toResponse(m))
	}
	config.JSON(w, http.StatusOK, responses)
}
