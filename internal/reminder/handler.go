package reminder

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/ignite-guild/internal/config"
	"github.com/saulo-duarte/ignite-guild/internal/guild"
	"github.com/saulo-duarte/ignite-guild/internal/visitor"
)

type Handler struct {
	service Service
	tasks   []guild.Task
}

func NewHandler(service Service, tasks []guild.Task) *Handler {
	return &Handler{service: service, tasks: tasks}
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		log.WithError(err).Warn("Invalid task index")
		http.Error(w, "invalid task index", http.StatusBadRequest)
		return
	}

	visitorID, _ := visitor.FromContext(r.Context())
	set, err := h.service.Toggle(r.Context(), visitorID, index)
	if err != nil {
		if errors.Is(err, ErrTaskOutOfRange) {
			log.WithField("index", index).Warn("Task index out of range")
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to toggle reminder")
		set = h.service.Load(r.Context(), visitorID)
	}

	h.respond(w, r, set)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	visitorID, _ := visitor.FromContext(r.Context())
	set, err := h.service.Clear(r.Context(), visitorID)
	if err != nil {
		log.WithError(err).Error("Failed to clear reminders")
		set = h.service.Load(r.Context(), visitorID)
	}

	h.respond(w, r, set)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.FromContext(r.Context())
	config.JSON(w, http.StatusOK, h.checklist(h.service.Load(r.Context(), visitorID)))
}

// respond sends API clients the checklist and redirects browsers back to the
// re-rendered page. After a failed write the checklist is whatever is stored.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, set CompletionSet) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		config.JSON(w, http.StatusOK, h.checklist(set))
		return
	}
	http.Redirect(w, r, PagePath, http.StatusSeeOther)
}

func (h *Handler) checklist(set CompletionSet) ChecklistResponse {
	tasks := make([]TaskResponse, 0, len(h.tasks))
	for _, t := range h.tasks {
		tasks = append(tasks, TaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   set.Has(t.ID),
		})
	}
	return ChecklistResponse{Tasks: tasks, Completed: set}
}
