package reminder

type TaskResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type ChecklistResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	Completed CompletionSet  `json:"completed"`
}
