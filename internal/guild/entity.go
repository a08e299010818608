package guild

type Event struct {
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"`
	Time        string `yaml:"time" json:"time"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
}

// Task is a reminder checklist entry. ID is the key stored in the completion
// set and must equal the task's position in the list; reordering tasks
// invalidates completion state already saved by visitors.
type Task struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Member struct {
	Name     string `yaml:"name" json:"name"`
	Username string `yaml:"username" json:"username"`
	Role     string `yaml:"role" json:"role"`
	JoinDate string `yaml:"join_date" json:"join_date"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	Council  bool   `yaml:"council" json:"council"`
	Bio      string `yaml:"bio,omitempty" json:"bio,omitempty"`
}
