package guild

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrTaskOrder = errors.New("task ids must match their list positions")

// Store holds the guild's immutable collections. Accessors hand out copies.
type Store struct {
	events  []Event
	tasks   []Task
	members []Member
}

type dataFile struct {
	Events  []Event  `yaml:"events"`
	Tasks   []Task   `yaml:"tasks"`
	Members []Member `yaml:"members"`
}

func NewStore(events []Event, tasks []Task, members []Member) (*Store, error) {
	for i, t := range tasks {
		if t.ID != i {
			return nil, fmt.Errorf("%w: task %q has id %d at position %d", ErrTaskOrder, t.Title, t.ID, i)
		}
	}
	return &Store{
		events:  append([]Event(nil), events...),
		tasks:   append([]Task(nil), tasks...),
		members: append([]Member(nil), members...),
	}, nil
}

// Load reads a YAML data file with events, tasks and members sections.
// Sections left out of the file fall back to the built-in sample data.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guild data: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Store, error) {
	var f dataFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse guild data: %w", err)
	}
	if f.Events == nil {
		f.Events = sampleEvents
	}
	if f.Tasks == nil {
		f.Tasks = sampleTasks
	}
	if f.Members == nil {
		f.Members = sampleMembers
	}
	return NewStore(f.Events, f.Tasks, f.Members)
}

// Default returns the built-in sample data set.
func Default() *Store {
	s, err := NewStore(sampleEvents, sampleTasks, sampleMembers)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Events() []Event {
	return append([]Event(nil), s.events...)
}

func (s *Store) Tasks() []Task {
	return append([]Task(nil), s.tasks...)
}

func (s *Store) Members() []Member {
	return append([]Member(nil), s.members...)
}

func (s *Store) TaskCount() int {
	return len(s.tasks)
}
