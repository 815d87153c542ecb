package model

// Gender is used for display only.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Child belongs to exactly one user and owns an ordered list of tasks.
type Child struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Gender Gender  `json:"gender"`
	Tasks  []*Task `json:"tasks"`
}

// Task returns the owned task with the given id.
func (c *Child) Task(id string) (*Task, bool) {
	for _, task := range c.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return nil, false
}

// RemoveTask deletes the task with the given id, ledger included.
// Reports whether a task was removed.
func (c *Child) RemoveTask(id string) bool {
	for i, task := range c.Tasks {
		if task.ID == id {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
