package model

// User owns an ordered list of children. The email is the key of the
// document's user map and is not duplicated here; the PIN field holds
// a one-way hex digest, never the raw PIN.
type User struct {
	PIN      string   `json:"pin"`
	Children []*Child `json:"children"`
}

// Child returns the owned child with the given id.
func (u *User) Child(id string) (*Child, bool) {
	for _, child := range u.Children {
		if child.ID == id {
			return child, true
		}
	}
	return nil, false
}

// RemoveChild deletes the child with the given id, destroying all of
// its tasks with it. Reports whether a child was removed.
func (u *User) RemoveChild(id string) bool {
	for i, child := range u.Children {
		if child.ID == id {
			u.Children = append(u.Children[:i], u.Children[i+1:]...)
			return true
		}
	}
	return false
}
