package domain

type Category struct {
	ID     uint64
	UserID uint64
	Name   string
	Tasks  []Task
}
