package models

/*
Neighbors holds the previous and next artwork ids by source row position.
An empty string means there is no artwork on that side.
*/
type Neighbors struct {
	PreviousID string
	NextID     string
}

func (n Neighbors) HasPrevious() bool {
	return n.PreviousID != ""
}

func (n Neighbors) HasNext() bool {
	return n.NextID != ""
}
