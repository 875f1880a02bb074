package form

// Event is something a render layer asks the controller to do.
type Event interface {
	isEvent()
}

// FieldChanged carries the new raw value of one input.
type FieldChanged struct {
	Field Field
	Value string
}

// Submitted is the submit trigger.
type Submitted struct{}

func (FieldChanged) isEvent() {}
func (Submitted) isEvent()    {}
