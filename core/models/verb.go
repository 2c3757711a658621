package models

// Verb is the HTTP method declared by a mapping annotation. Any marks a
// verb-agnostic mapping (@RequestMapping), which matches every method.
type Verb int

const (
	Any Verb = iota
	Get
	Post
	Put
	Patch
	Delete
	Options
	Head
)

func (v Verb) String() string {
	switch v {
	case Any:
		return "ANY"
	case Get:
		return "GET"
	case Post:
		return "POST"
	case Put:
		return "PUT"
	case Patch:
		return "PATCH"
	case Delete:
		return "DELETE"
	case Options:
		return "OPTIONS"
	case Head:
		return "HEAD"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML renders verbs by their canonical method name instead of the
// underlying integer.
func (v Verb) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}
