package ports

// ContentProvider resolves a content key into response text. Render is a pure
// mapping: it must not mutate session state, and all needed data is supplied
// by value. An unresolvable key is a contract violation and returns
// domain.ErrUnknownContentKey (wrapped).
type ContentProvider interface {
	Render(key string, data map[string]string) (string, error)
}
