package ports

// OutlinePreviewer renders a raw outline into sanitized HTML so frontends
// can show the draft before the user edits it.
type OutlinePreviewer interface {
	Preview(outline string) (string, error)
}
