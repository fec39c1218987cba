package models

// VisibilityPolicy controls, per entity type, whether soft-deleted rows are
// excluded at fetch time. The defaults mirror the historical behavior of the
// application: posts and follow edges are filtered, comments are not (the
// consumer sees the Deleted flag and decides).
type VisibilityPolicy struct {
	FilterPosts    bool
	FilterComments bool
	FilterFollows  bool
}

// DefaultVisibility returns the policy used in production.
func DefaultVisibility() VisibilityPolicy {
	return VisibilityPolicy{
		FilterPosts:    true,
		FilterComments: false,
		FilterFollows:  true,
	}
}
