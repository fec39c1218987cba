package models

// Profile is an outward-facing view of a user plus the viewer-relative
// follow state and the most recent slices of both sides of the follow graph.
type Profile struct {
	User       UserSummary   `json:"user"`
	Followed   bool          `json:"followed"`
	Followers  []FollowEntry `json:"followers"`
	Followings []FollowEntry `json:"followings"`
}
