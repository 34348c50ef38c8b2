package models

// EngagementKind selects one of the two structurally identical engagement
// sets on a course. Both kinds share a single toggle implementation; only
// the backing set differs.
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementFavorite EngagementKind = "favorite"
)
