// Package policy evaluates content visibility and mutation rights. All
// checks are pure predicates over already-fetched data; callers load the
// content and the actor's affiliation first.
package policy

import (
	"lagtalk/internal/auth"
	"lagtalk/internal/model"
)

// Content is the visibility-relevant projection of a post or comment.
type Content struct {
	OwnerID     string
	Privacy     model.PostPrivacy
	SchoolScope string
}

// Affiliation is the actor's resolved institution link. InstitutionAdmin is
// true when the actor holds an institution profile for InstitutionID.
type Affiliation struct {
	InstitutionID    string
	InstitutionAdmin bool
}

// CanView reports whether the actor may read the content. A nil actor is
// anonymous. Owners always see their own content and admins see everything;
// school_only content otherwise requires a matching institution affiliation.
func CanView(actor *auth.Identity, aff Affiliation, c Content) bool {
	if c.Privacy == model.PrivacyPublic {
		return true
	}
	if actor == nil {
		return false
	}
	if actor.ID == c.OwnerID || actor.Role == auth.RoleAdmin {
		return true
	}

	switch c.Privacy {
	case model.PrivacySchoolOnly:
		return c.SchoolScope != "" && aff.InstitutionID == c.SchoolScope
	case model.PrivacyFollowersOnly:
		// owner-only until a follower graph exists
		return false
	default:
		return false
	}
}

// CanMutate reports whether the actor may edit or delete the content: the
// owner, an admin, or an institution admin of the content's school scope.
func CanMutate(actor *auth.Identity, aff Affiliation, c Content) bool {
	if actor == nil {
		return false
	}
	if actor.ID == c.OwnerID || actor.Role == auth.RoleAdmin {
		return true
	}
	return c.SchoolScope != "" && aff.InstitutionAdmin && aff.InstitutionID == c.SchoolScope
}
