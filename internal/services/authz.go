package services

import "vendorhub/internal/apperr"

// authorize is the single ownership predicate behind every mutating
// operation: the session-derived actor must be the owner of the target
// resource. An empty actor means no session identity was resolved.
func authorize(actorID, ownerID string) error {
	if actorID == "" {
		return apperr.ErrUnauthenticated
	}
	if actorID != ownerID {
		return apperr.ErrForbidden
	}
	return nil
}
