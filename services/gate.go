package services

import (
	"fmt"
	"scrapbook/contract"
	"scrapbook/domain"
	"scrapbook/errors"
)

// requireOwner lets the signed-in identity act on its own namespace only.
// Absent identity is ErrUnauthenticated, somebody else's namespace ErrPermissionDenied.
func requireOwner(session contract.ISessionTracker, ownerID string) (domain.Identity, error) {
	identity, err := session.Require()
	if err != nil {
		return domain.Identity{}, err
	}
	if identity.ID != ownerID {
		return domain.Identity{}, fmt.Errorf("%w: %s cannot act on behalf of %s", errors.ErrPermissionDenied, identity.ID, ownerID)
	}
	return identity, nil
}
