package auth

import "github.com/google/uuid"

// RequireOwner is the single ownership check used by every mutation that
// touches a caller-owned resource: the caller's resolved profile id must
// equal the resource's stored owner id. Centralising the comparison keeps
// the per-operation checks from diverging.
func RequireOwner(callerProfileID, resourceOwnerID uuid.UUID) error {
	if callerProfileID == uuid.Nil || callerProfileID != resourceOwnerID {
		return ErrUnauthorized
	}
	return nil
}
