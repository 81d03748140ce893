package handler

import (
	"net/http"

	"ukoradar/internal/app/session"
	"ukoradar/internal/pkg/auth/jwt"
	"ukoradar/internal/pkg/errs"
)

// viewerSession resolves the authenticated viewer's live session, creating
// one on first touch. Requests without a valid token are rejected.
func viewerSession(deps *AppDeps, r *http.Request) (*session.Session, *jwt.Payload, *errs.CustomError) {
	identity := jwt.GetPayloadFromContext(r)
	if identity == nil {
		return nil, nil, errs.NewError(errs.ErrUnauthorized)
	}

	sess := deps.Sessions.Open(identity.ProfileID, identity.Name)
	return sess, identity, nil
}
