package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// actorKey is the key used to store the authenticated actor in the Gin context.
const actorKey = contextKey("actor")

// companyIDKey is the key used to store the authenticated actor's company.
const companyIDKey = contextKey("companyID")

// GetActorFromContext retrieves the authenticated actor from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actorVal, exists := c.Get(string(actorKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(actorKey); v != nil {
			if actor, ok := v.(domain.Actor); ok {
				return actor, true
			}
		}
		return domain.Actor{}, false
	}

	actor, ok := actorVal.(domain.Actor)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return domain.Actor{}, false
	}
	return actor, true
}

// GetCompanyIDFromContext retrieves the authenticated actor's company ID from
// the Gin context.
func GetCompanyIDFromContext(c *gin.Context) (string, bool) {
	companyVal, exists := c.Get(string(companyIDKey))
	if !exists {
		if v := c.Request.Context().Value(companyIDKey); v != nil {
			if companyID, ok := v.(string); ok {
				return companyID, true
			}
		}
		return "", false
	}

	companyID, ok := companyVal.(string)
	if !ok {
		return "", false
	}
	return companyID, true
}
