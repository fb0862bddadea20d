package auth

import "strings"

// CatalogPolicy decides who may create, update and delete products.
// Membership is by email claim, compared case-insensitively.
type CatalogPolicy struct {
	admins map[string]struct{}
}

func NewCatalogPolicy(adminEmails []string) *CatalogPolicy {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}
	return &CatalogPolicy{admins: admins}
}

func (p *CatalogPolicy) CanManageCatalog(claims *Claims) bool {
	if claims == nil || claims.Email == "" {
		return false
	}
	_, ok := p.admins[strings.ToLower(claims.Email)]
	return ok
}
