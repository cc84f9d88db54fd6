package scope

import "fridge-inventory/internal/model"

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(sc model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
}
