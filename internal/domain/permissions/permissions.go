// Package permissions holds the access predicates for accounts and
// products. Every predicate is a pure function of the request method, the
// authenticated user (nil when anonymous) and, where relevant, the target.
package permissions

import (
	"net/http"

	"github.com/hitaloss/business/internal/domain/entities"
)

// IsSafeMethod reports whether method only reads state.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func IsAuthenticated(actor *entities.User) bool {
	return actor != nil
}

// CanWriteProducts guards the product collection: anyone may read, only
// sellers may create.
func CanWriteProducts(method string, actor *entities.User) bool {
	if IsSafeMethod(method) {
		return true
	}
	if !IsAuthenticated(actor) {
		return false
	}
	return actor.IsSeller
}

// CanWriteProduct guards a single product: anyone may read, only the
// owning user may modify.
func CanWriteProduct(method string, actor *entities.User, product *entities.Product) bool {
	if IsSafeMethod(method) {
		return true
	}
	if !IsAuthenticated(actor) {
		return false
	}
	return actor.Id == product.UserId
}

func IsAccountOwner(actor, target *entities.User) bool {
	if !IsAuthenticated(actor) {
		return false
	}
	return actor.Id == target.Id
}

func CanManageAccounts(actor *entities.User) bool {
	if !IsAuthenticated(actor) {
		return false
	}
	return actor.IsSuperuser
}
