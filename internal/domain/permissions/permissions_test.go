package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hitaloss/business/internal/domain/entities"
)

func TestIsSafeMethod(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		assert.True(t, IsSafeMethod(m), m)
	}
	for _, m := range []string{http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete} {
		assert.False(t, IsSafeMethod(m), m)
	}
}

func TestCanWriteProducts(t *testing.T) {
	seller := entities.NewUser("batman", "1234", "bat", "man", true)
	common := entities.NewUser("robin", "1234", "rob", "son", false)

	tests := []struct {
		name   string
		method string
		actor  *entities.User
		want   bool
	}{
		{"anonymous read", http.MethodGet, nil, true},
		{"anonymous create", http.MethodPost, nil, false},
		{"common create", http.MethodPost, common, false},
		{"seller create", http.MethodPost, seller, true},
		{"common read", http.MethodGet, common, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanWriteProducts(tt.method, tt.actor))
		})
	}
}

func TestCanWriteProduct(t *testing.T) {
	owner := entities.NewUser("batman", "1234", "bat", "man", true)
	other := entities.NewUser("joker", "1234", "jo", "ker", true)
	product := entities.NewProduct(owner, "Smartband XYZ 3.0", 100.99, 15)

	assert.True(t, CanWriteProduct(http.MethodGet, nil, product))
	assert.True(t, CanWriteProduct(http.MethodGet, other, product))
	assert.False(t, CanWriteProduct(http.MethodPatch, nil, product))
	assert.False(t, CanWriteProduct(http.MethodPatch, other, product))
	assert.True(t, CanWriteProduct(http.MethodPatch, owner, product))
}

func TestAccountPredicates(t *testing.T) {
	admin := entities.NewSuperuser("scarecrow", "1234", "scare", "crow")
	seller := entities.NewUser("batman", "1234", "bat", "man", true)

	assert.True(t, IsAccountOwner(seller, seller))
	assert.False(t, IsAccountOwner(admin, seller))
	assert.False(t, IsAccountOwner(nil, seller))

	assert.True(t, CanManageAccounts(admin))
	assert.False(t, CanManageAccounts(seller))
	assert.False(t, CanManageAccounts(nil))
}
