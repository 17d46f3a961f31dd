package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Defaults(t *testing.T) {
	user := NewUser("franks", "1234", "Frank", "S", false)

	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.False(t, user.IsSeller)
	assert.Equal(t, user.CreatedAt, user.DateJoined)

	admin := NewSuperuser("root", "1234", "", "")
	assert.True(t, admin.IsSuperuser)
	assert.True(t, admin.IsSeller)
}

func TestNewValidatedUser(t *testing.T) {
	_, err := NewValidatedUser(NewUser("", "1234", "", "", false))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("franks", "", "", "", false))
	assert.Error(t, err)

	_, err = NewValidatedUser(NewUser("franks", "1234", strings.Repeat("x", NameMaxLength+1), "", false))
	assert.Error(t, err)

	validated, err := NewValidatedUser(NewUser("franks", "1234", "", "", true))
	require.NoError(t, err)
	assert.Equal(t, "franks", validated.GetUser().Username)
}

func TestUser_Passwords(t *testing.T) {
	user := NewUser("franks", "1234", "", "", false)
	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "1234", user.Password)
	assert.NoError(t, user.CheckPassword("1234"))
	assert.Error(t, user.CheckPassword("4321"))

	require.NoError(t, user.SetPassword("5678"))
	assert.NoError(t, user.CheckPassword("5678"))
	assert.Error(t, user.CheckPassword("1234"))
}

func TestUser_UpdateProfile(t *testing.T) {
	user := NewUser("franks", "1234", "Frank", "", false)
	name := "Francis"
	seller := true

	require.NoError(t, user.UpdateProfile(ProfileChanges{FirstName: &name, IsSeller: &seller}))
	assert.Equal(t, "Francis", user.FirstName)
	assert.Equal(t, "franks", user.Username)
	assert.True(t, user.IsSeller)

	empty := ""
	assert.Error(t, user.UpdateProfile(ProfileChanges{Username: &empty}))
}

func TestUser_SetActive(t *testing.T) {
	user := NewUser("franks", "1234", "", "", false)
	before := user.UpdatedAt

	user.SetActive(false)
	assert.False(t, user.IsActive)
	assert.False(t, user.UpdatedAt.Before(before))
}

func TestNewProduct(t *testing.T) {
	seller := NewUser("batman", "1234", "", "", true)
	product := NewProduct(seller, "Smartband XYZ 3.0", 100.99, 15)

	assert.True(t, product.IsActive)
	assert.Equal(t, seller.Id, product.UserId)
	assert.Same(t, seller, product.User)

	_, err := NewValidatedProduct(product)
	assert.NoError(t, err)

	_, err = NewValidatedProduct(NewProduct(seller, "", 1, 1))
	assert.Error(t, err)
	_, err = NewValidatedProduct(NewProduct(seller, "x", -1, 1))
	assert.Error(t, err)
	_, err = NewValidatedProduct(NewProduct(seller, "x", 1, MaxQuantity+1))
	assert.Error(t, err)
}

func TestProduct_UpdateListing(t *testing.T) {
	product := NewProduct(NewUser("batman", "1234", "", "", true), "Smartband", 10, 1)
	price := 20.5

	require.NoError(t, product.UpdateListing(ListingChanges{Price: &price}))
	assert.Equal(t, 20.5, product.Price)
	assert.Equal(t, "Smartband", product.Description)
	assert.Equal(t, 1, product.Quantity)

	negative := -1
	assert.Error(t, product.UpdateListing(ListingChanges{Quantity: &negative}))
}

func TestNewValidatedUser_CountsCharacters(t *testing.T) {
	name := strings.Repeat("é", NameMaxLength)

	_, err := NewValidatedUser(NewUser("joão", "1234", name, name, false))
	assert.NoError(t, err)

	_, err = NewValidatedUser(NewUser(strings.Repeat("ç", UsernameMaxLength), "1234", "", "", false))
	assert.NoError(t, err)

	_, err = NewValidatedUser(NewUser("joão", "1234", name+"é", "", false))
	assert.Error(t, err)
}
