package mapper

import (
	"github.com/hitaloss/business/internal/application/common"
	"github.com/hitaloss/business/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:         user.Id,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		DateJoined: user.DateJoined,
		IsSeller:   user.IsSeller,
	}
}

func NewUserResultsFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, user := range users {
		results = append(results, NewUserResultFromEntity(user))
	}
	return results
}

func NewSellerSummaryFromEntity(user *entities.User) *common.SellerSummary {
	return &common.SellerSummary{
		Id:       user.Id,
		Username: user.Username,
	}
}

func NewAccountStatusResultFromEntity(user *entities.User) *common.AccountStatusResult {
	return &common.AccountStatusResult{IsActive: user.IsActive}
}
