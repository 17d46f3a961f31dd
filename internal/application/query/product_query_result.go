package query

import "github.com/hitaloss/business/internal/application/common"

type ProductQueryResult struct {
	Result *common.ProductResult `json:"result"`
}

type ProductQueryListResult struct {
	Result []*common.ProductSummaryResult `json:"result"`
}
