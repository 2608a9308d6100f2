package response

import (
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type DiscountResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Expiration  string `json:"expiration"`
}

type TyCResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TyCsResponse struct {
	Version string        `json:"version"`
	TyCs    []TyCResponse `json:"tycs"`
}

// FromDiscounts never returns a nil slice, so an empty listing encodes as [].
func FromDiscounts(items readmodel.DiscountsResponse) ([]DiscountResponse, error) {
	res := make([]DiscountResponse, 0, len(items))
	if len(items) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &items); err != nil {
		return nil, errs.Wrap(err, "copy discounts")
	}
	return res, nil
}

func FromTyCs(v *readmodel.TyCsResponse) (*TyCsResponse, error) {
	res := &TyCsResponse{TyCs: []TyCResponse{}}
	if v == nil {
		return res, nil
	}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "copy tycs")
	}
	if res.TyCs == nil {
		res.TyCs = []TyCResponse{}
	}
	return res, nil
}
