package main

import (
	"retailpos/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.CategoryModel{},
		model.ProductCategoryModel{},
		model.PurchaseModel{},
		model.PurchaseLineModel{},
		model.PricePredictionModel{},
		model.StoreModel{},
		model.StoreUserModel{},
		model.StoreProductModel{},
		model.UserModel{},
		model.VatRateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
