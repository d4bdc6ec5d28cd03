package utils

import (
	"context"

	"github.com/zmeurelos/farm_backend/config"
)

/* DB fetching */

// fetch model from db
// (ctx's tenant_id is used in query's WHERE, may return RecordNotFound)
func FetchModel[T any](ctx context.Context, tenantId string, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("tenant_id = ?", tenantId)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch all models from db
// (ctx's tenant_id is used in query's WHERE)
func FetchAllModels[T any](ctx context.Context, tenantId string, associations ...string) ([]*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("tenant_id = ?", tenantId)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var results []*T
	err := dbCtx.Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// fetch all models ordered by the given column expression
func FetchAllModelsOrdered[T any](ctx context.Context, tenantId string, order string) ([]*T, error) {

	db := config.GetDB()
	var results []*T
	err := db.WithContext(ctx).Where("tenant_id = ?", tenantId).Order(order).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// hard delete by id, tenant scoped
// (returns RecordNotFound when no row matched)
func DeleteModel[T any](ctx context.Context, tenantId string, id int) error {

	db := config.GetDB()
	var model T
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantId).Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrorRecordNotFound
	}
	return nil
}
