package models_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/zmeurelos/farm_backend/config"
	"github.com/zmeurelos/farm_backend/models"
	"github.com/zmeurelos/farm_backend/utils"
)

// newTestContext boots the in-memory database and a miniredis instance and
// returns a context scoped to a fresh tenant. The sqlite database is shared
// process-wide, so isolation between tests comes from the tenant id.
func newTestContext(t *testing.T) context.Context {
	t.Helper()

	if err := config.OpenTestDatabase(); err != nil {
		t.Fatalf("OpenTestDatabase: %v", err)
	}
	models.MigrateTable()

	mr := miniredis.RunT(t)
	if err := config.ConnectRedisAt(mr.Addr()); err != nil {
		t.Fatalf("ConnectRedisAt: %v", err)
	}
	t.Cleanup(config.DisconnectRedis)

	ctx := context.Background()
	tenant, err := models.CreateTenant(ctx, &models.NewTenant{
		FarmName:    "Test Farm " + t.Name(),
		OwnerUserId: "test-owner",
	})
	if err != nil {
		t.Fatalf("CreateTenant: %v", err)
	}

	ctx = utils.SetTenantIdInContext(ctx, tenant.ID)
	ctx = utils.SetUserNameInContext(ctx, "Test")
	return ctx
}

// secondTenantContext derives a context for a different tenant on the same
// database, for tenant isolation checks.
func secondTenantContext(t *testing.T) context.Context {
	t.Helper()

	tenant, err := models.CreateTenant(context.Background(), &models.NewTenant{
		FarmName:    "Other Farm " + t.Name(),
		OwnerUserId: "other-owner",
	})
	if err != nil {
		t.Fatalf("CreateTenant: %v", err)
	}
	return utils.SetTenantIdInContext(context.Background(), tenant.ID)
}
