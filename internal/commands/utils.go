package commands

import (
	"go.uber.org/zap"

	"innkeeper/internal/config"
	"innkeeper/internal/record"
	"innkeeper/internal/tenant"
)

func openStore() (*record.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	driver, dsn, err := cfg.Driver()
	if err != nil {
		return nil, err
	}
	return record.Open(driver, dsn)
}

func newService(logger *zap.Logger) (*tenant.Service, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return tenant.NewService(store, logger), nil
}
