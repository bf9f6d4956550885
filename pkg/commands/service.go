package commands

import (
	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/client"
	"github.com/agroplanner/fieldops/pkg/store"
)

// newService builds the record service commands run against, either
// talking to the backend or reading the local sync cache.
func newService(cached bool) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cached {
		cache, err := store.Open(cfg)
		if err != nil {
			return nil, err
		}
		return &app.Service{Fetcher: app.CacheFetcher{Cache: cache}}, nil
	}
	return &app.Service{Fetcher: app.ClientFetcher{Client: client.New(cfg.APIBase(), cfg.Token())}}, nil
}
