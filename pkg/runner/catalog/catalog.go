// Package catalog renders the plot and worker catalogs.
package catalog

import (
	"context"
	"fmt"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/printers"
)

type Resource string

const (
	Plots   Resource = "plots"
	Workers Resource = "workers"
)

type Catalog struct {
	Service  *app.Service
	Resource Resource
}

func (c *Catalog) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	fmt.Println("")

	switch c.Resource {
	case Workers:
		workers, err := c.Service.Fetcher.Workers(ctx)
		if err != nil {
			return err
		}
		pp.Title(fmt.Sprintf("Workers - %d", len(workers)))
		pp.WorkerCatalog(workers)
	default:
		plots, err := c.Service.Fetcher.Plots(ctx)
		if err != nil {
			return err
		}
		pp.Title(fmt.Sprintf("Plots - %d", len(plots)))
		pp.PlotCatalog(plots)
	}
	return nil
}
