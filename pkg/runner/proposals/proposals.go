// Package proposals renders tasks awaiting reschedule review.
package proposals

import (
	"context"
	"fmt"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/printers"
)

type Proposals struct {
	Service *app.Service
}

func (p *Proposals) Do(ctx context.Context) error {
	tasks, err := p.Service.Proposals(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Reschedule proposals", len(tasks))
	pp.Proposals(tasks)
	return nil
}
