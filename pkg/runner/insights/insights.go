// Package insights renders the advisory suggestion list for the CLI.
package insights

import (
	"context"
	"fmt"

	"github.com/agroplanner/fieldops/pkg/app"
	"github.com/agroplanner/fieldops/pkg/insight"
	"github.com/agroplanner/fieldops/pkg/printers"
)

type Insights struct {
	Service *app.Service
	Limit   int
}

func (n *Insights) Do(ctx context.Context) error {
	suggestions, err := n.Service.Suggestions(ctx)
	if err != nil {
		return err
	}
	view := insight.Merge(suggestions, n.Limit)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("Insights - %d", len(suggestions)))
	pp.Suggestions(view)
	return nil
}
