package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
)

// Lister is the read side of a REST collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Sources are the collections the summary reads.
type Sources struct {
	Clients   Lister[clients.Client]
	Suppliers Lister[suppliers.Supplier]
	Supplies  Lister[supplies.Supply]
	Purchases Lister[purchases.Purchase]
}

// SummaryOptions defines the flags of the summary command.
type SummaryOptions struct {
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// Summary is the JSON document printed by the summary command.
type Summary struct {
	Clients          int             `json:"clientes"`
	Suppliers        int             `json:"proveedores"`
	Supplies         int             `json:"insumos"`
	Purchases        int             `json:"compras"`
	PendingPurchases int             `json:"compras_pendientes"`
	PurchasesTotal   decimal.Decimal `json:"total_compras"`
	StockOnHand      int64           `json:"stock_total"`
}

// BuildSummary fetches the four collections concurrently. The first failure
// cancels the remaining requests.
func BuildSummary(ctx context.Context, src Sources) (Summary, error) {
	var (
		cl  []clients.Client
		sup []suppliers.Supplier
		sp  []supplies.Supply
		pur []purchases.Purchase
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cl, err = src.Clients.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		sup, err = src.Suppliers.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		sp, err = src.Supplies.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		pur, err = src.Purchases.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := Summary{
		Clients:        len(cl),
		Suppliers:      len(sup),
		Supplies:       len(sp),
		Purchases:      len(pur),
		PurchasesTotal: decimal.Zero,
	}
	for _, v := range sp {
		s.StockOnHand += v.Stock
	}
	for _, p := range pur {
		if p.Status == purchases.StatusPending {
			s.PendingPurchases++
		}
		s.PurchasesTotal = s.PurchasesTotal.Add(p.Total())
	}
	return s, nil
}

// SummaryCommand prints the summary and returns the process exit code.
func SummaryCommand(ctx context.Context, src Sources, opts SummaryOptions) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	s, err := BuildSummary(ctx, src)
	if err != nil {
		_, _ = fmt.Fprintf(opts.Stderr, "summary: %v\n", err)
		return 1
	}
	if opts.JSONOutput {
		if err := json.NewEncoder(opts.Stdout).Encode(s); err != nil {
			_, _ = fmt.Fprintf(opts.Stderr, "summary: encode json: %v\n", err)
			return 1
		}
		return 0
	}
	tw := tabwriter.NewWriter(opts.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "clientes\t%d\n", s.Clients)
	_, _ = fmt.Fprintf(tw, "proveedores\t%d\n", s.Suppliers)
	_, _ = fmt.Fprintf(tw, "insumos\t%d\t(stock %d)\n", s.Supplies, s.StockOnHand)
	_, _ = fmt.Fprintf(tw, "compras\t%d\t(%d pendientes, total %s)\n", s.Purchases, s.PendingPurchases, s.PurchasesTotal.StringFixed(2))
	_ = tw.Flush()
	return 0
}
