package devserver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedParty struct {
	Name    string `yaml:"nombre"`
	Contact string `yaml:"contacto"`
}

type seedLine struct {
	SupplyID  int64  `yaml:"id_insumo"`
	Quantity  int64  `yaml:"cantidad"`
	UnitPrice string `yaml:"precio_unitario"`
}

type seedSupply struct {
	Name  string `yaml:"nombre"`
	Stock int64  `yaml:"stock_actual"`
}

type seedPurchase struct {
	SupplierID int64      `yaml:"id_proveedor"`
	Date       string     `yaml:"fecha_compra"`
	Status     string     `yaml:"estado"`
	Lines      []seedLine `yaml:"detalleCompras"`
}

type seedFile struct {
	Clients   []seedParty    `yaml:"clientes"`
	Suppliers []seedParty    `yaml:"proveedores"`
	Supplies  []seedSupply   `yaml:"insumos"`
	Purchases []seedPurchase `yaml:"compras"`
}

// SeedDefault loads the bundled development data.
func (s *Store) SeedDefault() error {
	return s.seed(defaultSeed)
}

// Seed loads a YAML fixture. Records go through the regular create paths,
// so purchases must reference suppliers and supplies defined earlier.
func (s *Store) Seed(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("devserver: read seed: %w", err)
	}
	return s.seed(raw)
}

func (s *Store) seed(raw []byte) error {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("devserver: parse seed: %w", err)
	}
	for _, c := range f.Clients {
		if _, err := s.CreateClient(clients.Form{Name: c.Name, Contact: c.Contact}); err != nil {
			return fmt.Errorf("devserver: seed cliente %q: %w", c.Name, err)
		}
	}
	for _, v := range f.Suppliers {
		if _, err := s.CreateSupplier(suppliers.Form{Name: v.Name, Contact: v.Contact}); err != nil {
			return fmt.Errorf("devserver: seed proveedor %q: %w", v.Name, err)
		}
	}
	for _, v := range f.Supplies {
		if _, err := s.CreateSupply(supplies.Input{Name: v.Name, Stock: v.Stock}); err != nil {
			return fmt.Errorf("devserver: seed insumo %q: %w", v.Name, err)
		}
	}
	for i, p := range f.Purchases {
		in := purchases.Input{SupplierID: p.SupplierID, Date: p.Date, Status: p.Status}
		for _, l := range p.Lines {
			in.Lines = append(in.Lines, purchases.LineInput{
				SupplyID:  l.SupplyID,
				Quantity:  l.Quantity,
				UnitPrice: json.Number(l.UnitPrice),
			})
		}
		if _, err := s.CreatePurchase(in); err != nil {
			return fmt.Errorf("devserver: seed compra %d: %w", i+1, err)
		}
	}
	return nil
}
