package dataset

import "fmt"

// All returns the ten domain specs in generation order. The order matches
// the original batch sequence and is part of the orchestrator contract.
func All() []TableSpec {
	return []TableSpec{
		Ecommerce(),
		Controllership(),
		HR(),
		Logistics(),
		Marketing(),
		Production(),
		Inventory(),
		Customers(),
		Suppliers(),
		Cashflow(),
	}
}

// ByDomain returns the spec for a domain identifier.
func ByDomain(name string) (TableSpec, error) {
	for _, s := range All() {
		if s.Domain == name {
			return s, nil
		}
	}
	return TableSpec{}, fmt.Errorf("dataset: unknown domain %q", name)
}

// DomainNames returns the domain identifiers in generation order.
func DomainNames() []string {
	specs := All()
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Domain
	}
	return names
}

// choice picks uniformly from a fixed value set.
func choice(g *Generator, values []string) string {
	return values[g.Sample.IntBetween(0, len(values)-1)]
}
