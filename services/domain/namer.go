// Package domain derives a tenant's public hostname from its name and plan.
// Derivation is a pure, total function: it never fails, and the inverse
// helpers answer "no match" on malformed input instead of erroring.
package domain

import (
	"fmt"
	"regexp"

	"github.com/gosimple/slug"
	"go.uber.org/fx"

	"ediworks-controlplane/pkg/config"
	"ediworks-controlplane/services/catalog"
)

// planPrefixes is the fixed one-letter code per plan. Unknown plans fall
// back to the trial prefix.
var planPrefixes = map[catalog.PlanID]string{
	catalog.Trial:      "t",
	catalog.Starter:    "s",
	catalog.Pro:        "p",
	catalog.Enterprise: "e",
}

var prefixPlans = map[string]catalog.PlanID{
	"t": catalog.Trial,
	"s": catalog.Starter,
	"p": catalog.Pro,
	"e": catalog.Enterprise,
}

var prefixPattern = regexp.MustCompile(`^([a-z])-`)

type Namer struct {
	suffix      string
	namePattern *regexp.Regexp
}

var Module = fx.Module("domain.module",
	fx.Provide(NewNamer),
)

type NamerParams struct {
	fx.In
	Cfg *config.Config
}

func NewNamer(p NamerParams) *Namer {
	return newNamer(p.Cfg.RootDomain)
}

func newNamer(suffix string) *Namer {
	return &Namer{
		suffix:      suffix,
		namePattern: regexp.MustCompile(`^[a-z]-(.*?)\.` + regexp.QuoteMeta(suffix) + `$`),
	}
}

// Suffix returns the configured root domain.
func (n *Namer) Suffix() string {
	return n.suffix
}

// Derive computes `<plan-prefix>-<name>.<root-domain>`. Tenant names are
// slugified so the hostname stays DNS-safe whatever the display name holds.
func (n *Namer) Derive(tenantName string, plan catalog.PlanID) string {
	prefix, ok := planPrefixes[plan]
	if !ok {
		prefix = "t"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, slug.Make(tenantName), n.suffix)
}

// PlanFromDomain recovers the plan encoded in a derived hostname.
func (n *Namer) PlanFromDomain(domain string) (catalog.PlanID, bool) {
	m := prefixPattern.FindStringSubmatch(domain)
	if m == nil {
		return "", false
	}
	plan, ok := prefixPlans[m[1]]
	return plan, ok
}

// TenantFromDomain recovers the tenant name segment of a derived hostname.
func (n *Namer) TenantFromDomain(domain string) (string, bool) {
	m := n.namePattern.FindStringSubmatch(domain)
	if m == nil {
		return "", false
	}
	return m[1], true
}
