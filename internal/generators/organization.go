// Package generators implements the dependent entity generation pipeline.
// Each generator consumes previously persisted entities, applies
// randomized-but-constrained distributions, and commits its output in a
// single transaction before the next generator runs.
package generators

import (
	"fmt"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

// Curated B2B SaaS company identities. Name and domain are paired by index.
var companyNames = []string{
	"DataStream", "CloudSync", "MetricsHub", "FlowBase", "VectorAI",
	"PulseWorks", "NexusCloud", "SignalPath", "OptiScale", "CoreStack",
	"FusionData", "ApexFlow", "ZenithOps", "CatalystHQ", "VelocityIO",
	"QuantumLeap", "PrismData", "HorizonTech", "EchoStream", "NimbusLabs",
}

var companyDomains = []string{
	"datastream.com", "cloudsync.io", "metricshub.com", "flowbase.io",
	"vectorai.com", "pulseworks.io", "nexuscloud.com", "signalpath.io",
	"optiscale.com", "corestack.io", "fusiondata.com", "apexflow.io",
	"zenithops.com", "catalysthq.com", "velocity.io", "quantumleap.io",
	"prismdata.com", "horizontech.io", "echostream.io", "nimbuslabs.com",
}

// OrganizationGenerator produces the single root organization.
type OrganizationGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
	cfg  *config.Config
}

// NewOrganizationGenerator creates a new OrganizationGenerator
func NewOrganizationGenerator(repo repository.Repository, rng *sampling.Sampler, cfg *config.Config) *OrganizationGenerator {
	return &OrganizationGenerator{repo: repo, rng: rng, cfg: cfg}
}

// Generate creates and persists the organization. It is an established
// company, founded 2-4 years before generation time.
func (g *OrganizationGenerator) Generate() (*models.Organization, error) {
	idx := g.rng.IntBetween(0, len(companyNames)-1)

	yearsAgo := g.rng.IntBetween(2, 4)
	createdAt := time.Now().AddDate(0, 0, -yearsAgo*365)

	org := &models.Organization{
		ID:            utils.NewID(),
		Name:          companyNames[idx],
		Domain:        companyDomains[idx],
		EmployeeCount: g.cfg.EmployeeCount,
		CreatedAt:     createdAt,
	}

	err := g.repo.Transaction(func(tx repository.Repository) error {
		return tx.CreateOrganization(org)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist organization: %w", err)
	}

	return org, nil
}
