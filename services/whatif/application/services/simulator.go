package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/services/whatif/domain"
	"github.com/metazeka/backend/services/whatif/domain/models"
)

const meterName = "github.com/metazeka/backend/services/whatif"

// Simulator answers what-if requests with a canned scenario. No engine runs;
// the request is echoed back under a random scenario id and nothing is stored.
type Simulator struct {
	intn        func(n int) int
	log         logger.Logger
	simulations metric.Int64Counter
}

// NewSimulator returns a Simulator drawing ids from math/rand/v2.
// intn overrides the source when non-nil.
func NewSimulator(log logger.Logger, intn func(n int) int) (*Simulator, error) {
	if intn == nil {
		intn = rand.IntN
	}
	simulations, err := otel.Meter(meterName).Int64Counter("whatif.simulations",
		metric.WithDescription("Simulation requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("whatif.simulations counter: %w", err)
	}
	return &Simulator{intn: intn, log: log, simulations: simulations}, nil
}

// Simulate checks body for a truthy baseline.revenue and baseline.net_profit
// and returns a scenario echoing body. body must be valid JSON.
func (s *Simulator) Simulate(ctx context.Context, body json.RawMessage) (*models.Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode simulation request: %w", err)
	}

	if !models.HasBaseline(doc) {
		s.record(ctx, "rejected")
		return nil, domain.ErrBaselineRequired
	}

	scenario := &models.Scenario{
		ID:    models.ScenarioID(models.ScenarioMin + s.intn(models.ScenarioSpan)),
		Input: body,
	}
	s.record(ctx, "accepted")
	s.log.InfoContext(ctx, "simulation accepted", "scenario_id", scenario.ID)
	return scenario, nil
}

func (s *Simulator) record(ctx context.Context, outcome string) {
	s.simulations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
