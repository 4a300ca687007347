package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/metazeka/backend/pkg/errhttp"
	"github.com/metazeka/backend/pkg/httpx"
	pkgvalidator "github.com/metazeka/backend/pkg/validator"
	appsvcs "github.com/metazeka/backend/services/whatif/application/services"
	"github.com/metazeka/backend/services/whatif/domain"
	"github.com/metazeka/backend/services/whatif/domain/models"
)

// SimulationRequest is the OpenAPI shape of the simulate body. Nothing decodes
// into it: the body is kept raw, baseline.revenue and baseline.net_profit only
// need to be truthy (strings and booleans pass, see models.HasBaseline), and
// every other member is echoed back.
type SimulationRequest struct {
	Baseline struct {
		Revenue   float64 `json:"revenue"    example:"1200000"`
		NetProfit float64 `json:"net_profit" example:"180000"`
	} `json:"baseline"`
} // @name SimulationRequest

// SimulationResponse is returned for an accepted simulation.
type SimulationResponse struct {
	OK         bool            `json:"ok"         example:"true"`
	ScenarioID string          `json:"scenarioId" example:"SIM-4821"`
	Received   json.RawMessage `json:"received"   swaggertype:"object"`
	Message    string          `json:"message"    example:"Mock engine çalıştı. Sonraki adım: Gemini API proxy bağlamak."`
} // @name SimulationResponse

// SimulationRejected is returned with 200 when the baseline is incomplete.
type SimulationRejected struct {
	OK    bool   `json:"ok"    example:"false"`
	Error string `json:"error" example:"baseline.revenue ve baseline.net_profit zorunlu"`
} // @name SimulationRejected

// PostSimulateHandler handles POST /whatif/simulate requests.
type PostSimulateHandler struct {
	svc *appsvcs.Services
}

// NewPostSimulateHandler returns a PostSimulateHandler backed by the given services.
func NewPostSimulateHandler(svc *appsvcs.Services) *PostSimulateHandler {
	return &PostSimulateHandler{svc: svc}
}

// Execute runs the mock simulation.
//
//	@Summary		Simulate scenario
//	@Description	Echoes the request under a random SIM-#### id. An incomplete baseline is reported with ok=false and status 200.
//	@Tags			whatif
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SimulationRequest	true	"Scenario input"
//	@Success		200		{object}	SimulationResponse
//	@Failure		400		{object}	httpx.Envelope
//	@Router			/whatif/simulate [post]
func (h *PostSimulateHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, pkgvalidator.MessageInvalidJSON)
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		httpx.JSONError(w, http.StatusBadRequest, pkgvalidator.MessageInvalidJSON)
		return
	}

	scenario, err := h.svc.Simulator.Simulate(r.Context(), body)
	if errors.Is(err, domain.ErrBaselineRequired) {
		httpx.JSON(w, http.StatusOK, SimulationRejected{OK: false, Error: err.Error()})
		return
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SimulationResponse{
		OK:         true,
		ScenarioID: scenario.ID,
		Received:   scenario.Input,
		Message:    models.EngineMessage,
	})
}
