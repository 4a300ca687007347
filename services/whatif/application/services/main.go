package services

import "github.com/metazeka/backend/pkg/app"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Simulator *Simulator
}

// New wires the what-if services. It needs no store.
func New(a *app.Application) (*Services, error) {
	sim, err := NewSimulator(a.Logger, nil)
	if err != nil {
		return nil, err
	}
	return &Services{Simulator: sim}, nil
}
