package checkout

import (
	"context"
	"strconv"

	"paylink/internal/backend"
	"paylink/internal/models"
	"paylink/internal/psp"
)

// SimulatorTokenizer runs tokenization against the local PSP simulator.
// The slug plays no role: the simulator is global to the deployment.
type SimulatorTokenizer struct {
	Sim *psp.Simulator
}

func (t SimulatorTokenizer) Tokenize(ctx context.Context, _ string, card models.CardInput, preferred psp.Provider) (*psp.TokenizeResult, error) {
	return t.Sim.Tokenize(ctx, card, preferred)
}

// BackendTokenizer tokenizes through the backend's checkout endpoint,
// used when a real PSP integration sits behind the upstream.
type BackendTokenizer struct {
	Client *backend.Client
}

func (t BackendTokenizer) Tokenize(ctx context.Context, slug string, card models.CardInput, preferred psp.Provider) (*psp.TokenizeResult, error) {
	month, _ := strconv.Atoi(card.ExpMonth)
	year, _ := strconv.Atoi(card.ExpYear)

	res, err := t.Client.TokenizeCard(ctx, slug, &models.TokenizeRequest{
		CardNumber: card.NormalizedNumber(),
		ExpMonth:   month,
		ExpYear:    year,
		CVC:        card.CVC,
	})
	if err != nil {
		return nil, err
	}

	hint := preferred
	if res.PSPCode != "" {
		hint = psp.Provider(res.PSPCode)
	}
	return &psp.TokenizeResult{Token: res.PSPToken, Hint: hint}, nil
}
