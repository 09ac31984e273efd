package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Checkout Pro preferences for submitted
// proposals. The returned init point is the link embedded in the proposal
// sent to the client.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutLink(ctx context.Context, p entities.Proposal) (string, error) {
	if g != nil && g.mockMode {
		link := fmt.Sprintf("https://checkout.example/mock/%s", p.ID)
		log.Printf("[payment][gateway] mock checkout link proposal_id=%s link=%s", p.ID, link)
		return link, nil
	}

	if g == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start proposal_id=%s total=%s", p.ID, p.Totals.Total)

	quantity := 1
	total := p.Totals.Total.InexactFloat64()
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        p.ID,
				Title:     p.Title,
				Quantity:  quantity,
				UnitPrice: total,
			},
		},
		ExternalReference: p.ID,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed proposal_id=%s err=%v", p.ID, err)
		return "", err
	}
	log.Printf("[payment][gateway] preference created proposal_id=%s preference_id=%s", p.ID, resp.ID)

	return resp.InitPoint, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
