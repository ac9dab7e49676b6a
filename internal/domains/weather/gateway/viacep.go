package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"bakery-storefront/internal/domains/weather/model"
	"bakery-storefront/internal/shared/utils"
)

const postalCodeLength = 8

type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

// NewViaCEPClient expects baseURL like https://viacep.com.br/ws
func NewViaCEPClient(baseURL string, client *http.Client) *ViaCEPClient {
	return &ViaCEPClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type viaCEPResponse struct {
	Localidade string      `json:"localidade"`
	UF         string      `json:"uf"`
	Erro       interface{} `json:"erro"`
}

// LookupCity accepts "01001-000" or "01001000".
func (c *ViaCEPClient) LookupCity(ctx context.Context, cep string) (string, error) {
	digits := utils.DigitsOnly(cep)
	if len(digits) != postalCodeLength {
		return "", model.ErrInvalidPostalCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.baseURL, digits), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrPostalLookupFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrPostalLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return "", model.ErrInvalidPostalCode
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: upstream status %d", model.ErrPostalLookupFailed, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode: %v", model.ErrPostalLookupFailed, err)
	}

	// ViaCEP answers 200 with {"erro": true} (older API: "true") for unknown codes
	if (body.Erro != nil && body.Erro != false) || body.Localidade == "" {
		return "", model.ErrPostalCodeNotFound
	}
	return body.Localidade, nil
}
