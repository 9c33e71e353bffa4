package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// Client клиент для работы с сервисом каталога (сервисы, комбо, промоции)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetItem получает позицию каталога по виду и идентификатору.
// Разные виды позиций живут на разных эндпоинтах и имеют разные поля цены;
// результат всегда нормализован до Item с единым UnitPrice.
func (c *Client) GetItem(ctx context.Context, tipo domain.TipoItem, id int64) (*Item, error) {
	switch tipo {
	case domain.TipoServicio:
		var payload servicioPayload
		if err := c.getJSON(ctx, fmt.Sprintf("%s/servicios/%d/", c.baseURL, id), &payload); err != nil {
			return nil, err
		}
		return normalizeServicio(&payload), nil

	case domain.TipoCombo:
		var payload comboPayload
		if err := c.getJSON(ctx, fmt.Sprintf("%s/combos/%d/", c.baseURL, id), &payload); err != nil {
			return nil, err
		}
		return normalizeCombo(&payload), nil

	case domain.TipoPromocion:
		var payload promocionPayload
		if err := c.getJSON(ctx, fmt.Sprintf("%s/promociones/%d/", c.baseURL, id), &payload); err != nil {
			return nil, err
		}
		return normalizePromocion(&payload, time.Now())

	default:
		return nil, fmt.Errorf("%w: unknown item kind %q", ErrInternal, tipo)
	}
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrItemNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
