package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrFetchFailed is returned when the upstream endpoint cannot be reached or answers with a non-2xx status
var ErrFetchFailed = errors.New("failed to fetch doctors")

const maxPayloadBytes = 32 << 20

type doctorClient struct {
	url        string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewDoctorClient creates the HTTP source of the directory. It performs exactly one GET per call, without retries.
func NewDoctorClient(cfg config.UpstreamConfig, httpClient *http.Client, log *logrus.Logger) repository.DoctorSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &doctorClient{
		url:        cfg.URL,
		httpClient: httpClient,
		log:        log,
	}
}

func (c *doctorClient) FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Failed to fetch doctors from %s: %+v", c.url, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnf("Upstream %s answered with status %d", c.url, resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	doctors, err := DecodeDoctors(body, c.log)
	if err != nil {
		c.log.Warnf("Failed to decode doctors payload: %+v", err)
		return nil, err
	}

	c.log.WithField("count", len(doctors)).Info("Fetched doctors from upstream")
	return doctors, nil
}

// DecodeDoctors decodes an upstream payload. The payload must be a JSON array; anything else is
// entity.ErrMalformedPayload. Elements that are not objects decode as empty records so that every
// element still yields one record.
func DecodeDoctors(payload []byte, log *logrus.Logger) ([]entity.RawDoctor, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '[' {
		return nil, entity.ErrMalformedPayload
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedPayload, err)
	}

	doctors := make([]entity.RawDoctor, len(elements))
	for i, element := range elements {
		var raw entity.RawDoctor
		if err := json.Unmarshal(element, &raw); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				raw = entity.RawDoctor{}
			}
			if log != nil {
				log.Warnf("Doctor record %d is malformed, using defaults: %+v", i, err)
			}
		}
		doctors[i] = raw
	}

	return doctors, nil
}
