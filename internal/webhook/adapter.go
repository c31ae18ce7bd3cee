// Package webhook verifies provider notifications and normalizes them into
// domain events. Nothing outside this package sees provider event names.
package webhook

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/mitchellh/mapstructure"
)

// Adapter verifies the integrity of a raw provider payload and translates it.
// Parse returns domain.ErrInvalidSignature or domain.ErrMalformedPayload when
// the payload must be rejected.
type Adapter interface {
	Provider() domain.Provider
	Parse(payload []byte, header http.Header) (domain.Event, error)
}

func decodeObject(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedPayload, err)
	}

	return nil
}

func chargeEvent(ref string, succeeded bool) (domain.Event, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: charge event without a reference", domain.ErrMalformedPayload)
	}

	return domain.ChargeEvent{ExternalRef: ref, Succeeded: succeeded}, nil
}
