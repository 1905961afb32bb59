package marketdata

import (
	"encoding/json"
	"strings"

	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

// Keys Alpha Vantage uses for messages in place of data.
const (
	keyErrorMessage = "Error Message"
	keyNote         = "Note"
	keyInformation  = "Information"
)

// Envelope is a decoded Alpha Vantage response: top-level keys mapped to their
// undecoded values.
type Envelope map[string]json.RawMessage

// Notice describes a message the provider returned instead of data.
type Notice struct {
	Message string
	// RateLimited is set for "Note" and "Information" messages, which Alpha
	// Vantage uses for throttling and premium-only endpoints.
	RateLimited bool
}

// Notice returns the provider message carried by the envelope, if any.
func (e Envelope) Notice() (Notice, bool) {
	if msg, ok := e.text(keyErrorMessage); ok {
		return Notice{Message: msg}, true
	}

	for _, key := range []string{keyNote, keyInformation} {
		if msg, ok := e.text(key); ok {
			return Notice{Message: msg, RateLimited: true}, true
		}
	}

	return Notice{}, false
}

func (e Envelope) text(key string) (string, bool) {
	raw, ok := e[key]
	if !ok {
		return "", false
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw), true
	}

	return msg, true
}

// TimeSeries returns the raw date-keyed series object. The series key varies
// by function ("Time Series (Daily)", "Time Series FX (Daily)", ...), so the
// first key starting with "Time Series" is taken.
func (e Envelope) TimeSeries() (json.RawMessage, error) {
	for key, raw := range e {
		if strings.HasPrefix(key, "Time Series") {
			return raw, nil
		}
	}

	return nil, errors.New(errors.ErrCodeMarketDataParseFailed, "response carries no time series")
}

// Decode unmarshals the value stored under key into out. A missing key leaves
// out untouched and reports false.
func (e Envelope) Decode(key string, out any) (bool, error) {
	raw, ok := e[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to decode %q", key)
	}

	return true, nil
}
