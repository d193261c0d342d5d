package vipps

import (
	"encoding/json"
	"strings"

	"github.com/mindebamsen/checkout-service/internal/entities"
)

// SessionRequest describes a new checkout session. Amount is in minor
// currency units.
type SessionRequest struct {
	Amount      int64
	Currency    string
	Reference   string
	Description string
	CallbackURL string
	ReturnURL   string
}

// SessionResult carries the provider session payload verbatim plus the
// callback token the provider will echo in webhook Authorization headers.
type SessionResult struct {
	CallbackToken string
	Payload       json.RawMessage
}

type amountPayload struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

type merchantInfoPayload struct {
	CallbackURL                string `json:"callbackUrl"`
	ReturnURL                  string `json:"returnUrl"`
	CallbackAuthorizationToken string `json:"callbackAuthorizationToken"`
}

type transactionPayload struct {
	Amount             amountPayload `json:"amount"`
	Reference          string        `json:"reference"`
	PaymentDescription string        `json:"paymentDescription"`
}

type sessionPayload struct {
	MerchantInfo merchantInfoPayload `json:"merchantInfo"`
	Transaction  transactionPayload  `json:"transaction"`
}

type modificationPayload struct {
	ModificationAmount *amountPayload `json:"modificationAmount,omitempty"`
	Description        string         `json:"description,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func normalizeState(state string) entities.ProviderState {
	switch entities.ProviderState(strings.ToUpper(state)) {
	case entities.ProviderStateInitiated,
		entities.ProviderStateAuthorized,
		entities.ProviderStateCaptured,
		entities.ProviderStateFailed,
		entities.ProviderStateCancelled,
		entities.ProviderStateTerminated:
		return entities.ProviderState(strings.ToUpper(state))
	default:
		return entities.ProviderStateUnknown
	}
}

// authorizedAmount extracts the authorized amount from a payment details
// payload. The provider is inconsistent about where it puts the amount, so
// the known shapes are tried in priority order:
//
//	summary.authorizedAmount.value -> amount.value -> amount (scalar)
//
// Returns nil when no shape matches; the caller supplies its own fallback.
func authorizedAmount(raw []byte) *int64 {
	var details struct {
		Summary struct {
			AuthorizedAmount struct {
				Value *int64 `json:"value"`
			} `json:"authorizedAmount"`
		} `json:"summary"`
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil
	}

	if v := details.Summary.AuthorizedAmount.Value; v != nil {
		return v
	}

	if len(details.Amount) > 0 {
		var obj struct {
			Value *int64 `json:"value"`
		}
		if err := json.Unmarshal(details.Amount, &obj); err == nil && obj.Value != nil {
			return obj.Value
		}

		var scalar int64
		if err := json.Unmarshal(details.Amount, &scalar); err == nil {
			return &scalar
		}
	}

	return nil
}
