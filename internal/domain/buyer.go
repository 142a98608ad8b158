package domain

import (
	"encoding/json"
	"slices"
)

// PaymentMethod points at a card held by an external PCI-compliant vault.
// CardID is that vault's reference; no card number is ever stored here.
type PaymentMethod struct {
	ID     int    `json:"id"`
	Alias  string `json:"alias"`
	CardID string `json:"cardId"`
	Last4  string `json:"last4"`
}

type Buyer struct {
	id             int
	identityGUID   string
	paymentMethods []PaymentMethod
}

func NewBuyer(id int, identityGUID string) *Buyer {
	return &Buyer{id: id, identityGUID: identityGUID}
}

func (b *Buyer) ID() int { return b.id }
func (b *Buyer) IdentityGUID() string { return b.identityGUID }
func (b *Buyer) PaymentMethods() []PaymentMethod { return slices.Clone(b.paymentMethods) }

// AddPaymentMethod appends pm without checking for duplicates.
func (b *Buyer) AddPaymentMethod(pm PaymentMethod) {
	b.paymentMethods = append(b.paymentMethods, pm)
}

func (b *Buyer) MarshalJSON() ([]byte, error) {
	pms := b.paymentMethods
	if pms == nil {
		pms = []PaymentMethod{}
	}
	return json.Marshal(struct {
		ID             int             `json:"id"`
		IdentityGUID   string          `json:"identityGuid"`
		PaymentMethods []PaymentMethod `json:"paymentMethods"`
	}{b.id, b.identityGUID, pms})
}
