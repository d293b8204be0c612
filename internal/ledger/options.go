package ledger

import (
	"errors"
	"fmt"
	"strings"

	"school-erp/internal/models"
)

const (
	keyPrefixAccountID = "aid:"
	keyPrefixObjectID  = "oid:"
	keyPrefixName      = "name:"

	noIdentifier = "—"
)

var (
	ErrInvalidSelectionKey = errors.New("selection key must start with aid:, oid: or name:")
	ErrAccountNotFound     = errors.New("no account matches the selection")
)

// AccountOption is one entry of the account picker
type AccountOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SelectionKey returns the picker key for an account: its stable identifier,
// else its database id, else its name.
func SelectionKey(a models.Account) string {
	if id := a.StableID(); id != "" {
		return keyPrefixAccountID + id
	}
	if oid := a.ObjectID(); oid != "" {
		return keyPrefixObjectID + oid
	}
	return keyPrefixName + a.DisplayName()
}

// OptionLabel renders "name • identifier • balance"
func OptionLabel(a models.Account) string {
	ident := a.StableID()
	if ident == "" {
		ident = a.ObjectID()
	}
	if ident == "" {
		ident = noIdentifier
	}
	return fmt.Sprintf("%s • %s • %s", a.DisplayName(), ident, a.Balance.String())
}

// ListAccountOptions builds picker options in input order
func ListAccountOptions(accounts []models.Account) []AccountOption {
	options := make([]AccountOption, 0, len(accounts))
	for _, a := range accounts {
		options = append(options, AccountOption{
			Key:   SelectionKey(a),
			Label: OptionLabel(a),
		})
	}
	return options
}

// RefKind says which addressing scheme an AccountRef uses
type RefKind int

const (
	ByAccountID RefKind = iota + 1
	ByObjectID
	ByName
)

func (k RefKind) String() string {
	switch k {
	case ByAccountID:
		return "account_id"
	case ByObjectID:
		return "object_id"
	case ByName:
		return "name"
	default:
		return "unknown"
	}
}

// AccountRef is a parsed selection key
type AccountRef struct {
	Kind  RefKind
	Value string
}

// ParseSelectionKey parses an aid:/oid:/name: key
func ParseSelectionKey(key string) (AccountRef, error) {
	var ref AccountRef
	switch {
	case strings.HasPrefix(key, keyPrefixAccountID):
		ref = AccountRef{Kind: ByAccountID, Value: strings.TrimPrefix(key, keyPrefixAccountID)}
	case strings.HasPrefix(key, keyPrefixObjectID):
		ref = AccountRef{Kind: ByObjectID, Value: strings.TrimPrefix(key, keyPrefixObjectID)}
	case strings.HasPrefix(key, keyPrefixName):
		ref = AccountRef{Kind: ByName, Value: strings.TrimPrefix(key, keyPrefixName)}
	default:
		return AccountRef{}, ErrInvalidSelectionKey
	}

	if ref.Value == "" {
		return AccountRef{}, ErrInvalidSelectionKey
	}
	return ref, nil
}

// Key formats the ref back into a selection key
func (r AccountRef) Key() string {
	switch r.Kind {
	case ByAccountID:
		return keyPrefixAccountID + r.Value
	case ByObjectID:
		return keyPrefixObjectID + r.Value
	default:
		return keyPrefixName + r.Value
	}
}

// Matches reports whether the ref addresses account a
func (r AccountRef) Matches(a models.Account) bool {
	switch r.Kind {
	case ByAccountID:
		return a.StableID() == r.Value
	case ByObjectID:
		return a.ObjectID() == r.Value
	case ByName:
		return a.DisplayName() == r.Value
	default:
		return false
	}
}

// ResolveAccount returns the first account the ref addresses. Accounts that
// share a name and lack both identifiers share a key; the first one wins.
func ResolveAccount(accounts []models.Account, ref AccountRef) (models.Account, error) {
	for _, a := range accounts {
		if ref.Matches(a) {
			return a, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

// Endpoint is one side of a transfer draft
type Endpoint struct {
	AccountID string
	Name      string
}

// IsSet reports whether the side is addressed at all
func (e Endpoint) IsSet() bool {
	return e.AccountID != "" || strings.TrimSpace(e.Name) != ""
}

// Endpoint fills a transfer side from the ref. An identifier ref carries only
// the identifier, a name ref only the name, and a database-id ref copies the
// matching account's identifier and name (empty when no account matches).
func (r AccountRef) Endpoint(accounts []models.Account) Endpoint {
	switch r.Kind {
	case ByAccountID:
		return Endpoint{AccountID: r.Value}
	case ByObjectID:
		a, err := ResolveAccount(accounts, r)
		if err != nil {
			return Endpoint{}
		}
		return Endpoint{AccountID: a.StableID(), Name: a.Name}
	default:
		return Endpoint{Name: r.Value}
	}
}
