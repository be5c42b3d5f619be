package order

type MethodKind string

const (
	MethodCard   MethodKind = "card"
	MethodCOD    MethodKind = "cod"
	MethodWallet MethodKind = "wallet"
)

func (k MethodKind) String() string {
	return string(k)
}

func ParseMethodKind(s string) (MethodKind, error) {
	switch kind := MethodKind(s); kind {
	case MethodCard, MethodCOD, MethodWallet:
		return kind, nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

// PaymentMethod is a tagged variant. Only card methods go through provider authorization.
type PaymentMethod interface {
	Kind() MethodKind
	RequiresAuthorization() bool
}

// CardMethod references a stored card at the payment provider.
type CardMethod struct {
	CustomerRef string
	MethodRef   string
}

func (CardMethod) Kind() MethodKind            { return MethodCard }
func (CardMethod) RequiresAuthorization() bool { return true }

type CashOnDelivery struct{}

func (CashOnDelivery) Kind() MethodKind            { return MethodCOD }
func (CashOnDelivery) RequiresAuthorization() bool { return false }

type WalletMethod struct{}

func (WalletMethod) Kind() MethodKind            { return MethodWallet }
func (WalletMethod) RequiresAuthorization() bool { return false }

// MethodFromKind builds the variant for persisted rows. methodRef is only meaningful for cards.
func MethodFromKind(kind MethodKind, methodRef string) (PaymentMethod, error) {
	switch kind {
	case MethodCard:
		return CardMethod{MethodRef: methodRef}, nil
	case MethodCOD:
		return CashOnDelivery{}, nil
	case MethodWallet:
		return WalletMethod{}, nil
	default:
		return nil, ErrUnknownPaymentMethod
	}
}
