package value

import "strconv"

// Kind tags the concrete representation of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInt
	KindLong
	KindDecimal
	KindDouble
	KindString
	KindDate
)

var kindNames = [...]string{
	KindNull:    "NULL",
	KindBoolean: "BOOLEAN",
	KindInt:     "INT",
	KindLong:    "LONG",
	KindDecimal: "DECIMAL",
	KindDouble:  "DOUBLE",
	KindString:  "STRING",
	KindDate:    "DATE",
}

// integralRank orders the integral kinds by width; zero means not integral.
var integralRank = [...]int{
	KindInt:  1,
	KindLong: 2,
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsIntegral() bool {
	return k.rank() > 0
}

func (k Kind) rank() int {
	if int(k) < len(integralRank) {
		return integralRank[k]
	}
	return 0
}

// WidestKind returns the narrowest kind able to represent every value of both a
// and b. The result does not depend on argument order. ok is false when either
// kind has no place in the integral promotion lattice.
func WidestKind(a, b Kind) (kind Kind, ok bool) {
	if !a.IsIntegral() || !b.IsIntegral() {
		return KindNull, false
	}
	if a.rank() >= b.rank() {
		return a, true
	}
	return b, true
}
