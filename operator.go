package cifmod

// Operator is the arithmetic an instruction applies to a field value.
type Operator uint8

const (
	// None leaves the value as it is. It is what unrecognized operator
	// tokens map to.
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Power
	// Range replaces the value with a random number from a half-open
	// interval.
	Range
)

var opTokens = [...]string{
	None:     "",
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
	Power:    "^",
	Range:    "--",
}

// ParseOperator maps an operator token to its Operator. Unknown tokens
// yield None.
func ParseOperator(token string) Operator {
	for op, tok := range opTokens {
		if op != int(None) && tok == token {
			return Operator(op)
		}
	}
	return None
}

// String returns the token of op or "none".
func (op Operator) String() string {
	if op == None || int(op) >= len(opTokens) {
		return "none"
	}
	return opTokens[op]
}
