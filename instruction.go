package cifmod

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Instruction is one parsed line of instruction text, e.g. "a + 1" or
// "45.0 -- beta -- 90.0". Instructions are not modified after parsing.
type Instruction struct {
	kw   Keyword
	op   Operator
	a, b float64
	hasB bool
}

// NewInstruction creates the single operand instruction "kw op a".
func NewInstruction(kw Keyword, op Operator, a float64) Instruction {
	return Instruction{kw: kw, op: op, a: a}
}

// NewRange creates the two operand range instruction "a -- kw -- b".
func NewRange(kw Keyword, a, b float64) Instruction {
	return Instruction{kw: kw, op: Range, a: a, b: b, hasB: true}
}

func (in Instruction) Keyword() Keyword { return in.kw }

func (in Instruction) Operator() Operator { return in.op }

func (in Instruction) ValueA() float64 { return in.a }

// ValueB is only set for two operand ranges.
func (in Instruction) ValueB() (float64, bool) { return in.b, in.hasB }

// String renders in in the instruction language.
func (in Instruction) String() string {
	a := strconv.FormatFloat(in.a, 'g', -1, 64)
	switch {
	case in.hasB:
		b := strconv.FormatFloat(in.b, 'g', -1, 64)
		return fmt.Sprintf("%s %s %s %s %s", a, in.op, in.kw, in.op, b)
	case in.op == None:
		return fmt.Sprintf("%s %s", in.kw, a)
	}
	return fmt.Sprintf("%s %s %s", in.kw, in.op, a)
}

// Diagnostic reports a problem found while parsing instruction text.
// Parsing continues after a diagnostic with a default for the missing
// or broken part.
type Diagnostic struct {
	// Line is the 1-based line of the instruction text after ';' and ','
	// were turned into line breaks. It is 0 for ParseInstruction.
	Line int
	Text string
	Msg  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("instruction %d '%s': %s", d.Line, d.Text, d.Msg)
	}
	return fmt.Sprintf("instruction '%s': %s", d.Text, d.Msg)
}

// ParseInstruction parses one instruction. Tokens are separated by
// whitespace and may come in any order. Numbers become the operands,
// operator tokens the operator and anything else the keyword. Parsing
// never fails. Broken input is reported in the returned diagnostics
// and results in the empty keyword, operator None or value 0.
func ParseInstruction(line string) (in Instruction, diags []Diagnostic) {
	diag := func(format string, a ...any) {
		diags = append(diags, Diagnostic{
			Text: strings.TrimSpace(line),
			Msg:  fmt.Sprintf(format, a...),
		})
	}
	var hasA, hasOp, hasKw bool
	for _, word := range strings.Fields(line) {
		if v, err := strconv.ParseFloat(word, 64); err == nil {
			switch {
			case !hasA:
				in.a, hasA = v, true
			case in.hasB:
				diag("value %s replaces %g", word, in.b)
				in.b = v
			default:
				in.b, in.hasB = v, true
			}
			continue
		}
		if op := ParseOperator(word); op != None {
			if hasOp && op != in.op {
				diag("operator %s replaces %s", op, in.op)
			}
			in.op, hasOp = op, true
			continue
		}
		kw := ParseKeyword(word)
		if !kw.Known() {
			diag("'%s' is not a known keyword", word)
		}
		if hasKw && kw != in.kw {
			diag("keyword %s replaces %s", kw, in.kw)
		}
		in.kw, hasKw = kw, true
	}
	if !hasKw {
		diag("no keyword")
	}
	if !hasOp {
		diag("no operator")
	}
	if !hasA {
		diag("no value")
	}
	return in, diags
}

// Rand is the source of randomness for range instructions.
// *math/rand/v2.Rand implements it.
type Rand interface {
	Float64() float64
}

// Env is what instructions need besides the value they edit. A Rand
// must not be shared between goroutines.
type Env struct {
	// Rand is used by range instructions. When nil, a generator seeded
	// from entropy is created on first use.
	Rand Rand
	// NaturalPrecision renders results with as many digits as needed
	// instead of the precision of the edited value.
	NaturalPrecision bool
}

func (env *Env) uniform(lo, hi float64) float64 {
	if env.Rand == nil {
		env.Rand = NewEntropyRand()
	}
	v := lo + (hi-lo)*env.Rand.Float64()
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}

// Apply applies in to the textual field value and returns the new
// textual value. The uncertainty of value is dropped and the result
// keeps the number of decimal places of value. The rendered result of a
// range instruction always lies within its bounds, if necessary it gets
// more decimal places than value.
func (in Instruction) Apply(env *Env, value string) (string, error) {
	if env == nil {
		env = new(Env)
	}
	value = StripUncertainty(value)
	prec := Precision(value)
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", &ParseError{Value: value, err: err}
	}
	switch in.op {
	case Add:
		v += in.a
	case Subtract:
		v -= in.a
	case Multiply:
		v *= in.a
	case Divide:
		v /= in.a
	case Power:
		v = math.Pow(v, in.a)
	case Range:
		other := v
		if in.hasB {
			other = in.b
		}
		lo, hi := math.Min(in.a, other), math.Max(in.a, other)
		if lo == hi {
			return "", &RangeError{Instruction: in, Bound: lo}
		}
		v = env.uniform(lo, hi)
		if !env.NaturalPrecision {
			return formatInRange(v, lo, hi, prec), nil
		}
	}
	return formatValue(v, prec, env.NaturalPrecision), nil
}
