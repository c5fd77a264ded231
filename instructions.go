package cifmod

import (
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Instructions holds parsed instruction text grouped by keyword. The
// instructions for one keyword keep the order in which they appeared in
// the text. An Instructions value is not changed after parsing and can
// be used by many goroutines at once.
type Instructions struct {
	chains map[Keyword]*islist.List
	order  []Keyword
	diags  []Diagnostic
	count  int
}

type instrNode struct {
	Instruction
	next *instrNode
}

// ListNext to implement intrusive singly linked list
func (n *instrNode) ListNext() islist.Node {
	if n.next == nil {
		return nil
	}
	return n.next
}

// SetListNext to implement intrusive singly linked list
func (n *instrNode) SetListNext(next islist.Node) {
	if next == nil {
		n.next = nil
	} else {
		n.next = next.(*instrNode)
	}
}

var delimiters = strings.NewReplacer(";", "\n", ",", "\n", "\r", "")

// ParseInstructions parses a block of instructions. Instructions are
// separated by line breaks, ';' or ','. Blank lines and lines starting
// with '#' are ignored. ParseInstructions never fails, problems are
// available from Diagnostics.
func ParseInstructions(text string) *Instructions {
	res := &Instructions{chains: make(map[Keyword]*islist.List)}
	for i, line := range strings.Split(delimiters.Replace(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		in, diags := ParseInstruction(line)
		for _, d := range diags {
			d.Line = i + 1
			res.diags = append(res.diags, d)
		}
		res.add(in)
	}
	return res
}

func (is *Instructions) add(in Instruction) {
	node := &instrNode{Instruction: in}
	if ls := is.chains[in.kw]; ls == nil {
		is.chains[in.kw] = islist.New(node)
		is.order = append(is.order, in.kw)
	} else {
		ls.PushBack(node)
	}
	is.count++
}

// Len returns the number of instructions.
func (is *Instructions) Len() int { return is.count }

// Diagnostics returns the problems found while parsing.
func (is *Instructions) Diagnostics() []Diagnostic { return is.diags }

// Keywords returns the keywords that have instructions in the order they
// first appeared.
func (is *Instructions) Keywords() []Keyword { return is.order }

// For returns the instructions of kw in application order.
func (is *Instructions) For(kw Keyword) (res []Instruction) {
	is.each(kw, func(in Instruction) bool {
		res = append(res, in)
		return true
	})
	return res
}

func (is *Instructions) each(kw Keyword, do func(Instruction) bool) bool {
	ls := is.chains[kw]
	if ls == nil {
		return false
	}
	for n := ls.Front(); n != nil; n = n.ListNext() {
		if !do(n.(*instrNode).Instruction) {
			break
		}
	}
	return true
}

// Apply applies all instructions for the CIF data name key to value in
// order, each one to the result of the previous one. If there are no
// instructions for key, Apply returns value and false. The first error
// stops the application and no value is returned.
func (is *Instructions) Apply(env *Env, key, value string) (string, bool, error) {
	kw := UnknownKeyword(key)
	if f, ok := FieldByName(key); ok {
		kw = KnownKeyword(f)
	}
	return is.ApplyKeyword(env, kw, value)
}

// ApplyKeyword is like Apply for an already resolved keyword.
func (is *Instructions) ApplyKeyword(env *Env, kw Keyword, value string) (string, bool, error) {
	var err error
	res := value
	found := is.each(kw, func(in Instruction) bool {
		res, err = in.Apply(env, res)
		return err == nil
	})
	switch {
	case !found:
		return value, false, nil
	case err != nil:
		return "", false, err
	}
	return res, true, nil
}

// String renders the instructions grouped by keyword, one per line.
func (is *Instructions) String() string {
	var sb strings.Builder
	for _, kw := range is.order {
		is.each(kw, func(in Instruction) bool {
			sb.WriteString(in.String())
			sb.WriteByte('\n')
			return true
		})
	}
	return sb.String()
}
