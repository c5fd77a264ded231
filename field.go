package cifmod

// Field identifies one of the cell parameters cifmod can edit.
type Field uint8

// Cell fields in the order they usually appear in a CIF file.
const (
	LengthA Field = iota + 1
	LengthB
	LengthC
	AngleAlpha
	AngleBeta
	AngleGamma
	Volume
)

var fieldNames = [...]string{
	"_cell_length_a",
	"_cell_length_b",
	"_cell_length_c",
	"_cell_angle_alpha",
	"_cell_angle_beta",
	"_cell_angle_gamma",
	"_cell_volume",
}

// Aliases are positionally paired with fieldNames.
var fieldAliases = [...]string{"a", "b", "c", "alpha", "beta", "gamma", "volume"}

// Fields returns all known fields in canonical order.
func Fields() []Field {
	res := make([]Field, len(fieldNames))
	for i := range res {
		res[i] = Field(i + 1)
	}
	return res
}

func (f Field) Valid() bool { return f >= LengthA && f <= Volume }

// String returns the canonical CIF data name, e.g. "_cell_length_a".
func (f Field) String() string {
	if !f.Valid() {
		return ""
	}
	return fieldNames[f-1]
}

// Alias returns the short name of f, e.g. "a" for LengthA.
func (f Field) Alias() string {
	if !f.Valid() {
		return ""
	}
	return fieldAliases[f-1]
}

// FieldByName finds the field with the canonical data name. Aliases are
// not accepted.
func FieldByName(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i + 1), true
		}
	}
	return 0, false
}

// FieldByAlias finds the field for a short alias like "gamma".
func FieldByAlias(alias string) (Field, bool) {
	for i, a := range fieldAliases {
		if a == alias {
			return Field(i + 1), true
		}
	}
	return 0, false
}

// Keyword is the field an instruction refers to. A keyword is either
// known, i.e. one of the Fields, or unknown and then only carries the
// raw token from the instruction text.
type Keyword struct {
	field Field
	raw   string
}

func KnownKeyword(f Field) Keyword { return Keyword{field: f} }

func UnknownKeyword(raw string) Keyword { return Keyword{raw: raw} }

// ParseKeyword resolves aliases and canonical names to a known keyword.
// Anything else becomes an unknown keyword.
func ParseKeyword(token string) Keyword {
	if f, ok := FieldByAlias(token); ok {
		return KnownKeyword(f)
	}
	if f, ok := FieldByName(token); ok {
		return KnownKeyword(f)
	}
	return UnknownKeyword(token)
}

// Field returns the known field and true, or false for unknown keywords.
func (k Keyword) Field() (Field, bool) { return k.field, k.field.Valid() }

func (k Keyword) Known() bool { return k.field.Valid() }

// Empty reports whether the instruction had no keyword at all.
func (k Keyword) Empty() bool { return !k.Known() && k.raw == "" }

// String returns the canonical name of known keywords and the raw token
// otherwise.
func (k Keyword) String() string {
	if k.Known() {
		return k.field.String()
	}
	return k.raw
}
