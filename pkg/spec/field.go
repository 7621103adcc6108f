package spec

import (
	"strconv"
	"strings"
)

// FieldType is the storage class declared by a field's "type:" attribute.
type FieldType string

// Field types understood by the form grammar. Fields without an explicit
// type are words.
const (
	TypeWord   FieldType = "word"
	TypeWList  FieldType = "wlist"
	TypeSelect FieldType = "select"
	TypeLine   FieldType = "line"
	TypeLList  FieldType = "llist"
	TypeDate   FieldType = "date"
	TypeText   FieldType = "text"
	TypeBulk   FieldType = "bulk"
)

// Field describes one entry of a spec definition.
type Field struct {
	Tag      string
	Code     int
	Type     FieldType
	Required bool
	ReadOnly bool
	Format   string
	Len      int
	Values   string
	Words    int
	MaxWords int
	Seq      int
	Opt      string
	Preset   string
	Open     string
}

// IsList reports whether the field holds one value per line, addressed by
// position (Tag0, Tag1, ...).
func (f Field) IsList() bool {
	return f.Type == TypeWList || f.Type == TypeLList
}

// IsText reports whether the field holds free-form multi-line text.
func (f Field) IsText() bool {
	return f.Type == TypeText || f.Type == TypeBulk
}

// Options splits the "val:" attribute of a select field into its choices.
// Line fields carrying comma separated option pairs return nil.
func (f Field) Options() []string {
	if f.Values == "" || strings.Contains(f.Values, ",") {
		return nil
	}
	return strings.Split(f.Values, "/")
}

// OptionPairs splits a "val:" attribute made of comma separated groups
// ("noallwrite/allwrite,noclobber/clobber") into its groups. Each group lists
// the words one position of the value may take.
func (f Field) OptionPairs() [][]string {
	if !strings.Contains(f.Values, ",") {
		return nil
	}
	groups := strings.Split(f.Values, ",")
	out := make([][]string, 0, len(groups))
	for _, group := range groups {
		if group = strings.TrimSpace(group); group != "" {
			out = append(out, strings.Split(group, "/"))
		}
	}
	return out
}

// String renders the field back into definition grammar, terminated by ";;".
func (f Field) String() string {
	var b strings.Builder
	b.WriteString(f.Tag)
	writeAttr(&b, "code", strconv.Itoa(f.Code))
	if f.Type != "" && f.Type != TypeWord {
		writeAttr(&b, "type", string(f.Type))
	}
	if f.Required {
		b.WriteString(";rq")
	}
	if f.ReadOnly {
		b.WriteString(";ro")
	}
	writeAttr(&b, "fmt", f.Format)
	writeInt(&b, "seq", f.Seq)
	writeInt(&b, "words", f.Words)
	writeInt(&b, "maxwords", f.MaxWords)
	writeInt(&b, "len", f.Len)
	writeAttr(&b, "pre", f.Preset)
	writeAttr(&b, "val", f.Values)
	writeAttr(&b, "opt", f.Opt)
	writeAttr(&b, "open", f.Open)
	b.WriteString(";;")
	return b.String()
}

func writeAttr(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteByte(';')
	b.WriteString(key)
	b.WriteByte(':')
	b.WriteString(value)
}

func writeInt(b *strings.Builder, key string, value int) {
	if value == 0 {
		return
	}
	writeAttr(b, key, strconv.Itoa(value))
}
