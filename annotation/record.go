package annotation

// Column identifies one of the eight fixed columns of an annotation record.
type Column string

const (
	ColumnSeqid   Column = "seqid"
	ColumnSource  Column = "source"
	ColumnFeature Column = "feature"
	ColumnStart   Column = "start"
	ColumnEnd     Column = "end"
	ColumnScore   Column = "score"
	ColumnStrand  Column = "strand"
	ColumnFrame   Column = "frame"
)

// fixedColumns is the set of valid Column names for key lookup
var fixedColumns = map[string]Column{
	string(ColumnSeqid):   ColumnSeqid,
	string(ColumnSource):  ColumnSource,
	string(ColumnFeature): ColumnFeature,
	string(ColumnStart):   ColumnStart,
	string(ColumnEnd):     ColumnEnd,
	string(ColumnScore):   ColumnScore,
	string(ColumnStrand):  ColumnStrand,
	string(ColumnFrame):   ColumnFrame,
}

// IsColumn reports whether name is one of the eight fixed column names
func IsColumn(name string) bool {
	_, ok := fixedColumns[name]
	return ok
}

// Record represents a single annotation line: the eight fixed columns plus
// the free-form attributes of the ninth field.
// All values keep their original text representation; nothing is parsed here.
type Record struct {
	Seqid   string
	Source  string
	Feature string
	Start   string
	End     string
	Score   string
	Strand  string
	Frame   string

	attrs     map[string]string
	attrOrder []string // attribute names in declaration order
}

// NewRecord creates a Record with the eight fixed column values set
func NewRecord(seqid, source, feature, start, end, score, strand, frame string) Record {
	return Record{
		Seqid:   seqid,
		Source:  source,
		Feature: feature,
		Start:   start,
		End:     end,
		Score:   score,
		Strand:  strand,
		Frame:   frame,
	}
}

// SetAttribute sets an attribute value, remembering first-declaration order.
// Setting an existing attribute overwrites its value without moving it.
func (r *Record) SetAttribute(name, value string) {
	if r.attrs == nil {
		r.attrs = make(map[string]string)
	}
	if _, exists := r.attrs[name]; !exists {
		r.attrOrder = append(r.attrOrder, name)
	}
	r.attrs[name] = value
}

// Attribute returns the value of the named attribute and whether it exists
func (r *Record) Attribute(name string) (string, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// AttributeNames returns the record's attribute names in declaration order
func (r *Record) AttributeNames() []string {
	names := make([]string, len(r.attrOrder))
	copy(names, r.attrOrder)
	return names
}

// ColumnValue returns the value of the given fixed column.
// Returns false if c is not one of the eight fixed columns.
func (r *Record) ColumnValue(c Column) (string, bool) {
	switch c {
	case ColumnSeqid:
		return r.Seqid, true
	case ColumnSource:
		return r.Source, true
	case ColumnFeature:
		return r.Feature, true
	case ColumnStart:
		return r.Start, true
	case ColumnEnd:
		return r.End, true
	case ColumnScore:
		return r.Score, true
	case ColumnStrand:
		return r.Strand, true
	case ColumnFrame:
		return r.Frame, true
	}
	return "", false
}

// clone creates a deep copy of the record to prevent mutation
func (r Record) clone() Record {
	out := r
	if r.attrs != nil {
		out.attrs = make(map[string]string, len(r.attrs))
		for k, v := range r.attrs {
			out.attrs[k] = v
		}
		out.attrOrder = make([]string, len(r.attrOrder))
		copy(out.attrOrder, r.attrOrder)
	}
	return out
}
